package environment

import (
	"errors"
	"log/slog"
	"testing"

	"celestialguide/internal/lightpollution"
	"celestialguide/internal/providers/opencage"
	"celestialguide/internal/providers/openweathermap"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type stubGeocoder struct {
	resp *opencage.GeocodeAPIResponse
	err  error
}

func (s stubGeocoder) Geocode(query string) (*opencage.GeocodeAPIResponse, error) {
	return s.resp, s.err
}

type stubWeather struct {
	resp *openweathermap.WeatherAPIResponse
	err  error
}

func (s stubWeather) CurrentWeather(latitude, longitude float64) (*openweathermap.WeatherAPIResponse, error) {
	return s.resp, s.err
}

func newTestService(geo GeocodeProvider, weather WeatherProvider) Service {
	return NewServiceWithProviders(testLogger(), geo, weather, lightpollution.NewService(testLogger()))
}

func TestGeocode(t *testing.T) {
	geo := stubGeocoder{resp: &opencage.GeocodeAPIResponse{
		Results: []opencage.GeocodeResult{{
			Formatted: "Istanbul, Türkiye",
			Geometry:  opencage.Geometry{Lat: 41.0082, Lng: 28.9784},
			Components: opencage.Components{
				City:    "Istanbul",
				Country: "Türkiye",
			},
		}},
	}}
	svc := newTestService(geo, nil)

	place, err := svc.Geocode("Istanbul", "Turkey")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if place.Name != "Istanbul" || place.Country != "Türkiye" {
		t.Errorf("place = %+v", place)
	}
	if place.Latitude != 41.0082 || place.Longitude != 28.9784 {
		t.Errorf("coordinates = %v, %v", place.Latitude, place.Longitude)
	}
}

func TestGeocodeFallsBackToTownName(t *testing.T) {
	geo := stubGeocoder{resp: &opencage.GeocodeAPIResponse{
		Results: []opencage.GeocodeResult{{
			Geometry:   opencage.Geometry{Lat: 1, Lng: 2},
			Components: opencage.Components{Town: "Alpbach", Country: "Austria"},
		}},
	}}
	svc := newTestService(geo, nil)

	place, err := svc.Geocode("Alpbach", "")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if place.Name != "Alpbach" {
		t.Errorf("name = %q, want town fallback", place.Name)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	svc := newTestService(stubGeocoder{resp: &opencage.GeocodeAPIResponse{}}, nil)

	if _, err := svc.Geocode("Atlantis", ""); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("error = %v, want ErrLocationNotFound", err)
	}
}

func TestGeocodeMissingKey(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.Geocode("Istanbul", ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestWeatherTranslation(t *testing.T) {
	weather := stubWeather{resp: &openweathermap.WeatherAPIResponse{
		Main:    openweathermap.Main{Temp: 12.5, Humidity: 60},
		Clouds:  openweathermap.Clouds{All: 5},
		Wind:    openweathermap.Wind{Speed: 3.2},
		Weather: []openweathermap.Condition{{Description: "clear sky"}},
	}}
	svc := newTestService(nil, weather)

	w, err := svc.Weather(41.0, 29.0)
	if err != nil {
		t.Fatalf("Weather: %v", err)
	}
	if w.TemperatureC != 12.5 || w.CloudCover != 5 || w.Humidity != 60 || w.WindSpeed != 3.2 {
		t.Errorf("weather = %+v", w)
	}
	if w.Description != "clear sky" {
		t.Errorf("description = %q", w.Description)
	}
	if w.Conditions != "Excellent - Clear skies" {
		t.Errorf("conditions = %q", w.Conditions)
	}
}

func TestConditionsLabelBands(t *testing.T) {
	tests := []struct {
		cloud float64
		want  string
	}{
		{0, "Excellent - Clear skies"},
		{9.9, "Excellent - Clear skies"},
		{10, "Good - Mostly clear"},
		{45, "Fair - Partly cloudy"},
		{70, "Poor - Mostly cloudy"},
		{95, "Very Poor - Overcast"},
	}
	for _, tt := range tests {
		if got := ConditionsLabel(tt.cloud); got != tt.want {
			t.Errorf("ConditionsLabel(%v) = %q, want %q", tt.cloud, got, tt.want)
		}
	}
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name  string
		cloud float64
		bortl float64
		temp  float64
		want  int
	}{
		{"perfect site", 5, 2, 15, 100},
		{"suburban clear night", 5, 5, 15, 85},
		{"cloudy city", 90, 8, 15, 20},
		{"clear but frigid city", 5, 8, -30, 40},
		{"worst case", 100, 9, -40, 0},
	}
	for _, tt := range tests {
		if got := QualityScore(tt.cloud, tt.bortl, tt.temp); got != tt.want {
			t.Errorf("%s: QualityScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestQualityLabelBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent - Perfect conditions for observation"},
		{80, "Excellent - Perfect conditions for observation"},
		{60, "Good - Favorable conditions"},
		{40, "Fair - Acceptable conditions"},
		{20, "Poor - Challenging conditions"},
		{0, "Very Poor - Not recommended"},
	}
	for _, tt := range tests {
		if got := QualityLabel(tt.score); got != tt.want {
			t.Errorf("QualityLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCompleteFanOut(t *testing.T) {
	weather := stubWeather{resp: &openweathermap.WeatherAPIResponse{
		Main:    openweathermap.Main{Temp: 10, Humidity: 50},
		Clouds:  openweathermap.Clouds{All: 5},
		Weather: []openweathermap.Condition{{Description: "clear sky"}},
	}}
	svc := newTestService(nil, weather)

	report, err := svc.Complete(41.0, 29.0, "")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if report.Location.Name != "Custom Location" {
		t.Errorf("location name = %q", report.Location.Name)
	}
	if report.Location.Formatted != "41.0000°, 29.0000°" {
		t.Errorf("formatted = %q", report.Location.Formatted)
	}
	// Default light pollution provider estimates Bortle 4: 40 + 25 + 20.
	if !report.LightPollution.Estimated {
		t.Error("expected estimated light pollution")
	}
	if report.ObservationQuality != "Excellent - Perfect conditions for observation" {
		t.Errorf("quality = %q", report.ObservationQuality)
	}
}

func TestCompletePropagatesWeatherError(t *testing.T) {
	weather := stubWeather{err: errors.New("upstream down")}
	svc := newTestService(nil, weather)

	if _, err := svc.Complete(41.0, 29.0, "Istanbul"); err == nil {
		t.Fatal("expected error")
	}
}
