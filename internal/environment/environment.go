// Package environment aggregates the site conditions an observer cares
// about: geocoded location, current weather and light pollution, plus an
// overall observation quality assessment.
package environment

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"celestialguide/internal/lightpollution"
	"celestialguide/internal/providers/opencage"
	"celestialguide/internal/providers/openweathermap"
	"celestialguide/internal/types"
)

var (
	// ErrMissingAPIKey reports a provider call with no key configured.
	ErrMissingAPIKey = errors.New("environment: API key not configured")
	// ErrLocationNotFound reports a geocode query with no results.
	ErrLocationNotFound = errors.New("environment: location not found")
)

// GeocodeProvider resolves free-form place queries.
type GeocodeProvider interface {
	Geocode(query string) (*opencage.GeocodeAPIResponse, error)
}

// WeatherProvider fetches current conditions.
type WeatherProvider interface {
	CurrentWeather(latitude, longitude float64) (*openweathermap.WeatherAPIResponse, error)
}

// Report is the combined environmental picture for a site.
type Report struct {
	Location           types.Place      `json:"location"`
	Weather            types.Weather    `json:"weather"`
	LightPollution     types.SkyQuality `json:"lightPollution"`
	ObservationQuality string           `json:"observationQuality"`
}

// Service answers environmental queries for observing sites.
type Service interface {
	Geocode(city, country string) (types.Place, error)
	Weather(latitude, longitude float64) (types.Weather, error)
	LightPollution(latitude, longitude float64) types.SkyQuality
	// Complete fans out the weather and light pollution lookups in
	// parallel and scores the site. city may be empty.
	Complete(latitude, longitude float64, city string) (Report, error)
}

type service struct {
	geocoder   GeocodeProvider
	weather    WeatherProvider
	skyQuality lightpollution.Service
	logger     *slog.Logger
}

// NewService wires real provider clients. An empty API key leaves the
// matching provider unconfigured; calls needing it fail with
// ErrMissingAPIKey.
func NewService(logger *slog.Logger, opencageKey, openweathermapKey string) Service {
	var geocoder GeocodeProvider
	if opencageKey != "" {
		geocoder = opencage.NewClient(logger, opencageKey)
	}
	var weather WeatherProvider
	if openweathermapKey != "" {
		weather = openweathermap.NewClient(logger, openweathermapKey)
	}
	return NewServiceWithProviders(logger, geocoder, weather, lightpollution.NewService(logger))
}

// NewServiceWithProviders wires custom providers, for tests.
func NewServiceWithProviders(logger *slog.Logger, geocoder GeocodeProvider, weather WeatherProvider, skyQuality lightpollution.Service) Service {
	return &service{
		geocoder:   geocoder,
		weather:    weather,
		skyQuality: skyQuality,
		logger:     logger.With("component", "environment"),
	}
}

func (s *service) Geocode(city, country string) (types.Place, error) {
	if s.geocoder == nil {
		return types.Place{}, fmt.Errorf("%w: OpenCage", ErrMissingAPIKey)
	}

	query := city
	if country != "" {
		query += ", " + country
	}

	resp, err := s.geocoder.Geocode(query)
	if err != nil {
		return types.Place{}, fmt.Errorf("geocoding %q: %w", query, err)
	}
	if len(resp.Results) == 0 {
		return types.Place{}, fmt.Errorf("%w: %q", ErrLocationNotFound, query)
	}

	result := resp.Results[0]
	name := result.Components.Name()
	if name == "" {
		name = city
	}
	return types.Place{
		Name:      name,
		Latitude:  result.Geometry.Lat,
		Longitude: result.Geometry.Lng,
		Country:   result.Components.Country,
		Formatted: result.Formatted,
	}, nil
}

func (s *service) Weather(latitude, longitude float64) (types.Weather, error) {
	if s.weather == nil {
		return types.Weather{}, fmt.Errorf("%w: OpenWeatherMap", ErrMissingAPIKey)
	}

	resp, err := s.weather.CurrentWeather(latitude, longitude)
	if err != nil {
		return types.Weather{}, fmt.Errorf("fetching weather: %w", err)
	}

	return types.Weather{
		TemperatureC: resp.Main.Temp,
		CloudCover:   resp.Clouds.All,
		Humidity:     resp.Main.Humidity,
		WindSpeed:    resp.Wind.Speed,
		Description:  resp.Description(),
		Conditions:   ConditionsLabel(resp.Clouds.All),
	}, nil
}

func (s *service) LightPollution(latitude, longitude float64) types.SkyQuality {
	return s.skyQuality.Assess(latitude, longitude)
}

func (s *service) Complete(latitude, longitude float64, city string) (Report, error) {
	var (
		wg         sync.WaitGroup
		weather    types.Weather
		weatherErr error
		quality    types.SkyQuality
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		weather, weatherErr = s.Weather(latitude, longitude)
	}()
	go func() {
		defer wg.Done()
		quality = s.LightPollution(latitude, longitude)
	}()
	wg.Wait()

	if weatherErr != nil {
		return Report{}, weatherErr
	}

	if city == "" {
		city = "Custom Location"
	}
	location := types.Place{
		Name:      city,
		Latitude:  latitude,
		Longitude: longitude,
		Formatted: fmt.Sprintf("%.4f°, %.4f°", latitude, longitude),
	}

	score := QualityScore(weather.CloudCover, quality.Bortle, weather.TemperatureC)
	s.logger.Debug("site scored", "latitude", latitude, "longitude", longitude, "score", score)

	return Report{
		Location:           location,
		Weather:            weather,
		LightPollution:     quality,
		ObservationQuality: QualityLabel(score),
	}, nil
}

// ConditionsLabel grades cloud cover for observing.
func ConditionsLabel(cloudCover float64) string {
	switch {
	case cloudCover < 10:
		return "Excellent - Clear skies"
	case cloudCover < 30:
		return "Good - Mostly clear"
	case cloudCover < 60:
		return "Fair - Partly cloudy"
	case cloudCover < 80:
		return "Poor - Mostly cloudy"
	default:
		return "Very Poor - Overcast"
	}
}

// QualityScore combines cloud cover (0-40 points), light pollution (0-40)
// and temperature comfort (0-20) into a 0-100 site score.
func QualityScore(cloudCover, bortle, temperatureC float64) int {
	score := 0

	switch {
	case cloudCover < 10:
		score += 40
	case cloudCover < 30:
		score += 30
	case cloudCover < 60:
		score += 15
	}

	switch {
	case bortle <= 3:
		score += 40
	case bortle <= 5:
		score += 25
	case bortle <= 6:
		score += 15
	case bortle <= 7:
		score += 5
	}

	switch {
	case temperatureC >= -10 && temperatureC <= 25:
		score += 20
	case temperatureC >= -20 && temperatureC <= 35:
		score += 10
	}

	return score
}

// QualityLabel maps a site score to the overall assessment text.
func QualityLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent - Perfect conditions for observation"
	case score >= 60:
		return "Good - Favorable conditions"
	case score >= 40:
		return "Fair - Acceptable conditions"
	case score >= 20:
		return "Poor - Challenging conditions"
	default:
		return "Very Poor - Not recommended"
	}
}
