package solar

import (
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		illumination float64
		want         string
	}{
		{0.0, "New Moon"},
		{0.04, "New Moon"},
		{0.05, "Waxing Crescent"},
		{0.30, "First Quarter"},
		{0.50, "Waxing Gibbous"},
		{0.70, "Full Moon"},
		{0.80, "Waning Gibbous"},
		{0.90, "Last Quarter"},
		{0.99, "Waning Crescent"},
	}

	for _, tc := range tests {
		if got := PhaseName(tc.illumination); got != tc.want {
			t.Errorf("PhaseName(%.2f) = %q, want %q", tc.illumination, got, tc.want)
		}
	}
}

func TestEvents(t *testing.T) {
	svc := NewService(testLogger())

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := svc.Events(51.5074, -0.1278, start, 3)

	if len(events) != 3 {
		t.Fatalf("got %d days, want 3", len(events))
	}

	for i, day := range events {
		wantDate := start.AddDate(0, 0, i).Format("2006-01-02")
		if day.Date != wantDate {
			t.Errorf("day %d date = %q, want %q", i, day.Date, wantDate)
		}

		sunrise := parseEvent(t, day.Sunrise)
		sunset := parseEvent(t, day.Sunset)
		if !sunrise.Before(sunset) {
			t.Errorf("day %d: sunrise %v not before sunset %v", i, sunrise, sunset)
		}

		// London in June: about 16 and a half hours of daylight.
		if day.DayLengthHours < 15.5 || day.DayLengthHours > 17.5 {
			t.Errorf("day %d: day length %.2f h implausible for June London", i, day.DayLengthHours)
		}

		noon := parseEvent(t, day.SolarNoon)
		if noon.Before(sunrise) || noon.After(sunset) {
			t.Errorf("day %d: solar noon %v outside daylight", i, noon)
		}

		if day.CivilTwilightBegin != "" {
			civil := parseEvent(t, day.CivilTwilightBegin)
			if !civil.Before(sunrise) {
				t.Errorf("day %d: civil dawn %v not before sunrise %v", i, civil, sunrise)
			}
		}

		if day.MoonIllumination < 0 || day.MoonIllumination > 1 {
			t.Errorf("day %d: moon illumination %.4f outside [0, 1]", i, day.MoonIllumination)
		}
		if day.MoonPhase == "" {
			t.Errorf("day %d: missing moon phase", i)
		}
	}
}

func TestEventsGoldenAndBlueHourOffsets(t *testing.T) {
	svc := NewService(testLogger())

	day := svc.Events(40.7128, -74.0060, time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC), 1)[0]

	sunrise := parseEvent(t, day.Sunrise)
	if got := parseEvent(t, day.GoldenHourMorningStart); sunrise.Sub(got) != time.Hour {
		t.Errorf("morning golden hour starts %v before sunrise, want 1h", sunrise.Sub(got))
	}
	if day.GoldenHourMorningEnd != day.Sunrise {
		t.Error("morning golden hour should end at sunrise")
	}

	sunset := parseEvent(t, day.Sunset)
	if got := parseEvent(t, day.BlueHourEveningStart); got.Sub(sunset) != 30*time.Minute {
		t.Errorf("evening blue hour starts %v after sunset, want 30m", got.Sub(sunset))
	}
	if got := parseEvent(t, day.BlueHourEveningEnd); got.Sub(sunset) != 50*time.Minute {
		t.Errorf("evening blue hour ends %v after sunset, want 50m", got.Sub(sunset))
	}
}

func TestEventsMoonCrossings(t *testing.T) {
	svc := NewService(testLogger())

	// Over a week at mid latitude the moon both rises and sets at least
	// once.
	events := svc.Events(48.8566, 2.3522, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 7)

	sawRise, sawSet := false, false
	for _, day := range events {
		if day.Moonrise != "" {
			parseEvent(t, day.Moonrise)
			sawRise = true
		}
		if day.Moonset != "" {
			parseEvent(t, day.Moonset)
			sawSet = true
		}
	}
	if !sawRise || !sawSet {
		t.Errorf("week without moonrise (%v) or moonset (%v)", sawRise, sawSet)
	}
}

func parseEvent(t *testing.T, value string) time.Time {
	t.Helper()
	if value == "" {
		t.Fatal("expected an event time, got empty")
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad event time %q: %v", value, err)
	}
	return parsed
}
