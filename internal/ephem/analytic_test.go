package ephem

import (
	"errors"
	"math"
	"testing"
	"time"

	"celestialguide/internal/astro"
)

func TestSunLongitudeAtEquinox(t *testing.T) {
	// March equinox 2024: Sun crosses 0° ecliptic longitude.
	jd := astro.JulianDay(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))

	pos, err := NewAnalytic().EclipticPosition(jd, Sun)
	if err != nil {
		t.Fatalf("EclipticPosition() error = %v", err)
	}

	lon := pos.Longitude
	if lon > 180 {
		lon -= 360
	}
	if math.Abs(lon) > 0.05 {
		t.Errorf("sun longitude at equinox = %.4f, want ~0", pos.Longitude)
	}
	if pos.DistanceAU < 0.98 || pos.DistanceAU > 1.02 {
		t.Errorf("sun distance = %.4f AU, want ~1", pos.DistanceAU)
	}
}

func TestSunSpeed(t *testing.T) {
	jd := astro.JulianDay(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	pos, err := NewAnalytic().EclipticPosition(jd, Sun)
	if err != nil {
		t.Fatalf("EclipticPosition() error = %v", err)
	}
	if pos.Speed < 0.93 || pos.Speed > 1.05 {
		t.Errorf("sun speed = %.4f deg/day, want ~0.95-1.02", pos.Speed)
	}
}

func TestMoonPosition(t *testing.T) {
	jd := astro.JulianDay(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	pos, err := NewAnalytic().EclipticPosition(jd, Moon)
	if err != nil {
		t.Fatalf("EclipticPosition() error = %v", err)
	}

	if pos.Longitude < 0 || pos.Longitude >= 360 {
		t.Errorf("moon longitude = %.4f, want [0,360)", pos.Longitude)
	}
	if math.Abs(pos.Latitude) > 5.5 {
		t.Errorf("moon latitude = %.4f, want within ±5.5", pos.Latitude)
	}
	if pos.DistanceAU < 0.0023 || pos.DistanceAU > 0.0028 {
		t.Errorf("moon distance = %.6f AU, out of lunar range", pos.DistanceAU)
	}
	if pos.Speed < 11.5 || pos.Speed > 15.5 {
		t.Errorf("moon speed = %.4f deg/day, want ~11.8-15.4", pos.Speed)
	}
}

func TestMeanNodeRegression(t *testing.T) {
	jd := astro.JulianDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	pos, err := NewAnalytic().EclipticPosition(jd, MeanNode)
	if err != nil {
		t.Fatalf("EclipticPosition() error = %v", err)
	}
	if pos.Speed >= 0 {
		t.Errorf("node speed = %.4f, want negative (regressing)", pos.Speed)
	}
	if math.Abs(pos.Speed+0.0529) > 0.005 {
		t.Errorf("node speed = %.4f deg/day, want ~-0.0529", pos.Speed)
	}
}

func TestPlanetDistances(t *testing.T) {
	jd := astro.JulianDay(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	provider := NewAnalytic()

	tests := []struct {
		body     Body
		min, max float64
	}{
		{Mercury, 0.5, 1.5},
		{Venus, 0.25, 1.75},
		{Mars, 0.35, 2.7},
		{Jupiter, 3.9, 6.5},
		{Saturn, 8.0, 11.1},
		{Uranus, 17.2, 21.1},
		{Neptune, 28.9, 31.1},
		{Pluto, 28.5, 50.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.body), func(t *testing.T) {
			pos, err := provider.EclipticPosition(jd, tc.body)
			if err != nil {
				t.Fatalf("EclipticPosition() error = %v", err)
			}
			if pos.DistanceAU < tc.min || pos.DistanceAU > tc.max {
				t.Errorf("distance = %.3f AU, want [%.1f, %.1f]", pos.DistanceAU, tc.min, tc.max)
			}
			if pos.Longitude < 0 || pos.Longitude >= 360 {
				t.Errorf("longitude = %.4f, want [0,360)", pos.Longitude)
			}
		})
	}
}

func TestOuterPlanetSpeedMagnitude(t *testing.T) {
	// Outer planets never exceed a fraction of a degree per day
	// geocentrically.
	jd := astro.JulianDay(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	pos, err := NewAnalytic().EclipticPosition(jd, Neptune)
	if err != nil {
		t.Fatalf("EclipticPosition() error = %v", err)
	}
	if math.Abs(pos.Speed) > 0.05 {
		t.Errorf("neptune speed = %.4f deg/day, want |v| < 0.05", pos.Speed)
	}
}

func TestUnknownBody(t *testing.T) {
	_, err := NewAnalytic().EclipticPosition(astro.J2000, Body("Vulcan"))
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("error = %v, want ErrUnknownBody", err)
	}
}
