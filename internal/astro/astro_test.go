package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 epoch",
			time:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
			tol:      0.0001,
		},
		{
			name:     "Unix epoch",
			time:     time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
			tol:      0.0001,
		},
		{
			name:     "2024-01-01 00:00 UTC",
			time:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2460310.5,
			tol:      0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.time)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("JulianDay() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1987, 6, 19, 4, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
	}

	for _, want := range times {
		got := JulianDayToTime(JulianDay(want))
		if d := got.Sub(want); d > time.Second || d < -time.Second {
			t.Errorf("round trip of %v = %v (off by %v)", want, got, d)
		}
	}
}

func TestGMST(t *testing.T) {
	// At the J2000 epoch GMST is approximately 280.46°.
	got := GMST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(got-280.46061837) > 0.01 {
		t.Errorf("GMST(J2000) = %v, want ~280.46", got)
	}
}

func TestLocalSiderealHours(t *testing.T) {
	// LST at Greenwich equals GMST/15; an observer 15° east is one sidereal
	// hour ahead.
	at := time.Date(2024, 3, 20, 22, 0, 0, 0, time.UTC)
	greenwich := LocalSiderealHours(at, 0)
	east := LocalSiderealHours(at, 15)

	diff := math.Mod(east-greenwich+24, 24)
	if math.Abs(diff-1.0) > 1e-9 {
		t.Errorf("LST offset for 15°E = %v hours, want 1", diff)
	}
	if greenwich < 0 || greenwich >= 24 {
		t.Errorf("LST = %v, want [0, 24)", greenwich)
	}
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name                   string
		ra1, dec1, ra2, dec2   float64
		expected               float64
		tol                    float64
	}{
		{name: "same point", ra1: 5, dec1: 20, ra2: 5, dec2: 20, expected: 0, tol: 1e-9},
		{name: "pole to pole", ra1: 0, dec1: 90, ra2: 12, dec2: -90, expected: 180, tol: 1e-9},
		{name: "one hour on equator", ra1: 0, dec1: 0, ra2: 1, dec2: 0, expected: 15, tol: 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSeparation(tt.ra1, tt.dec1, tt.ra2, tt.dec2)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("AngularSeparation() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	// The vernal equinox direction maps to RA 0h, Dec 0°.
	ra, dec := EclipticToEquatorial(0, 0, J2000)
	if math.Abs(ra) > 1e-6 && math.Abs(ra-24) > 1e-6 {
		t.Errorf("RA of equinox = %v hours, want 0", ra)
	}
	if math.Abs(dec) > 1e-6 {
		t.Errorf("Dec of equinox = %v, want 0", dec)
	}

	// 90° ecliptic longitude lies at the obliquity in declination.
	_, dec = EclipticToEquatorial(90, 0, J2000)
	if math.Abs(dec-23.439) > 0.01 {
		t.Errorf("Dec at solstice point = %v, want ~23.44", dec)
	}
}

func TestNormalize360(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-10, 350},
		{370, 10},
		{0, 0},
		{360, 0},
		{-725, 355},
	}
	for _, tt := range tests {
		if got := Normalize360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
