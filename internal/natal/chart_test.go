package natal

import (
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestSignPosition(t *testing.T) {
	tests := []struct {
		degree     float64
		wantSign   string
		wantInSign float64
	}{
		{0, "Aries", 0},
		{29.9, "Aries", 29.9},
		{30, "Taurus", 0},
		{125.0, "Leo", 5.0},
		{359.99, "Pisces", 29.99},
		{365, "Aries", 5},
		{-10, "Pisces", 20},
	}

	for _, tc := range tests {
		got := SignPosition(tc.degree)
		if got.Sign != tc.wantSign {
			t.Errorf("SignPosition(%.2f).Sign = %q, want %q", tc.degree, got.Sign, tc.wantSign)
		}
		if math.Abs(got.DegreeInSign-tc.wantInSign) > 1e-9 {
			t.Errorf("SignPosition(%.2f).DegreeInSign = %.4f, want %.4f", tc.degree, got.DegreeInSign, tc.wantInSign)
		}
	}
}

func TestCalculateAspect(t *testing.T) {
	tests := []struct {
		name     string
		a1, a2   float64
		wantType string
		wantOrb  float64
		wantNone bool
	}{
		{"opposition exact", 10, 190, "Opposition", 0, false},
		{"square off by five", 0, 95, "Square", 5.00, false},
		{"conjunction within orb", 5, 358, "Conjunction", 7, false},
		{"trine", 10, 130, "Trine", 0, false},
		{"no aspect", 0, 75, "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CalculateAspect(tc.a1, tc.a2)
			if tc.wantNone {
				if ok {
					t.Fatalf("CalculateAspect(%v, %v) = %+v, want none", tc.a1, tc.a2, got)
				}
				return
			}
			if !ok {
				t.Fatalf("CalculateAspect(%v, %v) found no aspect, want %s", tc.a1, tc.a2, tc.wantType)
			}
			if got.Type != tc.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tc.wantType)
			}
			if math.Abs(got.Orb-tc.wantOrb) > 1e-9 {
				t.Errorf("Orb = %.2f, want %.2f", got.Orb, tc.wantOrb)
			}
			if !got.Applying {
				t.Error("Applying = false, want the simplified always-true flag")
			}
		})
	}
}

func TestCalculateAspectSymmetric(t *testing.T) {
	pairs := [][2]float64{{10, 190}, {0, 95}, {33, 151}, {300, 62}}

	for _, p := range pairs {
		ab, okAB := CalculateAspect(p[0], p[1])
		ba, okBA := CalculateAspect(p[1], p[0])
		if okAB != okBA || ab != ba {
			t.Errorf("aspect(%v, %v) = %+v,%v but aspect(%v, %v) = %+v,%v",
				p[0], p[1], ab, okAB, p[1], p[0], ba, okBA)
		}
	}
}

func TestHouseForPartition(t *testing.T) {
	// Uneven cusps wrapping through 0°.
	cusps := [12]float64{310, 348, 25, 52, 78, 110, 130, 168, 205, 232, 258, 290}

	// Every cusp opens its own house.
	for i, cusp := range cusps {
		if got := HouseFor(cusp, cusps); got != i+1 {
			t.Errorf("HouseFor(cusp %d = %.0f) = %d, want %d", i+1, cusp, got, i+1)
		}
	}

	// Every longitude maps to exactly one house, and consecutive degrees
	// only move forward through house numbers.
	counts := make(map[int]int)
	for lon := 0.0; lon < 360; lon += 0.25 {
		h := HouseFor(lon, cusps)
		if h < 1 || h > 12 {
			t.Fatalf("HouseFor(%.2f) = %d, out of range", lon, h)
		}
		counts[h]++
	}
	for h := 1; h <= 12; h++ {
		if counts[h] == 0 {
			t.Errorf("house %d never matched, partition has a gap", h)
		}
	}
}

type stubProvider struct {
	position func(jd float64, body ephem.Body) (ephem.EclipticPosition, error)
	houses   func(jd float64, latDeg, lonDeg float64, system ephem.HouseSystem) (ephem.Houses, error)
}

func (s *stubProvider) EclipticPosition(jd float64, body ephem.Body) (ephem.EclipticPosition, error) {
	return s.position(jd, body)
}

func (s *stubProvider) Houses(jd float64, latDeg, lonDeg float64, system ephem.HouseSystem) (ephem.Houses, error) {
	if s.houses != nil {
		return s.houses(jd, latDeg, lonDeg, system)
	}
	return ephem.NewAnalytic().Houses(jd, latDeg, lonDeg, system)
}

func TestChart(t *testing.T) {
	svc := NewService(testLogger())

	chart, err := svc.Chart(
		time.Date(1990, 6, 15, 14, 30, 0, 0, time.UTC),
		"Europe/Istanbul", 41.0082, 28.9784, ephem.Placidus)
	if err != nil {
		t.Fatalf("Chart() error = %v", err)
	}

	if len(chart.Houses) != 12 {
		t.Fatalf("chart has %d houses, want 12", len(chart.Houses))
	}
	if len(chart.Planets) != 11 {
		t.Fatalf("chart has %d planets, want 11", len(chart.Planets))
	}

	for _, p := range chart.Planets {
		if p.House < 1 || p.House > 12 {
			t.Errorf("%s in house %d, out of range", p.Name, p.House)
		}
		if p.Sign == "" {
			t.Errorf("%s has no sign", p.Name)
		}
	}
	for _, a := range chart.Aspects {
		if a.Planet1 == string(ephem.MeanNode) || a.Planet2 == string(ephem.MeanNode) {
			t.Errorf("aspect %s-%s involves the node, aspects cover majors only", a.Planet1, a.Planet2)
		}
		if !a.Applying {
			t.Errorf("aspect %s-%s not applying, flag is always true", a.Planet1, a.Planet2)
		}
	}
	if chart.Ascendant.Sign == "" || chart.Midheaven.Sign == "" {
		t.Error("chart is missing angle signs")
	}
}

func TestChartOmitsFailedBody(t *testing.T) {
	real := ephem.NewAnalytic()
	provider := &stubProvider{
		position: func(jd float64, body ephem.Body) (ephem.EclipticPosition, error) {
			if body == ephem.Mars {
				return ephem.EclipticPosition{}, ephem.ErrUnknownBody
			}
			return real.EclipticPosition(jd, body)
		},
	}
	svc := NewServiceWithProvider(testLogger(), provider)

	chart, err := svc.Chart(
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		"UTC", 48.8566, 2.3522, ephem.Equal)
	if err != nil {
		t.Fatalf("Chart() error = %v", err)
	}

	if len(chart.Planets) != 10 {
		t.Fatalf("chart has %d planets, want 10 with Mars dropped", len(chart.Planets))
	}
	for _, p := range chart.Planets {
		if p.Name == "Mars" {
			t.Error("Mars should have been omitted")
		}
	}
	for _, a := range chart.Aspects {
		if a.Planet1 == "Mars" || a.Planet2 == "Mars" {
			t.Errorf("aspect %s-%s references the dropped body", a.Planet1, a.Planet2)
		}
	}
}

func TestChartInvalidTimezone(t *testing.T) {
	svc := NewService(testLogger())

	_, err := svc.Chart(time.Now(), "Mars/Olympus_Mons", 0, 0, ephem.Placidus)
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Errorf("error = %v, want ErrInvalidTimezone", err)
	}
}

func TestJulianDayAt(t *testing.T) {
	// Noon UTC on J2000 via a zone three hours east.
	jd, err := JulianDayAt(time.Date(2000, 1, 1, 15, 0, 0, 0, time.UTC), "Europe/Moscow")
	if err != nil {
		t.Fatalf("JulianDayAt() error = %v", err)
	}
	if math.Abs(jd-astro.J2000) > 1e-6 {
		t.Errorf("jd = %.6f, want %.6f", jd, astro.J2000)
	}
}
