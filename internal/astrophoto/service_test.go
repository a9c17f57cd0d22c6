package astrophoto

import (
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFindTarget(t *testing.T) {
	svc := NewService(testLogger())

	tests := []struct {
		query  string
		wantID string
	}{
		{"M31", "M31"},
		{"m31", "M31"},
		{"  Andromeda Galaxy  ", "M31"},
		{"orion nebula", "M42"},
		{"Jupiter", "jupiter"},
		{"venus", "venus"},
	}
	for _, tt := range tests {
		got, err := svc.FindTarget(tt.query)
		if err != nil {
			t.Errorf("FindTarget(%q) error: %v", tt.query, err)
			continue
		}
		if got.ID != tt.wantID {
			t.Errorf("FindTarget(%q) = %q, want %q", tt.query, got.ID, tt.wantID)
		}
	}

	if _, err := svc.FindTarget("NGC 9999"); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("FindTarget(unknown) error = %v, want ErrTargetNotFound", err)
	}
}

func TestTargetsListsCatalog(t *testing.T) {
	svc := NewService(testLogger())

	targets := svc.Targets()
	if len(targets) != 18 {
		t.Fatalf("len(Targets()) = %d, want 18", len(targets))
	}
	if targets[0].ID != "M31" {
		t.Errorf("first target = %q, want M31", targets[0].ID)
	}

	planets := 0
	for _, tgt := range targets {
		if tgt.IsPlanet() {
			planets++
			if tgt.Magnitude != nil {
				t.Errorf("planet %s carries a fixed magnitude", tgt.ID)
			}
		} else if tgt.Magnitude == nil {
			t.Errorf("deep sky target %s has no magnitude", tgt.ID)
		}
	}
	if planets != 4 {
		t.Errorf("planet count = %d, want 4", planets)
	}
}

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "Excellent imaging conditions!"},
		{80.5, "Excellent imaging conditions!"},
		{80, "Good imaging conditions."},
		{61, "Good imaging conditions."},
		{60, "Fair imaging conditions - some compromises needed."},
		{41, "Fair imaging conditions - some compromises needed."},
		{40, "Poor imaging conditions - consider another date."},
		{5, "Poor imaging conditions - consider another date."},
	}
	for _, tt := range tests {
		if got := recommendation(tt.score); got != tt.want {
			t.Errorf("recommendation(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPlanAndromedaAutumn(t *testing.T) {
	svc := NewService(testLogger())

	date := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	plan, err := svc.Plan("M31", 40.7, -74.0, date, DefaultMinAltitude)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if plan.TargetName != "Andromeda Galaxy" || plan.TargetID != "M31" {
		t.Fatalf("target = %s/%s", plan.TargetID, plan.TargetName)
	}
	if plan.AstronomicalNightStart == "" || plan.AstronomicalNightEnd == "" {
		t.Fatal("night window not set")
	}
	if len(plan.Timeline) == 0 {
		t.Fatal("empty timeline")
	}
	if plan.BestTimeUTC == "" {
		t.Fatal("no best time found")
	}
	if plan.Altitude <= DefaultMinAltitude {
		t.Errorf("best altitude = %v, want > %v", plan.Altitude, DefaultMinAltitude)
	}
	if plan.QualityScore <= 0 || plan.QualityScore > 100 {
		t.Errorf("quality score out of range: %v", plan.QualityScore)
	}
	if plan.MoonIllumination < 0 || plan.MoonIllumination > 1 {
		t.Errorf("moon illumination out of range: %v", plan.MoonIllumination)
	}
	if plan.MoonPhase == "" || plan.MoonPhase == "Unknown" {
		t.Errorf("moon phase = %q", plan.MoonPhase)
	}

	start, _ := time.Parse(time.RFC3339, plan.AstronomicalNightStart)
	end, _ := time.Parse(time.RFC3339, plan.AstronomicalNightEnd)
	best, err := time.Parse(time.RFC3339, plan.BestTimeUTC)
	if err != nil {
		t.Fatalf("best time not RFC 3339: %v", err)
	}
	if best.Before(start) || !best.Before(end) {
		t.Errorf("best time %v outside night %v..%v", best, start, end)
	}
}

// Every timeline point's score must be reproducible from the point's own
// published fields.
func TestPlanTimelineScoresConsistent(t *testing.T) {
	svc := NewService(testLogger())

	date := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	plan, err := svc.Plan("M45", 48.9, 2.35, date, DefaultMinAltitude)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan.Timeline) == 0 {
		t.Fatal("empty timeline")
	}

	for _, p := range plan.Timeline {
		want := 0.0
		if p.Altitude > DefaultMinAltitude {
			want += math.Min(100, p.Altitude/60*100) * 0.4
		}
		if p.SunAltitude < -18 {
			want += 100 * 0.2
		}
		want += math.Min(100, p.MoonSeparation/90*100) * 0.2
		if p.MoonAltitude < 0 {
			want += 100 * 0.2
		} else {
			want += math.Max(0, 100-p.MoonAltitude*2) * 0.2
		}

		// The published fields are rounded, so allow a small slack.
		if math.Abs(p.QualityScore-want) > 0.5 {
			t.Fatalf("score at %s = %v, recomputed %v", p.TimeUTC, p.QualityScore, want)
		}
	}
}

func TestPlanTargetNeverHighEnough(t *testing.T) {
	svc := NewService(testLogger())

	// M8 culminates around 5 degrees from 60N and never nears 30.
	date := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	plan, err := svc.Plan("M8", 60.0, 10.0, date, DefaultMinAltitude)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if plan.BestTimeUTC != "" {
		t.Errorf("unexpected best time %q", plan.BestTimeUTC)
	}
	if plan.QualityScore != 0 {
		t.Errorf("quality score = %v, want 0", plan.QualityScore)
	}
	if !strings.Contains(plan.Recommendation, "does not rise above 30") {
		t.Errorf("recommendation = %q", plan.Recommendation)
	}
	if len(plan.Timeline) == 0 {
		t.Error("timeline should still be sampled")
	}
}

func TestPlanPolarDay(t *testing.T) {
	svc := NewService(testLogger())

	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	plan, err := svc.Plan("M13", 69.65, 18.96, date, DefaultMinAltitude)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if plan.Recommendation != "Could not determine night times for this location and date" {
		t.Errorf("recommendation = %q", plan.Recommendation)
	}
	if len(plan.Timeline) != 0 {
		t.Errorf("timeline should be empty, got %d points", len(plan.Timeline))
	}
	if plan.AstronomicalNightStart != "" || plan.AstronomicalNightEnd != "" {
		t.Error("night window should be unset")
	}
}

func TestPlanUnknownTarget(t *testing.T) {
	svc := NewService(testLogger())

	date := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Plan("Ceres", 40.0, 0.0, date, DefaultMinAltitude); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("Plan(unknown) error = %v, want ErrTargetNotFound", err)
	}
}
