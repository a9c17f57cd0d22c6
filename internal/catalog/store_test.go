package catalog

import (
	"errors"
	"testing"

	"celestialguide/internal/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	hip := []types.CatalogStar{
		{HipID: 32349, RA: 6.7525, Dec: -16.7161, Magnitude: -1.46, Parallax: 379.21, ProperName: "Sirius"},
		{HipID: 91262, RA: 18.6156, Dec: 38.7837, Magnitude: 0.03, Parallax: 130.23, ProperName: "Vega"},
		{HipID: 11767, RA: 2.5301, Dec: 89.2641, Magnitude: 1.98, Parallax: 7.54, ProperName: "Polaris"},
		{HipID: 54061, RA: 11.0622, Dec: 61.7510, Magnitude: 1.79, ProperName: "Dubhe"},
		{HipID: 53910, RA: 11.0307, Dec: 56.3824, Magnitude: 2.37, ProperName: "Merak"},
	}
	if _, err := store.ImportHipparcos(hip); err != nil {
		t.Fatalf("ImportHipparcos() error = %v", err)
	}

	bright := []BrightStar{
		{BscID: 2491, HipID: 32349, RA: 6.7525, Dec: -16.7161, Magnitude: -1.46, Name: "Sirius"},
		{BscID: 7001, HipID: 91262, RA: 18.6156, Dec: 38.7837, Magnitude: 0.03, Name: "Vega"},
		{BscID: 424, HipID: 11767, RA: 2.5301, Dec: 89.2641, Magnitude: 1.98, Name: "Polaris"},
		{BscID: 9999, RA: 1.0, Dec: 1.0, Magnitude: 8.5},
	}
	if _, err := store.ImportBrightStars(bright); err != nil {
		t.Fatalf("ImportBrightStars() error = %v", err)
	}

	names := map[string]int{"Sirius": 32349, "Vega": 91262, "Polaris": 11767, "Dog Star": 32349}
	if _, err := store.ImportNames(names); err != nil {
		t.Fatalf("ImportNames() error = %v", err)
	}

	lines := []types.ConstellationLine{
		{Constellation: "UMa", HipID1: 54061, HipID2: 53910},
	}
	if _, err := store.ImportConstellationLines(lines); err != nil {
		t.Fatalf("ImportConstellationLines() error = %v", err)
	}

	return store
}

func TestFindStar(t *testing.T) {
	store := testStore(t)

	tests := []struct {
		name    string
		query   string
		wantHip int
		wantErr bool
	}{
		{"by hip id", "32349", 32349, false},
		{"by hip id with spaces", " 11767 ", 11767, false},
		{"by common name", "Vega", 91262, false},
		{"common name is case insensitive", "dog star", 32349, false},
		{"by proper name substring", "olari", 11767, false},
		{"unknown star", "Krypton", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			star, err := store.FindStar(tc.query)
			if tc.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("error = %v, want ErrNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindStar(%q) error = %v", tc.query, err)
			}
			if star.HipID != tc.wantHip {
				t.Errorf("FindStar(%q).HipID = %d, want %d", tc.query, star.HipID, tc.wantHip)
			}
		})
	}
}

func TestFindStarCarriesParallax(t *testing.T) {
	store := testStore(t)

	star, err := store.FindStar("Sirius")
	if err != nil {
		t.Fatalf("FindStar() error = %v", err)
	}
	if star.Parallax != 379.21 {
		t.Errorf("Parallax = %v, want 379.21", star.Parallax)
	}
	if star.ProperName != "Sirius" {
		t.Errorf("ProperName = %q, want Sirius", star.ProperName)
	}
}

func TestSearchNames(t *testing.T) {
	store := testStore(t)

	matches, err := store.SearchNames("s", 10)
	if err != nil {
		t.Fatalf("SearchNames() error = %v", err)
	}
	if len(matches) < 2 {
		t.Fatalf("got %d matches, want at least 2", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Magnitude > matches[i].Magnitude {
			t.Errorf("matches not ordered by brightness: %v before %v", matches[i-1], matches[i])
		}
	}

	limited, err := store.SearchNames("s", 1)
	if err != nil {
		t.Fatalf("SearchNames() error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d matches", len(limited))
	}
}

func TestBrightStars(t *testing.T) {
	store := testStore(t)

	stars, err := store.BrightStars(6.0)
	if err != nil {
		t.Fatalf("BrightStars() error = %v", err)
	}
	if len(stars) != 3 {
		t.Fatalf("got %d stars below magnitude 6, want 3", len(stars))
	}
	if stars[0].HipID != 32349 {
		t.Errorf("first star HipID = %d, want the brightest (32349)", stars[0].HipID)
	}
	for _, s := range stars {
		if s.Magnitude >= 6.0 {
			t.Errorf("star %d magnitude %.2f not below limit", s.HipID, s.Magnitude)
		}
	}
}

func TestConstellationSegments(t *testing.T) {
	store := testStore(t)

	segments, err := store.ConstellationSegments()
	if err != nil {
		t.Fatalf("ConstellationSegments() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}

	seg := segments[0]
	if seg.HipID1 != 54061 || seg.HipID2 != 53910 {
		t.Errorf("segment endpoints = %d, %d", seg.HipID1, seg.HipID2)
	}
	if seg.RA1 != 11.0622 || seg.RA2 != 11.0307 {
		t.Errorf("segment coordinates not joined: %+v", seg)
	}
}

func TestLoaded(t *testing.T) {
	empty, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer empty.Close()

	if ok, err := empty.Loaded(); err != nil || ok {
		t.Errorf("empty store Loaded() = %v, %v; want false, nil", ok, err)
	}

	full := testStore(t)
	if ok, err := full.Loaded(); err != nil || !ok {
		t.Errorf("seeded store Loaded() = %v, %v; want true, nil", ok, err)
	}
}
