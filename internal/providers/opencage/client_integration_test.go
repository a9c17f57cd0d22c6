//go:build integration

package opencage

import (
	"log/slog"
	"os"
	"testing"
)

func TestClient_Geocode_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENCAGE_API_KEY")
	if apiKey == "" {
		t.Skip("OPENCAGE_API_KEY not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	client := NewClient(logger, apiKey)

	t.Log("Making API call to OpenCage geocoding endpoint...")

	resp, err := client.Geocode("Istanbul, Turkey")
	if err != nil {
		t.Fatalf("Failed to geocode: %v", err)
	}

	if resp == nil {
		t.Fatal("Response is nil")
	}

	if len(resp.Results) == 0 {
		t.Fatal("No results returned")
	}

	first := resp.Results[0]
	t.Logf("Geocode Result:")
	t.Logf("  Formatted: %s", first.Formatted)
	t.Logf("  Name: %s", first.Components.Name())
	t.Logf("  Country: %s", first.Components.Country)
	t.Logf("  Lat/Lng: %f, %f", first.Geometry.Lat, first.Geometry.Lng)

	if first.Geometry.Lat < 40 || first.Geometry.Lat > 42 {
		t.Errorf("Expected Istanbul latitude near 41, got %f", first.Geometry.Lat)
	}

	t.Log("✓ Geocode API call successful, response structure valid")
}
