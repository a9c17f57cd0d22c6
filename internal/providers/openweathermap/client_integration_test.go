//go:build integration

package openweathermap

import (
	"log/slog"
	"os"
	"testing"
)

func TestClient_CurrentWeather_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENWEATHERMAP_API_KEY")
	if apiKey == "" {
		t.Skip("OPENWEATHERMAP_API_KEY not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	client := NewClient(logger, apiKey)

	t.Log("Making API call to OpenWeatherMap current weather endpoint...")

	resp, err := client.CurrentWeather(41.0082, 28.9784)
	if err != nil {
		t.Fatalf("Failed to get weather: %v", err)
	}

	if resp == nil {
		t.Fatal("Response is nil")
	}

	t.Logf("Weather Details:")
	t.Logf("  Temperature: %.1f°C", resp.Main.Temp)
	t.Logf("  Humidity: %.0f%%", resp.Main.Humidity)
	t.Logf("  Cloud Cover: %.0f%%", resp.Clouds.All)
	t.Logf("  Wind Speed: %.1f m/s", resp.Wind.Speed)
	t.Logf("  Description: %s", resp.Description())

	if resp.Main.Temp < -60 || resp.Main.Temp > 60 {
		t.Errorf("Temperature %.1f outside plausible range", resp.Main.Temp)
	}

	t.Log("✓ CurrentWeather API call successful, response structure valid")
}
