//go:build integration

package gemini

import (
	"log/slog"
	"os"
	"testing"
)

func TestClient_GenerateContent_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	client := NewClient(logger, apiKey)

	t.Log("Making API call to Gemini generateContent endpoint...")

	text, err := client.GenerateContent("Reply with the single word: ready")
	if err != nil {
		t.Fatalf("Failed to generate content: %v", err)
	}

	if text == "" {
		t.Fatal("Empty response text")
	}

	t.Logf("Generated text: %s", text)
	t.Log("✓ GenerateContent API call successful, response structure valid")
}
