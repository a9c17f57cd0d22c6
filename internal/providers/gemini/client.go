package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const (
	baseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	model   = "gemini-2.0-flash-exp"
)

// ErrEmptyResponse reports a well-formed API reply carrying no text.
var ErrEmptyResponse = errors.New("gemini: empty response")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "gemini-client"),
	}
}

// GenerateContent sends a single-turn prompt and returns the model's text.
func (c *Client) GenerateContent(prompt string) (string, error) {
	reqBody := GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: GenerationConfig{
			Temperature:     0.8,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 4096,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	c.logger.Debug("requesting Gemini completion", "model", model, "prompt_len", len(prompt))

	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("failed to reach Gemini API", "error", err)
		return "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Gemini API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return "", fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Gemini response", "error", err)
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := apiResp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("Gemini completion received", "chars", len(text))
	return text, nil
}
