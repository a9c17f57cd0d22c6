package opencage

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://opencagedata.com/api
// Sample request: https://api.opencagedata.com/geocode/v1/json?q=Istanbul&key=KEY&limit=1
const (
	baseURL = "https://api.opencagedata.com/geocode/v1/json"
)

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
		logger:     logger.With("component", "opencage-client"),
	}
}

// Geocode resolves a free-form place query to coordinates.
func (c *Client) Geocode(query string) (*GeocodeAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("key", c.apiKey)
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("geocoding with OpenCage", "query", query)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch OpenCage data", "query", query, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenCage API returned error",
			"status_code", resp.StatusCode,
			"query", query,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GeocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode OpenCage response", "query", query, "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully geocoded", "query", query, "results", len(apiResp.Results))
	return &apiResp, nil
}
