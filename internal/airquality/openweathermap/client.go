// Package openweathermap implements the pollution data provider client
// against the OpenWeatherMap Air Pollution API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/airquality"
	"github.com/guuullchin11/baku-air-guardian/internal/upstream"
)

const (
	// ProviderName identifies this pollution provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap Air Pollution API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/air_pollution"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the air pollution API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *upstream.Client

	// Registry receives success/failure records for health reporting (optional).
	Registry *upstream.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap Air Pollution API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *upstream.Client
	registry   *upstream.Registry
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap pollution client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = upstream.NewClient(upstream.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		registry:   cfg.Registry,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetReading fetches and normalizes the air-quality reading for a coordinate
// pair. Any failure (network, non-2xx, malformed body, empty list) yields an
// error rather than a zero reading; callers must treat absence as "exclude
// this district", never as "AQI is 0".
func (c *Client) GetReading(ctx context.Context, lat, lon float64) (*airquality.Reading, error) {
	url := fmt.Sprintf("%s?lat=%.4f&lon=%.4f&appid=%s", c.baseURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		c.recordFailure(err)
		return nil, err
	}

	var owmResp pollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(owmResp.List) == 0 {
		err := fmt.Errorf("empty pollution list for %.4f,%.4f", lat, lon)
		c.recordFailure(err)
		return nil, err
	}

	if c.registry != nil {
		c.registry.RecordSuccess(ProviderName)
	}

	return c.toReading(&owmResp.List[0]), nil
}

func (c *Client) recordFailure(err error) {
	if c.registry != nil {
		c.registry.RecordFailure(ProviderName, err)
	}
}

// toReading normalizes one provider entry into a domain reading.
func (c *Client) toReading(entry *pollutionEntry) *airquality.Reading {
	return &airquality.Reading{
		AQI:  airquality.NormalizeIndex(entry.Main.AQI),
		PM25: airquality.Round2(entry.Components.PM25),
		PM10: airquality.Round2(entry.Components.PM10),
		CO:   airquality.Round2(entry.Components.CO),
		NO2:  airquality.Round2(entry.Components.NO2),
		O3:   airquality.Round2(entry.Components.O3),
	}
}

// OpenWeatherMap Air Pollution API response structures.

type pollutionResponse struct {
	List []pollutionEntry `json:"list"`
}

type pollutionEntry struct {
	Main struct {
		AQI int `json:"aqi"`
	} `json:"main"`
	Components struct {
		CO   float64 `json:"co"`
		NO2  float64 `json:"no2"`
		O3   float64 `json:"o3"`
		PM25 float64 `json:"pm2_5"`
		PM10 float64 `json:"pm10"`
	} `json:"components"`
}
