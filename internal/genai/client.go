// Package genai implements clients for the generative-language provider's
// generateContent endpoint. Two transports exist on purpose: the primary one
// goes through the resilient client (circuit breaker, retry) and the secondary
// one is a bare HTTP call to the same endpoint. They fail independently, so
// the advisor tries both before degrading to its deterministic fallback.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/upstream"
)

const (
	// ProviderName identifies the generative-language provider.
	ProviderName = "gemini"

	// DefaultBaseURL is the generative-language API base URL.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Provider errors.
var (
	ErrMissingAPIKey = errors.New("generative API key not configured")
	ErrEmptyResponse = errors.New("empty generation response")
)

// Transport generates text from a prompt, optionally with inline image bytes.
type Transport interface {
	// GenerateText sends a text prompt and returns the generated text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateVision sends a prompt plus inline image bytes to the vision model.
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)

	// Name returns the transport name for logging.
	Name() string
}

// doer abstracts the HTTP door so the two transports can share the wire codec.
type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for a generateContent transport.
type ClientConfig struct {
	// APIKey is the generative-language API key (required).
	APIKey string

	// Model is the text model identifier (default: gemini-1.5-flash).
	Model string

	// VisionModel is the model used for image prompts (defaults to Model).
	VisionModel string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the resilient client for the primary transport (optional).
	HTTPClient *upstream.Client

	// Timeout bounds the secondary transport's calls (default: 30s).
	Timeout time.Duration

	// Registry receives success/failure records for health reporting (optional).
	Registry *upstream.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a generateContent transport.
type Client struct {
	apiKey      string
	model       string
	visionModel string
	baseURL     string
	name        string
	http        doer
	registry    *upstream.Registry
	logger      zerolog.Logger
}

// NewPrimaryTransport creates the primary transport, routed through the
// resilient client so provider flapping trips the circuit breaker.
func NewPrimaryTransport(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := upstream.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = 30 * time.Second
		httpClient = upstream.NewClient(clientCfg)
	}
	return newClient(cfg, "gemini-primary", httpClient)
}

// NewSecondaryTransport creates the secondary transport: a plain HTTP client
// hitting the same endpoint with no breaker in the path. When the primary
// transport fails for reasons of its own (open circuit, retry exhaustion),
// this call path can still succeed.
func NewSecondaryTransport(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return newClient(cfg, "gemini-fallback", &http.Client{Timeout: timeout})
}

func newClient(cfg ClientConfig, name string, door doer) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	visionModel := cfg.VisionModel
	if visionModel == "" {
		visionModel = model
	}

	return &Client{
		apiKey:      cfg.APIKey,
		model:       model,
		visionModel: visionModel,
		baseURL:     baseURL,
		name:        name,
		http:        door,
		registry:    cfg.Registry,
		logger:      cfg.Logger,
	}
}

// Name returns the transport name.
func (c *Client) Name() string {
	return c.name
}

// GenerateText sends a text prompt to the configured model.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1024,
		},
	}
	return c.generate(ctx, c.model, req)
}

// GenerateVision sends a prompt plus inline image bytes to the vision model.
func (c *Client) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{
			{Text: prompt},
			{InlineData: &inlineData{
				MimeType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(image),
			}},
		}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.4,
			MaxOutputTokens: 1024,
		},
	}
	return c.generate(ctx, c.visionModel, req)
}

func (c *Client) generate(ctx context.Context, model string, payload generateRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure(err)
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		c.recordFailure(err)
		return "", err
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		c.recordFailure(err)
		return "", fmt.Errorf("decoding response: %w", err)
	}

	text := genResp.firstText()
	if text == "" {
		c.recordFailure(ErrEmptyResponse)
		return "", ErrEmptyResponse
	}

	if c.registry != nil {
		c.registry.RecordSuccess(ProviderName)
	}

	c.logger.Debug().
		Str("transport", c.name).
		Str("model", model).
		Int("response_chars", len(text)).
		Msg("generation succeeded")

	return text, nil
}

func (c *Client) recordFailure(err error) {
	if c.registry != nil {
		c.registry.RecordFailure(ProviderName, err)
	}
}

// generateContent wire format.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// firstText returns the text at candidates[0].content.parts[0], or "".
func (r *generateResponse) firstText() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
