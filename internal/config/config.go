// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration. The two provider keys are not
// required: without them the service still serves requests through its
// deterministic fallbacks, so absence is logged at startup rather than fatal.
type Config struct {
	// Server
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	// Providers
	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY"`
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`

	// Generation
	GeminiModel       string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiVisionModel string `env:"GEMINI_VISION_MODEL" envDefault:"gemini-1.5-flash"`
	DefaultLanguage   string `env:"DEFAULT_LANGUAGE" envDefault:"az"`

	// EnableSecondaryTransport controls the second AI call path.
	EnableSecondaryTransport bool `env:"ENABLE_SECONDARY_TRANSPORT" envDefault:"true"`

	// Timeouts
	PollutionTimeout time.Duration `env:"POLLUTION_TIMEOUT" envDefault:"10s"`
	GenerateTimeout  time.Duration `env:"GENERATE_TIMEOUT" envDefault:"30s"`

	// Telemetry
	OTELEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`

	// CORS
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
