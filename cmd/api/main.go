// Package main provides the entrypoint for the Baku Air Guardian API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/advisor"
	"github.com/guuullchin11/baku-air-guardian/internal/airquality"
	"github.com/guuullchin11/baku-air-guardian/internal/airquality/openweathermap"
	"github.com/guuullchin11/baku-air-guardian/internal/api"
	"github.com/guuullchin11/baku-air-guardian/internal/api/middleware"
	"github.com/guuullchin11/baku-air-guardian/internal/config"
	"github.com/guuullchin11/baku-air-guardian/internal/genai"
	"github.com/guuullchin11/baku-air-guardian/internal/skyimage"
	"github.com/guuullchin11/baku-air-guardian/internal/telemetry"
	"github.com/guuullchin11/baku-air-guardian/internal/upstream"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "baku-air-guardian-api"

	// Local development convenience; absence of a .env file is not an error
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Env).
		Msg("starting Baku Air Guardian API")

	// Missing provider keys degrade rather than abort: every endpoint has a
	// deterministic fallback tier.
	if cfg.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY not set - pollution fetches will fail, readings omitted")
	}
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set - advice served from deterministic fallback only")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.OTELEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Provider registry feeds the health endpoint
	registry := upstream.NewRegistry()

	// Pollution provider behind the resilient client
	pollutionClientCfg := upstream.DefaultClientConfig(openweathermap.ProviderName)
	pollutionClientCfg.Timeout = cfg.PollutionTimeout
	pollutionClient := upstream.NewClient(pollutionClientCfg)
	registry.Register(openweathermap.ProviderName, pollutionClient)

	pollutionProvider := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     cfg.OpenWeatherAPIKey,
		HTTPClient: pollutionClient,
		Registry:   registry,
		Logger:     log,
	})

	airQualityService := airquality.NewService(airquality.ServiceConfig{
		Provider:     pollutionProvider,
		Logger:       log,
		FetchTimeout: cfg.PollutionTimeout,
	})
	log.Info().Msg("air quality service initialized")

	// Generative transports: primary through the breaker, secondary bare
	genaiClientCfg := upstream.DefaultClientConfig(genai.ProviderName)
	genaiClientCfg.Timeout = cfg.GenerateTimeout
	genaiClient := upstream.NewClient(genaiClientCfg)
	registry.Register(genai.ProviderName, genaiClient)

	primary := genai.NewPrimaryTransport(genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		VisionModel: cfg.GeminiVisionModel,
		HTTPClient:  genaiClient,
		Registry:    registry,
		Logger:      log,
	})

	var secondary genai.Transport
	if cfg.EnableSecondaryTransport {
		secondary = genai.NewSecondaryTransport(genai.ClientConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			VisionModel: cfg.GeminiVisionModel,
			Timeout:     cfg.GenerateTimeout,
			Registry:    registry,
			Logger:      log,
		})
	}

	advisorService := advisor.NewService(advisor.ServiceConfig{
		Primary:         primary,
		Secondary:       secondary,
		AirQuality:      airQualityService,
		DefaultLanguage: advisor.Language(cfg.DefaultLanguage),
		Logger:          log,
	})
	log.Info().Msg("advisor service initialized")

	imageAnalyzer := skyimage.NewAnalyzer(skyimage.AnalyzerConfig{
		Vision: primary,
		Logger: log,
	})
	log.Info().Msg("image analyzer initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:           Version,
		Logger:            log,
		Metrics:           metrics,
		AllowedOrigins:    cfg.AllowedOrigins,
		Registry:          registry,
		AirQualityService: airQualityService,
		AdvisorService:    advisorService,
		ImageAnalyzer:     imageAnalyzer,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
