// Package api provides the HTTP API for Baku Air Guardian.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/advisor"
	"github.com/guuullchin11/baku-air-guardian/internal/airquality"
	"github.com/guuullchin11/baku-air-guardian/internal/api/handler"
	"github.com/guuullchin11/baku-air-guardian/internal/api/middleware"
	"github.com/guuullchin11/baku-air-guardian/internal/skyimage"
	"github.com/guuullchin11/baku-air-guardian/internal/upstream"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	Logger            zerolog.Logger
	Metrics           *middleware.Metrics
	AllowedOrigins    []string
	Registry          *upstream.Registry
	AirQualityService *airquality.Service
	AdvisorService    *advisor.Service
	ImageAnalyzer     *skyimage.Analyzer
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID) // Generate/propagate request ID first
	r.Use(middleware.Tracing()) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.SecurityHeaders) // Security headers
	r.Use(middleware.ContentTypeJSON) // JSON content type

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(cfg.Version, cfg.Registry)
	aqiHandler := handler.NewAQIHandler(cfg.AirQualityService)
	chatHandler := handler.NewChatHandler(cfg.AdvisorService)
	imageHandler := handler.NewImageHandler(cfg.ImageAnalyzer)
	compareHandler := handler.NewCompareHandler(cfg.AdvisorService)

	// Rate limit middleware per endpoint category
	aiRateLimit := middleware.RateLimitByIP(middleware.AIRateLimit)             // 20 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.HealthCheck)

		// Data endpoints - standard rate limiting
		r.Route("/aqi", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", aqiHandler.ListReadings)
			r.Get("/{district}", aqiHandler.GetDistrict)
		})

		// AI-backed endpoints - strict rate limiting, each request can cost
		// up to two generateContent round trips
		r.Group(func(r chi.Router) {
			r.Use(aiRateLimit)
			r.Post("/chat", chatHandler.Chat)
			r.Post("/chat/reset", chatHandler.Reset)
			r.Post("/analyze-image", imageHandler.Analyze)
			r.Post("/compare", compareHandler.Compare)
		})
	})

	return r
}
