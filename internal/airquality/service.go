package airquality

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/location"
)

// Provider defines the interface for pollution data providers.
type Provider interface {
	// GetReading fetches a normalized reading for a coordinate pair.
	GetReading(ctx context.Context, lat, lon float64) (*Reading, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the air quality service.
type ServiceConfig struct {
	// Provider is the pollution data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// FetchTimeout bounds each per-district provider call (default: 10s).
	FetchTimeout time.Duration
}

// Service aggregates readings across the registered districts.
// Readings are fetched fresh per request and never cached.
type Service struct {
	provider     Provider
	logger       zerolog.Logger
	fetchTimeout time.Duration
}

// NewService creates a new air quality service.
func NewService(cfg ServiceConfig) *Service {
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = 10 * time.Second
	}

	return &Service{
		provider:     cfg.Provider,
		logger:       cfg.Logger,
		fetchTimeout: fetchTimeout,
	}
}

// GetDistrict returns the reading for a single named district.
func (s *Service) GetDistrict(ctx context.Context, name string) (*Reading, error) {
	profile, ok := location.Lookup(name)
	if !ok {
		return nil, ErrUnknownDistrict
	}

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	reading, err := s.provider.GetReading(ctx, profile.Lat, profile.Lon)
	if err != nil {
		s.logger.Warn().
			Str("district", name).
			Str("provider", s.provider.Name()).
			Err(err).
			Msg("pollution fetch failed")
		return nil, ErrProviderUnavailable
	}

	return reading, nil
}

// GetAll returns readings for every registered district, keyed by name.
// District fetches are independent, so they fan out concurrently; a failure
// on one district never aborts the others. Failed districts are omitted from
// the result, never defaulted to zero.
func (s *Service) GetAll(ctx context.Context) map[string]*Reading {
	profiles := location.All()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]*Reading, len(profiles))
	)

	for _, p := range profiles {
		wg.Add(1)
		go func(p location.Profile) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			reading, err := s.provider.GetReading(fetchCtx, p.Lat, p.Lon)
			if err != nil {
				s.logger.Warn().
					Str("district", p.Name).
					Err(err).
					Msg("pollution fetch failed, omitting district")
				return
			}

			mu.Lock()
			results[p.Name] = reading
			mu.Unlock()
		}(p)
	}

	wg.Wait()
	return results
}

// AQIByDistrict returns only the AQI values from GetAll, keyed by district.
// This is the shape the advisor consumes.
func (s *Service) AQIByDistrict(ctx context.Context) map[string]int {
	readings := s.GetAll(ctx)
	out := make(map[string]int, len(readings))
	for name, r := range readings {
		out[name] = r.AQI
	}
	return out
}
