package advisor

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/genai"
)

// defaultAvgAQI is used when no district reading succeeded: a representative
// "moderate" midpoint, so total data loss never reports a false "good".
const defaultAvgAQI = 75

// AQISource supplies the current district→AQI mapping.
type AQISource interface {
	AQIByDistrict(ctx context.Context) map[string]int
}

// ServiceConfig holds configuration for the advisor service.
type ServiceConfig struct {
	// Primary is the first generative transport tried.
	Primary genai.Transport

	// Secondary is the second transport, tried when the primary fails.
	// Nil disables the second tier.
	Secondary genai.Transport

	// AirQuality supplies current readings.
	AirQuality AQISource

	// DefaultLanguage applies when the caller supplies none (default: az).
	DefaultLanguage Language

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service produces health advice through a three-tier fallback chain:
// primary transport, secondary transport, deterministic band text. Every
// failure path resolves to a valid Result; nothing is thrown past this
// boundary.
type Service struct {
	primary     genai.Transport
	secondary   genai.Transport
	airQuality  AQISource
	history     *History
	defaultLang Language
	logger      zerolog.Logger
}

// NewService creates a new advisor service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		primary:     cfg.Primary,
		secondary:   cfg.Secondary,
		airQuality:  cfg.AirQuality,
		history:     NewHistory(),
		defaultLang: cfg.DefaultLanguage.Normalize(),
		logger:      cfg.Logger,
	}
}

// History exposes the conversation log, mainly for tests and the reset handler.
func (s *Service) History() *History {
	return s.history
}

// Advise answers a user question with current air-quality context.
// The returned CurrentAQI contains only districts whose fetch succeeded.
func (s *Service) Advise(ctx context.Context, message string, profile *UserProfile) Result {
	lang := s.defaultLang
	if profile != nil && profile.Language != "" {
		lang = profile.Language.Normalize()
	}

	aqiByDistrict := s.airQuality.AQIByDistrict(ctx)
	avgAQI := averageAQI(aqiByDistrict)

	prompt := buildAdvicePrompt(message, aqiByDistrict, avgAQI, profile, lang)

	if text, err := s.generate(ctx, prompt); err == nil {
		s.history.AppendExchange(message, text)
		return Result{Response: text, CurrentAQI: aqiByDistrict}
	}

	s.logger.Warn().
		Int("avg_aqi", avgAQI).
		Msg("all generative transports failed, using deterministic advice")

	return Result{
		Response:   fallbackAdvice(avgAQI, profile, lang),
		CurrentAQI: aqiByDistrict,
	}
}

// generate tries the primary transport, then the secondary. The transports
// share a provider but fail independently (open circuit vs endpoint outage),
// so the second attempt meaningfully raises the success probability.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.primary.GenerateText(ctx, prompt)
	if err == nil {
		return text, nil
	}

	s.logger.Warn().
		Str("transport", s.primary.Name()).
		Err(err).
		Msg("primary generation failed")

	if s.secondary == nil {
		return "", err
	}

	text, err = s.secondary.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn().
			Str("transport", s.secondary.Name()).
			Err(err).
			Msg("secondary generation failed")
		return "", err
	}

	return text, nil
}

// Reset clears the conversation history unconditionally.
func (s *Service) Reset() {
	s.history.Reset()
	s.logger.Info().Msg("conversation history cleared")
}

// Compare asks which of two districts is cleaner. This is a secondary
// feature: one retry-free attempt, then a fixed apology per language.
func (s *Service) Compare(ctx context.Context, a, b ComparePair, lang Language) string {
	lang = lang.Normalize()

	text, err := s.primary.GenerateText(ctx, buildComparePrompt(a, b, lang))
	if err != nil {
		s.logger.Warn().Err(err).Msg("comparison generation failed")
		if lang == LanguageEN {
			return "Sorry, the comparison could not be generated right now. Please try again later."
		}
		return "Üzr istəyirik, müqayisə hazırlana bilmədi. Zəhmət olmasa bir az sonra yenidən cəhd edin."
	}

	return text
}

// averageAQI is the arithmetic mean of the fetched values, rounded to the
// nearest integer, or defaultAvgAQI when nothing was fetched.
func averageAQI(aqiByDistrict map[string]int) int {
	if len(aqiByDistrict) == 0 {
		return defaultAvgAQI
	}

	sum := 0
	for _, aqi := range aqiByDistrict {
		sum += aqi
	}
	return int(math.Round(float64(sum) / float64(len(aqiByDistrict))))
}
