package skyimage

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/guuullchin11/baku-air-guardian/internal/genai"
)

// fallbackAQI is reported when nothing usable can be extracted: a moderate
// midpoint rather than a false "clean sky" zero.
const fallbackAQI = 75

// analysisPrompt instructs the vision model to answer as a JSON object.
// The model may still wrap the JSON in prose; the analyzer extracts it.
const analysisPrompt = `Sən Azərbaycanda hava keyfiyyəti ekspertsən.
Göy üzünün fotosuna bax və Azərbaycan dilində JSON formatında cavab ver:

{
  "description": "göy üzünün vəziyyəti (mavi/boz/dumanlı)",
  "estimated_aqi": təxmini AQI rəqəm (0-500),
  "aqi_category": "Good/Moderate/Unhealthy/VeryUnhealthy",
  "recommendations": {
    "healthy": "sağlam insanlar üçün məsləhət",
    "sensitive": "həssas qruplar üçün məsləhət",
    "children": "uşaqlar üçün məsləhət",
    "elderly": "yaşlılar üçün məsləhət"
  }
}

Qısa və aydın yaz.`

var (
	// jsonObjectPattern finds the first brace-delimited object in prose.
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

	// numeralPattern finds standalone 1-3 digit numbers.
	numeralPattern = regexp.MustCompile(`\b\d{1,3}\b`)
)

// AnalyzerConfig holds configuration for the sky image analyzer.
type AnalyzerConfig struct {
	// Vision is the generative transport used for the photo call.
	Vision genai.Transport

	// Logger for analyzer operations.
	Logger zerolog.Logger
}

// Analyzer classifies sky photos with a three-tier degradation chain:
// model JSON, numeral heuristic on the raw text, fixed payload. It never
// propagates an error to the caller.
type Analyzer struct {
	vision genai.Transport
	logger zerolog.Logger
}

// NewAnalyzer creates a new sky image analyzer.
func NewAnalyzer(cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{
		vision: cfg.Vision,
		logger: cfg.Logger,
	}
}

// Analyze classifies the given image bytes.
func (a *Analyzer) Analyze(ctx context.Context, image []byte, mimeType string) Classification {
	text, err := a.vision.GenerateVision(ctx, analysisPrompt, image, mimeType)
	if err != nil {
		a.logger.Warn().Err(err).Msg("vision call failed, using static classification")
		return staticClassification()
	}

	if result, ok := parseJSONClassification(text); ok {
		return result
	}

	a.logger.Debug().Msg("no parsable JSON in vision response, trying numeral heuristic")

	if result, ok := heuristicClassification(text); ok {
		return result
	}

	a.logger.Warn().Msg("no usable signal in vision response, using static classification")
	return staticClassification()
}

// parseJSONClassification extracts the first brace-delimited JSON object from
// the response text and parses it into a Classification.
func parseJSONClassification(text string) (Classification, bool) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return Classification{}, false
	}

	var result Classification
	if err := json.Unmarshal([]byte(match), &result); err != nil {
		return Classification{}, false
	}

	if result.EstimatedAQI < 0 || result.EstimatedAQI > 500 {
		result.EstimatedAQI = fallbackAQI
	}
	if result.AQICategory == "" {
		result.AQICategory = categoryForAQI(result.EstimatedAQI)
	}
	if result.Description == "" {
		result.Description = "Göy üzü analiz edildi"
	}
	fillRecommendations(&result)

	return result, true
}

// heuristicClassification scans the raw text for the first 0-500 numeral and
// treats it as the estimated AQI.
func heuristicClassification(text string) (Classification, bool) {
	for _, match := range numeralPattern.FindAllString(text, -1) {
		aqi, err := strconv.Atoi(match)
		if err != nil || aqi > 500 {
			continue
		}

		result := Classification{
			Description:  firstLine(text),
			EstimatedAQI: aqi,
			AQICategory:  categoryForAQI(aqi),
		}
		fillRecommendations(&result)
		return result, true
	}

	return Classification{}, false
}

// staticClassification is the guaranteed last tier.
func staticClassification() Classification {
	result := Classification{
		Description:  "Foto analiz edilə bilmədi",
		EstimatedAQI: fallbackAQI,
		AQICategory:  CategoryUnknown,
	}
	fillRecommendations(&result)
	return result
}

// genericRecommendations keyed on category for the heuristic and static tiers.
var genericRecommendations = map[Category]Recommendations{
	CategoryGood: {
		Healthy:   "Açıq havada fəaliyyət üçün əla şəraitdir.",
		Sensitive: "Məhdudiyyətə ehtiyac yoxdur.",
		Children:  "Uşaqlar çöldə sərbəst oynaya bilər.",
		Elderly:   "Yaşlılar üçün gəzinti təhlükəsizdir.",
	},
	CategoryModerate: {
		Healthy:   "Adi fəaliyyətə davam edə bilərsiniz.",
		Sensitive: "Uzunmüddətli ağır fəaliyyətdən çəkinin.",
		Children:  "Uşaqların uzun müddət çöldə qalmasını məhdudlaşdırın.",
		Elderly:   "Yaşlılar ağır fiziki işdən çəkinsin.",
	},
	CategoryUnhealthy: {
		Healthy:   "Çöldə ağır fəaliyyəti azaldın.",
		Sensitive: "Çölə çıxmamağa çalışın, maska tövsiyə olunur.",
		Children:  "Uşaqlar çöldə oynamasın.",
		Elderly:   "Yaşlılar evdə qalsın.",
	},
	CategoryVeryUnhealthy: {
		Healthy:   "Çölə çıxmaq məsləhət deyil.",
		Sensitive: "Evdə qalın, pəncərələri bağlı saxlayın.",
		Children:  "Uşaqlar mütləq evdə qalsın.",
		Elderly:   "Yaşlılar mütləq evdə qalsın, lazım olsa maska taxsın.",
	},
	CategoryUnknown: {
		Healthy:   "Hava keyfiyyəti müəyyən edilə bilmədi, ehtiyatlı olun.",
		Sensitive: "Həssas qruplar ehtiyatlı olsun.",
		Children:  "Uşaqların çöldə qalma müddətini məhdudlaşdırın.",
		Elderly:   "Yaşlılar ehtiyatlı olsun.",
	},
}

// fillRecommendations replaces empty recommendation fields with the generic
// per-category text.
func fillRecommendations(c *Classification) {
	generic, ok := genericRecommendations[c.AQICategory]
	if !ok {
		generic = genericRecommendations[CategoryUnknown]
	}

	if c.Recommendations.Healthy == "" {
		c.Recommendations.Healthy = generic.Healthy
	}
	if c.Recommendations.Sensitive == "" {
		c.Recommendations.Sensitive = generic.Sensitive
	}
	if c.Recommendations.Children == "" {
		c.Recommendations.Children = generic.Children
	}
	if c.Recommendations.Elderly == "" {
		c.Recommendations.Elderly = generic.Elderly
	}
}

// firstLine returns a short description snippet from the raw response.
func firstLine(text string) string {
	line := strings.TrimSpace(text)
	if idx := strings.IndexByte(line, '\n'); idx > 0 {
		line = line[:idx]
	}
	if runes := []rune(line); len(runes) > 120 {
		line = string(runes[:120])
	}
	if line == "" {
		line = "Göy üzü analiz edildi"
	}
	return line
}
