package advisor

import "strings"

// Deterministic fallback texts, keyed on the averaged AQI bands. These are the
// last tier of the chain and always produce actionable text.
var fallbackBands = map[Language][4]string{
	LanguageAZ: {
		"Hava keyfiyyəti yaxşıdır. Açıq havada vaxt keçirmək hamı üçün təhlükəsizdir.",
		"Hava keyfiyyəti ortadır. Çox həssas insanlar uzunmüddətli ağır fəaliyyətdən çəkinsin.",
		"Hava həssas qruplar üçün pisdir. Astmalılar, uşaqlar və yaşlılar çöldə ehtiyatlı olsun.",
		"Hava keyfiyyəti pisdir. Çölə çıxmaq məsləhət deyil, pəncərələri bağlı saxlayın.",
	},
	LanguageEN: {
		"Air quality is good. Outdoor activity is safe for everyone.",
		"Air quality is moderate. Very sensitive people should avoid prolonged heavy exertion.",
		"Air is unhealthy for sensitive groups. People with asthma, children and the elderly should be careful outdoors.",
		"Air quality is unhealthy. Going outside is not recommended; keep windows closed.",
	},
}

var asthmaClause = map[Language]string{
	LanguageAZ: " Astmanız olduğu üçün inhalyatorunuzu yanınızda saxlayın və çöldə fiziki aktivlikdən çəkinin.",
	LanguageEN: " Since you have asthma, keep your inhaler with you and avoid physical activity outdoors.",
}

// asthmaKeyword is the condition substring checked per language.
var asthmaKeyword = map[Language]string{
	LanguageAZ: "astma",
	LanguageEN: "asthma",
}

// fallbackAdvice builds the deterministic tier-3 advice from the averaged AQI.
// Bands are inclusive on the lower bound, matching the prompt's category table.
func fallbackAdvice(avgAQI int, profile *UserProfile, lang Language) string {
	lang = lang.Normalize()
	bands := fallbackBands[lang]

	var text string
	switch {
	case avgAQI <= 50:
		text = bands[0]
	case avgAQI <= 100:
		text = bands[1]
	case avgAQI <= 150:
		text = bands[2]
	default:
		text = bands[3]
	}

	if profile != nil && strings.Contains(strings.ToLower(profile.Condition), asthmaKeyword[lang]) {
		text += asthmaClause[lang]
	}

	return text
}
