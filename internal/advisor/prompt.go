package advisor

import (
	"fmt"
	"sort"
	"strings"
)

// formatAQIData renders the district→AQI map in a stable order for the prompt.
func formatAQIData(aqiByDistrict map[string]int) string {
	if len(aqiByDistrict) == 0 {
		return "real-time məlumat yoxdur"
	}

	names := make([]string, 0, len(aqiByDistrict))
	for name := range aqiByDistrict {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d\n", name, aqiByDistrict[name])
	}
	return b.String()
}

// buildAdvicePrompt assembles the system prompt plus the user question.
// The AQI category table is fixed; its bands must match the advisory bands
// used by the deterministic fallback.
func buildAdvicePrompt(message string, aqiByDistrict map[string]int, avgAQI int, profile *UserProfile, lang Language) string {
	profileText := "məlum deyil"
	if profile != nil {
		profileText = fmt.Sprintf("vəziyyət: %s, yer: %s", valueOr(profile.Condition, "məlum deyil"), valueOr(profile.Location, "bütün şəhər"))
	}

	languageInstruction := "İstifadəçinin sualına Azərbaycan dilində cavab ver"
	if lang == LanguageEN {
		languageInstruction = "Answer the user's question in English"
	}

	return fmt.Sprintf(`Sən Azərbaycanda hava keyfiyyəti üzrə tibbi məsləhətçi AI-san.

HAZIRKI REAL-TIME AQI DATA (rayonlar üzrə):
%s
Orta AQI: %d

AQI KATEQORİYALARI:
- 0-50: Yaxşı (hamı üçün təhlükəsizdir)
- 51-100: Orta (çox həssas insanlar üçün az risk)
- 101-150: Həssaslar üçün pis (astmalılar, uşaqlar, yaşlılar ehtiyatlı olsun)
- 151-200: Pis (hamı üçün sağlamlıq riski, çölə çıxmaq məsləhət deyil)
- 201+: Çox pis (ciddi sağlamlıq riski)

İstifadəçi profili: %s

%s:
1. Real-time AQI data-sına əsasən cavab ver
2. İstifadəçinin profili varsa (astma, hamilə, uşaq), ona görə personalized məsləhət ver
3. Konkret rayonlar üçün məsləhət ver
4. Dostcasına, empatik tonla yaz
5. Əgər təhlükə varsa, AÇIQ XƏBƏRDARLIQ ver

Qısa və aydın cavab ver (3-5 cümlə).

İstifadəçi sualı: %s`,
		formatAQIData(aqiByDistrict), avgAQI, profileText, languageInstruction, message)
}

// buildComparePrompt asks which of two districts is cleaner and by how much.
func buildComparePrompt(a, b ComparePair, lang Language) string {
	if lang == LanguageEN {
		return fmt.Sprintf(`You are an air quality expert for Azerbaijan.

Compare these two districts:
- %s: AQI %d
- %s: AQI %d

Answer in English, briefly:
1. Which district has cleaner air right now
2. The numeric and percentage gap between them
3. A short recommendation for residents of each district`,
			a.Name, a.AQI, b.Name, b.AQI)
	}

	return fmt.Sprintf(`Sən Azərbaycanda hava keyfiyyəti ekspertsən.

Bu iki rayonu müqayisə et:
- %s: AQI %d
- %s: AQI %d

Azərbaycan dilində qısa cavab ver:
1. Hazırda hansı rayonda hava daha təmizdir
2. Aralarındakı rəqəm və faiz fərqi
3. Hər rayonun sakinləri üçün qısa tövsiyə`,
		a.Name, a.AQI, b.Name, b.AQI)
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
