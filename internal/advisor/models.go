// Package advisor produces health guidance from aggregated air-quality data,
// backed by the generative-language provider with a deterministic fallback.
package advisor

// Language selects the advice language.
type Language string

const (
	// LanguageAZ is Azerbaijani, the default.
	LanguageAZ Language = "az"

	// LanguageEN is English.
	LanguageEN Language = "en"
)

// Normalize maps unknown values to the Azerbaijani default.
func (l Language) Normalize() Language {
	if l == LanguageEN {
		return LanguageEN
	}
	return LanguageAZ
}

// UserProfile is the optional caller-supplied health context.
// Absence means: unknown condition, city-wide scope, Azerbaijani language.
type UserProfile struct {
	// Condition is free text, e.g. "asthma" or "astma xəstəsiyəm".
	Condition string `json:"condition"`

	// Location is the user's stated district, free text.
	Location string `json:"location"`

	// Language is "az" or "en".
	Language Language `json:"language"`
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one exchanged message in the conversation log.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Result is the advice returned to the caller. CurrentAQI contains only
// districts whose pollution fetch succeeded.
type Result struct {
	Response   string         `json:"response"`
	CurrentAQI map[string]int `json:"current_aqi"`
}

// ComparePair is one side of a district comparison.
type ComparePair struct {
	Name string `json:"name"`
	AQI  int    `json:"aqi"`
}
