package models

// ChatProfile carries the optional user context on a chat request.
type ChatProfile struct {
	// Condition is a free-text health note ("astma", "asthma", ...).
	Condition string `json:"condition,omitempty"`

	// Location is the user's district name.
	Location string `json:"location,omitempty"`

	// Language is the reply language, "az" or "en".
	Language string `json:"language,omitempty"`
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message string       `json:"message"`
	Profile *ChatProfile `json:"profile,omitempty"`
}

// ChatResetResponse is the response body for POST /api/chat/reset.
type ChatResetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CompareLocation is one side of a comparison.
type CompareLocation struct {
	Name string `json:"name"`
	AQI  int    `json:"aqi"`
}

// CompareRequest is the request body for POST /api/compare.
type CompareRequest struct {
	Location1 CompareLocation `json:"location1"`
	Location2 CompareLocation `json:"location2"`
	Language  string          `json:"language,omitempty"`
}

// CompareResponse is the response body for POST /api/compare.
type CompareResponse struct {
	AIAnalysis string          `json:"ai_analysis"`
	Location1  CompareLocation `json:"location1"`
	Location2  CompareLocation `json:"location2"`
}

// AnalyzeImageRequest is the JSON request body variant for
// POST /api/analyze-image. The endpoint also accepts multipart uploads
// with an "image" file field.
type AnalyzeImageRequest struct {
	// ImageBase64 is the base64-encoded image payload.
	ImageBase64 string `json:"image_base64"`

	// Filename carries the original name so the extension can be checked.
	Filename string `json:"filename,omitempty"`
}
