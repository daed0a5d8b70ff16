// Package skyimage classifies sky photographs into an estimated AQI via the
// generative-language vision endpoint, degrading to heuristic extraction and
// finally a fixed payload.
package skyimage

import "strings"

// Category is the coarse advisory band reported for a photo.
type Category string

const (
	CategoryGood          Category = "Good"
	CategoryModerate      Category = "Moderate"
	CategoryUnhealthy     Category = "Unhealthy"
	CategoryVeryUnhealthy Category = "VeryUnhealthy"
	CategoryUnknown       Category = "Unknown"
)

// Recommendations holds per-audience advice strings.
type Recommendations struct {
	Healthy   string `json:"healthy"`
	Sensitive string `json:"sensitive"`
	Children  string `json:"children"`
	Elderly   string `json:"elderly"`
}

// Classification is the analysis result returned to the caller.
type Classification struct {
	Description     string          `json:"description"`
	EstimatedAQI    int             `json:"estimated_aqi"`
	AQICategory     Category        `json:"aqi_category"`
	Recommendations Recommendations `json:"recommendations"`
}

// categoryForAQI maps an estimated AQI to the photo category bands.
func categoryForAQI(aqi int) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategoryModerate
	case aqi <= 200:
		return CategoryUnhealthy
	default:
		return CategoryVeryUnhealthy
	}
}

// allowedExtensions lists the accepted upload types.
var allowedExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

// AllowedExtension reports whether a filename carries an accepted extension
// and returns its MIME type.
func AllowedExtension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	mime, ok := allowedExtensions[strings.ToLower(filename[idx+1:])]
	return mime, ok
}
