// Package airquality provides normalized air-quality readings for the
// configured districts, backed by an external pollution data provider.
package airquality

import (
	"errors"
	"math"
)

// Air quality errors.
var (
	ErrProviderUnavailable = errors.New("pollution provider unavailable")
	ErrUnknownDistrict     = errors.New("unknown district")
)

// Reading is a normalized air-quality reading for one location.
// AQI is derived from the provider's 1-5 categorical index, never the raw value.
type Reading struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
}

// indexTable maps the provider's categorical index to a representative value
// on the user-facing 0-300 style scale. The bands line up with the advisory
// categories below, which the provider's native 1-5 scale does not.
var indexTable = map[int]int{
	1: 25,
	2: 75,
	3: 125,
	4: 175,
	5: 250,
}

// DefaultAQI is used when the provider returns an index outside 1-5.
const DefaultAQI = 100

// NormalizeIndex converts the provider's categorical index (1-5) to a
// representative AQI value. Any other value maps to DefaultAQI.
func NormalizeIndex(index int) int {
	if aqi, ok := indexTable[index]; ok {
		return aqi
	}
	return DefaultAQI
}

// Round2 rounds a pollutant concentration to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Category is an advisory band on the AQI scale.
type Category string

const (
	CategoryGood               Category = "good"
	CategoryModerate           Category = "moderate"
	CategoryUnhealthySensitive Category = "unhealthy_for_sensitive"
	CategoryUnhealthy          Category = "unhealthy"
	CategoryVeryUnhealthy      Category = "very_unhealthy"
)

// CategoryForAQI returns the advisory band for an AQI value.
// Bands are inclusive on the lower bound: 0-50 good, 51-100 moderate,
// 101-150 unhealthy for sensitive groups, 151-200 unhealthy, 201+ very unhealthy.
func CategoryForAQI(aqi int) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategoryModerate
	case aqi <= 150:
		return CategoryUnhealthySensitive
	case aqi <= 200:
		return CategoryUnhealthy
	default:
		return CategoryVeryUnhealthy
	}
}
