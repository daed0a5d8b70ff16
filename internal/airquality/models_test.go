package airquality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guuullchin11/baku-air-guardian/internal/airquality"
)

func TestNormalizeIndex_Table(t *testing.T) {
	cases := []struct {
		index    int
		expected int
	}{
		{1, 25},
		{2, 75},
		{3, 125},
		{4, 175},
		{5, 250},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, airquality.NormalizeIndex(tc.index), "index %d", tc.index)
	}
}

func TestNormalizeIndex_OutOfRangeDefaults(t *testing.T) {
	for _, index := range []int{0, -1, 6, 42, 500} {
		assert.Equal(t, airquality.DefaultAQI, airquality.NormalizeIndex(index), "index %d", index)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, airquality.Round2(12.3456))
	assert.Equal(t, 12.34, airquality.Round2(12.344))
	assert.Equal(t, 0.0, airquality.Round2(0))
	assert.Equal(t, 100.0, airquality.Round2(99.999))
}

func TestCategoryForAQI_BandBoundaries(t *testing.T) {
	cases := []struct {
		aqi      int
		expected airquality.Category
	}{
		{0, airquality.CategoryGood},
		{50, airquality.CategoryGood},
		{51, airquality.CategoryModerate},
		{100, airquality.CategoryModerate},
		{101, airquality.CategoryUnhealthySensitive},
		{150, airquality.CategoryUnhealthySensitive},
		{151, airquality.CategoryUnhealthy},
		{200, airquality.CategoryUnhealthy},
		{201, airquality.CategoryVeryUnhealthy},
		{350, airquality.CategoryVeryUnhealthy},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, airquality.CategoryForAQI(tc.aqi), "aqi %d", tc.aqi)
	}
}
