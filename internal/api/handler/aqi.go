package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guuullchin11/baku-air-guardian/internal/airquality"
	"github.com/guuullchin11/baku-air-guardian/internal/api/response"
)

// AQIHandler handles the air-quality data endpoints.
type AQIHandler struct {
	airQuality *airquality.Service
}

// NewAQIHandler creates a new AQIHandler.
func NewAQIHandler(airQuality *airquality.Service) *AQIHandler {
	return &AQIHandler{airQuality: airQuality}
}

// ListReadings handles GET /api/aqi - current readings for every district.
// Districts whose fetch failed are omitted from the map.
func (h *AQIHandler) ListReadings(w http.ResponseWriter, r *http.Request) {
	readings := h.airQuality.GetAll(r.Context())
	response.JSON(w, r, http.StatusOK, readings)
}

// GetDistrict handles GET /api/aqi/{district} - reading for one district.
func (h *AQIHandler) GetDistrict(w http.ResponseWriter, r *http.Request) {
	district := chi.URLParam(r, "district")

	reading, err := h.airQuality.GetDistrict(r.Context(), district)
	if err != nil {
		if errors.Is(err, airquality.ErrUnknownDistrict) {
			response.NotFound(w, r, "unknown district: "+district)
			return
		}
		response.InternalError(w, r, "pollution data unavailable")
		return
	}

	response.JSON(w, r, http.StatusOK, reading)
}
