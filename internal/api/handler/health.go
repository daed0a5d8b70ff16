// Package handler provides HTTP handlers for the Baku Air Guardian API.
package handler

import (
	"net/http"
	"time"

	"github.com/guuullchin11/baku-air-guardian/internal/api/models"
	"github.com/guuullchin11/baku-air-guardian/internal/api/response"
	"github.com/guuullchin11/baku-air-guardian/internal/upstream"
)

// HealthHandler handles the liveness endpoint.
type HealthHandler struct {
	version  string
	registry *upstream.Registry
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string, registry *upstream.Registry) *HealthHandler {
	return &HealthHandler{
		version:  version,
		registry: registry,
	}
}

// HealthCheck handles GET /api/health.
// Reports overall liveness plus per-provider circuit state. An open circuit
// degrades the status but never fails the check: the fallback tiers keep
// every endpoint answering.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status:  models.HealthStatusOK,
		Message: "Baku Air Guardian API işləyir",
		Time:    models.Timestamp(time.Now()),
		Version: h.version,
	}

	if h.registry != nil {
		for _, p := range h.registry.GetAllHealth() {
			status := models.HealthStatusOK
			if !p.IsHealthy() {
				status = models.HealthStatusDegraded
				health.Status = models.HealthStatusDegraded
			}
			health.Providers = append(health.Providers, models.ProviderStatus{
				Provider:      p.Name,
				Status:        status,
				CircuitState:  p.CircuitState.String(),
				LastSuccessAt: p.LastSuccessAt,
				LastFailureAt: p.LastFailureAt,
				LastError:     p.LastError,
			})
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}
