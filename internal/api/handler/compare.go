package handler

import (
	"encoding/json"
	"net/http"

	"github.com/guuullchin11/baku-air-guardian/internal/advisor"
	"github.com/guuullchin11/baku-air-guardian/internal/api/models"
	"github.com/guuullchin11/baku-air-guardian/internal/api/response"
)

// CompareHandler handles the district comparison endpoint.
type CompareHandler struct {
	advisor *advisor.Service
}

// NewCompareHandler creates a new CompareHandler.
func NewCompareHandler(advisorService *advisor.Service) *CompareHandler {
	return &CompareHandler{advisor: advisorService}
}

// Compare handles POST /api/compare.
// The comparison text is best effort: a single generation attempt, then a
// fixed apology. The echoed location pairs are always valid.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	if req.Location1.Name == "" || req.Location2.Name == "" {
		response.BadRequest(w, r, "location1 and location2 are required")
		return
	}

	analysis := h.advisor.Compare(r.Context(),
		advisor.ComparePair{Name: req.Location1.Name, AQI: req.Location1.AQI},
		advisor.ComparePair{Name: req.Location2.Name, AQI: req.Location2.AQI},
		advisor.Language(req.Language),
	)

	response.JSON(w, r, http.StatusOK, models.CompareResponse{
		AIAnalysis: analysis,
		Location1:  req.Location1,
		Location2:  req.Location2,
	})
}
