package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/guuullchin11/baku-air-guardian/internal/advisor"
	"github.com/guuullchin11/baku-air-guardian/internal/api/models"
	"github.com/guuullchin11/baku-air-guardian/internal/api/response"
)

// ChatHandler handles the conversational advice endpoints.
type ChatHandler struct {
	advisor *advisor.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(advisorService *advisor.Service) *ChatHandler {
	return &ChatHandler{advisor: advisorService}
}

// Chat handles POST /api/chat.
// The advisor never returns an error: every failure tier resolves to a
// deterministic advice text, so this handler only validates input.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		response.BadRequest(w, r, "message is required")
		return
	}

	var profile *advisor.UserProfile
	if req.Profile != nil {
		profile = &advisor.UserProfile{
			Condition: req.Profile.Condition,
			Location:  req.Profile.Location,
			Language:  advisor.Language(req.Profile.Language),
		}
	}

	result := h.advisor.Advise(r.Context(), req.Message, profile)
	response.JSON(w, r, http.StatusOK, result)
}

// Reset handles POST /api/chat/reset - clears the conversation history.
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.advisor.Reset()
	response.JSON(w, r, http.StatusOK, models.ChatResetResponse{
		Status:  "ok",
		Message: "Söhbət tarixçəsi təmizləndi",
	})
}
