package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lifelinecare/hospitalfinder/backend/internal/application/services"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
)

// AssistantHandler handles emergency-guidance chat requests
type AssistantHandler struct {
	assistant *services.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type assistantRequest struct {
	Message string   `json:"message"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// Message handles POST /api/assistant/message
func (h *AssistantHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}

	var loc *entities.Location
	if req.Lat != nil && req.Lng != nil {
		loc = &entities.Location{Latitude: *req.Lat, Longitude: *req.Lng}
	}

	reply, err := h.assistant.Message(r.Context(), loc, req.Message)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reply)
}
