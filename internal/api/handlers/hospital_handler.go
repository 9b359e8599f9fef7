package handlers

import (
	"net/http"
	"strconv"

	"github.com/lifelinecare/hospitalfinder/backend/internal/application/services"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
)

const defaultSuggestLimit = 5

// HospitalHandler handles hospital detail and autocomplete requests
type HospitalHandler struct {
	discovery  *services.DiscoveryService
	searchRepo repositories.HospitalSearchRepository
}

// NewHospitalHandler creates a new hospital handler. searchRepo may be
// nil when no search engine is configured; suggestions then return 503.
func NewHospitalHandler(discovery *services.DiscoveryService, searchRepo repositories.HospitalSearchRepository) *HospitalHandler {
	return &HospitalHandler{
		discovery:  discovery,
		searchRepo: searchRepo,
	}
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := r.PathValue("id")
	if hospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	result, err := h.discovery.GetHospital(r.Context(), hospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Suggest handles GET /api/hospitals/suggest
func (h *HospitalHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if h.searchRepo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "suggestions are not available")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := defaultSuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	suggestions, err := h.searchRepo.Suggest(r.Context(), query, limit)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to fetch suggestions")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}
