package handlers

import (
	"net/http"
	"strconv"

	"github.com/lifelinecare/hospitalfinder/backend/internal/application/services"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

// DiscoveryHandler handles hospital discovery requests
type DiscoveryHandler struct {
	discovery  *services.DiscoveryService
	conditions repositories.ConditionCatalog
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discovery *services.DiscoveryService, conditions repositories.ConditionCatalog) *DiscoveryHandler {
	return &DiscoveryHandler{
		discovery:  discovery,
		conditions: conditions,
	}
}

// Discover handles GET /api/discover
func (h *DiscoveryHandler) Discover(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	loc, err := parseLocation(query.Get("lat"), query.Get("lng"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	criteria := entities.SearchCriteria{
		Query:   query.Get("q"),
		SortKey: entities.SortKey(query.Get("sort")),
	}

	if conditionID := query.Get("condition"); conditionID != "" {
		cond := h.conditions.ByID(conditionID)
		if cond == nil {
			respondWithError(w, http.StatusBadRequest, "unknown condition: "+conditionID)
			return
		}
		criteria.Condition = cond
	}

	if raw := query.Get("emergency_only"); raw != "" {
		emergencyOnly, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "emergency_only must be a boolean")
			return
		}
		criteria.EmergencyOnly = emergencyOnly
	}

	result, err := h.discovery.Discover(r.Context(), loc, criteria)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"region":  result.Region,
		"results": result.Results,
		"count":   len(result.Results),
	})
}

// ListConditions handles GET /api/conditions
func (h *DiscoveryHandler) ListConditions(w http.ResponseWriter, r *http.Request) {
	conditions := h.conditions.Conditions()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conditions": conditions,
		"count":      len(conditions),
	})
}

// parseLocation builds a location from query parameters. Both
// coordinates absent means no location; one absent or malformed is a
// client error.
func parseLocation(latRaw, lngRaw string) (*entities.Location, error) {
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return nil, apperrors.NewValidationError("lat and lng must both be provided")
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("lat must be a valid decimal degree")
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("lng must be a valid decimal degree")
	}

	return &entities.Location{Latitude: lat, Longitude: lng}, nil
}
