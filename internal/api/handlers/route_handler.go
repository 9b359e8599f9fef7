package handlers

import (
	"net/http"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
)

// RouteHandler serves route summaries between the user and a hospital
type RouteHandler struct {
	routes providers.RouteProvider
}

// NewRouteHandler creates a new route handler. routes may be nil when
// no routing backend is configured.
func NewRouteHandler(routes providers.RouteProvider) *RouteHandler {
	return &RouteHandler{routes: routes}
}

// GetRoute handles GET /api/route
func (h *RouteHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	if h.routes == nil {
		respondWithError(w, http.StatusServiceUnavailable, "routing is not available")
		return
	}

	query := r.URL.Query()

	from, err := parseLocation(query.Get("from_lat"), query.Get("from_lng"))
	if err != nil || from == nil {
		respondWithError(w, http.StatusBadRequest, "from_lat and from_lng must be valid decimal degrees")
		return
	}

	to, err := parseLocation(query.Get("to_lat"), query.Get("to_lng"))
	if err != nil || to == nil {
		respondWithError(w, http.StatusBadRequest, "to_lat and to_lng must be valid decimal degrees")
		return
	}

	summary, err := h.routes.RouteSummary(r.Context(),
		providers.Coordinates{Latitude: from.Latitude, Longitude: from.Longitude},
		providers.Coordinates{Latitude: to.Latitude, Longitude: to.Longitude},
	)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
