package handlers

import (
	"net/http"

	"github.com/lifelinecare/hospitalfinder/backend/internal/application/services"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
)

// GeolocationHandler answers which service region a point falls in and
// proxies reverse geocoding.
type GeolocationHandler struct {
	resolver *services.RegionResolver
	geo      providers.GeolocationProvider
}

// NewGeolocationHandler creates a new geolocation handler. geo may be
// nil when no geocoding provider is configured.
func NewGeolocationHandler(resolver *services.RegionResolver, geo providers.GeolocationProvider) *GeolocationHandler {
	return &GeolocationHandler{
		resolver: resolver,
		geo:      geo,
	}
}

// ResolveRegion handles GET /api/geolocation/region
func (h *GeolocationHandler) ResolveRegion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	loc, err := parseLocation(query.Get("lat"), query.Get("lng"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	region := h.resolver.Resolve(loc)

	response := map[string]interface{}{
		"region": region,
	}
	if loc != nil {
		response["lat"] = loc.Latitude
		response["lng"] = loc.Longitude
	}

	respondWithJSON(w, http.StatusOK, response)
}

// ReverseGeocode handles GET /api/geolocation/reverse
func (h *GeolocationHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	if h.geo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "geocoding is not available")
		return
	}

	query := r.URL.Query()
	loc, err := parseLocation(query.Get("lat"), query.Get("lng"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if loc == nil {
		respondWithError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	address, err := h.geo.ReverseGeocode(r.Context(), loc.Latitude, loc.Longitude)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, address)
}
