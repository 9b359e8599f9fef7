package routes

import (
	"net/http"

	"github.com/lifelinecare/hospitalfinder/backend/internal/api/handlers"
	"github.com/lifelinecare/hospitalfinder/backend/internal/api/middleware"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	discoveryHandler   *handlers.DiscoveryHandler
	hospitalHandler    *handlers.HospitalHandler
	assistantHandler   *handlers.AssistantHandler
	geolocationHandler *handlers.GeolocationHandler
	routeHandler       *handlers.RouteHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	discoveryHandler *handlers.DiscoveryHandler,
	hospitalHandler *handlers.HospitalHandler,
	assistantHandler *handlers.AssistantHandler,
	geolocationHandler *handlers.GeolocationHandler,
	routeHandler *handlers.RouteHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		discoveryHandler:   discoveryHandler,
		hospitalHandler:    hospitalHandler,
		assistantHandler:   assistantHandler,
		geolocationHandler: geolocationHandler,
		routeHandler:       routeHandler,
		cacheMiddleware:    cacheMiddleware,
		metrics:            metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Discovery endpoints
	r.mux.HandleFunc("GET /api/discover", r.discoveryHandler.Discover)
	r.mux.HandleFunc("GET /api/conditions", r.discoveryHandler.ListConditions)

	// Hospital endpoints
	r.mux.HandleFunc("GET /api/hospitals/suggest", r.hospitalHandler.Suggest)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)

	// Assistant endpoint
	r.mux.HandleFunc("POST /api/assistant/message", r.assistantHandler.Message)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geolocation/region", r.geolocationHandler.ResolveRegion)
	r.mux.HandleFunc("GET /api/geolocation/reverse", r.geolocationHandler.ReverseGeocode)

	// Routing endpoint
	r.mux.HandleFunc("GET /api/route", r.routeHandler.GetRoute)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
