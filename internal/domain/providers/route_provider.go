package providers

import (
	"context"
)

// RouteProvider computes a display route summary between the user and a
// hospital. Turn-by-turn navigation is out of scope; only the summary is
// surfaced.
type RouteProvider interface {
	// RouteSummary returns distance and duration for the fastest route
	RouteSummary(ctx context.Context, from, to Coordinates) (*RouteSummary, error)
}

// RouteSummary describes a route at display granularity
type RouteSummary struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}
