package providers

import (
	"context"
)

// GeolocationProvider defines the interface for geolocation services.
// The discovery pipeline never calls it directly; location retrieval is
// the caller's concern and a failed lookup simply means default-region
// behavior downstream.
type GeolocationProvider interface {
	// Geocode converts an address to coordinates
	Geocode(ctx context.Context, address string) (*Coordinates, error)

	// ReverseGeocode converts coordinates to an address
	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodedAddress, error)

	// CalculateDistance calculates the distance between two points in kilometers
	CalculateDistance(ctx context.Context, from, to Coordinates) (float64, error)
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeocodedAddress represents a geocoded address
type GeocodedAddress struct {
	FormattedAddress string
	City             string
	State            string
	Country          string
	Coordinates      Coordinates
}
