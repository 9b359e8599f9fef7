package geolocation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
)

// MockGeolocationProvider is a table-driven provider for development
// and tests, covering the Jharkhand service area.
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() providers.GeolocationProvider {
	return &MockGeolocationProvider{}
}

// Geocode converts an address to coordinates by city-name matching
func (m *MockGeolocationProvider) Geocode(ctx context.Context, address string) (*providers.Coordinates, error) {
	mockCoordinates := map[string]providers.Coordinates{
		"Ranchi":     {Latitude: 23.3441, Longitude: 85.3096},
		"Jamshedpur": {Latitude: 22.8046, Longitude: 86.2029},
		"Dhanbad":    {Latitude: 23.7957, Longitude: 86.4304},
		"Bokaro":     {Latitude: 23.6693, Longitude: 86.1511},
		"Hazaribagh": {Latitude: 23.9925, Longitude: 85.3637},
	}

	for city, coords := range mockCoordinates {
		if strings.Contains(strings.ToLower(address), strings.ToLower(city)) {
			return &coords, nil
		}
	}

	// Unknown addresses resolve to central Ranchi
	return &providers.Coordinates{Latitude: 23.3441, Longitude: 85.3096}, nil
}

// ReverseGeocode converts coordinates to an address (mock implementation)
func (m *MockGeolocationProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*providers.GeocodedAddress, error) {
	return &providers.GeocodedAddress{
		FormattedAddress: fmt.Sprintf("%f, %f", lat, lng),
		City:             "Ranchi",
		State:            "Jharkhand",
		Country:          "India",
		Coordinates: providers.Coordinates{
			Latitude:  lat,
			Longitude: lng,
		},
	}, nil
}

// CalculateDistance calculates the great-circle distance between two
// points using the Haversine formula.
func (m *MockGeolocationProvider) CalculateDistance(ctx context.Context, from, to providers.Coordinates) (float64, error) {
	const earthRadiusKm = 6371.0

	lat1Rad := toRadians(from.Latitude)
	lat2Rad := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLng := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
