package geolocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
)

func TestGeocode_MatchesKnownCity(t *testing.T) {
	provider := NewMockGeolocationProvider()

	coords, err := provider.Geocode(context.Background(), "Sakchi, JAMSHEDPUR, Jharkhand")
	require.NoError(t, err)

	assert.InDelta(t, 22.8046, coords.Latitude, 0.0001)
	assert.InDelta(t, 86.2029, coords.Longitude, 0.0001)
}

func TestGeocode_UnknownAddressFallsBackToRanchi(t *testing.T) {
	provider := NewMockGeolocationProvider()

	coords, err := provider.Geocode(context.Background(), "Connaught Place, Delhi")
	require.NoError(t, err)

	assert.InDelta(t, 23.3441, coords.Latitude, 0.0001)
	assert.InDelta(t, 85.3096, coords.Longitude, 0.0001)
}

func TestCalculateDistance_RanchiToJamshedpur(t *testing.T) {
	provider := NewMockGeolocationProvider()

	ranchi := providers.Coordinates{Latitude: 23.3441, Longitude: 85.3096}
	jamshedpur := providers.Coordinates{Latitude: 22.8046, Longitude: 86.2029}

	dist, err := provider.CalculateDistance(context.Background(), ranchi, jamshedpur)
	require.NoError(t, err)

	// Straight-line distance is roughly 110 km
	assert.InDelta(t, 110, dist, 5)
}

func TestCalculateDistance_SamePointIsZero(t *testing.T) {
	provider := NewMockGeolocationProvider()

	p := providers.Coordinates{Latitude: 23.3441, Longitude: 85.3096}
	dist, err := provider.CalculateDistance(context.Background(), p, p)
	require.NoError(t, err)

	assert.InDelta(t, 0, dist, 0.001)
}
