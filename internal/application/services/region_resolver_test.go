package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
)

// stubCatalog is an in-memory RegionCatalog for tests
type stubCatalog struct {
	regions       []entities.Region
	defaultRegion string
}

func (c *stubCatalog) Regions() []entities.Region { return c.regions }

func (c *stubCatalog) ByRegion(name string) []entities.HospitalRecord {
	for _, r := range c.regions {
		if r.Name == name {
			return r.Hospitals
		}
	}
	return c.ByRegion(c.defaultRegion)
}

func (c *stubCatalog) DefaultRegion() string { return c.defaultRegion }

func jharkhandCatalog(hospitals map[string][]entities.HospitalRecord) *stubCatalog {
	return &stubCatalog{
		defaultRegion: "ranchi",
		regions: []entities.Region{
			{
				Name:      "ranchi",
				BBox:      entities.BoundingBox{LatMin: 23.2, LatMax: 23.5, LngMin: 85.2, LngMax: 85.4},
				Hospitals: hospitals["ranchi"],
			},
			{
				Name:      "jamshedpur",
				BBox:      entities.BoundingBox{LatMin: 22.7, LatMax: 22.9, LngMin: 86.1, LngMax: 86.3},
				Hospitals: hospitals["jamshedpur"],
			},
			{
				Name:      "dhanbad",
				BBox:      entities.BoundingBox{LatMin: 23.7, LatMax: 23.9, LngMin: 86.3, LngMax: 86.5},
				Hospitals: hospitals["dhanbad"],
			},
		},
	}
}

func TestResolve_PointInsideRegion(t *testing.T) {
	resolver := NewRegionResolver(jharkhandCatalog(nil))

	assert.Equal(t, "ranchi", resolver.Resolve(&entities.Location{Latitude: 23.36, Longitude: 85.33}))
	assert.Equal(t, "jamshedpur", resolver.Resolve(&entities.Location{Latitude: 22.80, Longitude: 86.20}))
	assert.Equal(t, "dhanbad", resolver.Resolve(&entities.Location{Latitude: 23.80, Longitude: 86.43}))
}

func TestResolve_BoundsAreInclusive(t *testing.T) {
	resolver := NewRegionResolver(jharkhandCatalog(nil))

	assert.Equal(t, "ranchi", resolver.Resolve(&entities.Location{Latitude: 23.2, Longitude: 85.2}))
	assert.Equal(t, "ranchi", resolver.Resolve(&entities.Location{Latitude: 23.5, Longitude: 85.4}))
}

func TestResolve_OutsideAllRegionsFallsBack(t *testing.T) {
	resolver := NewRegionResolver(jharkhandCatalog(nil))

	assert.Equal(t, "ranchi", resolver.Resolve(&entities.Location{Latitude: 28.61, Longitude: 77.21}))
	// Nonsense coordinates still resolve
	assert.Equal(t, "ranchi", resolver.Resolve(&entities.Location{Latitude: 1000, Longitude: -1000}))
}

func TestResolve_NilLocationFallsBack(t *testing.T) {
	resolver := NewRegionResolver(jharkhandCatalog(nil))

	assert.Equal(t, "ranchi", resolver.Resolve(nil))
}

func TestResolve_OverlappingBoxesFirstWins(t *testing.T) {
	catalog := &stubCatalog{
		defaultRegion: "south",
		regions: []entities.Region{
			{Name: "north", BBox: entities.BoundingBox{LatMin: 0, LatMax: 10, LngMin: 0, LngMax: 10}},
			{Name: "south", BBox: entities.BoundingBox{LatMin: 5, LatMax: 15, LngMin: 5, LngMax: 15}},
		},
	}
	resolver := NewRegionResolver(catalog)

	// Point inside both boxes resolves to the first configured region
	assert.Equal(t, "north", resolver.Resolve(&entities.Location{Latitude: 7, Longitude: 7}))
}
