package services

import (
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
)

// RegionResolver maps user coordinates to a named service region.
// Bounding boxes are tested in configuration order; the first match
// wins. It is a total function: absent locations and points outside
// every box resolve to the default region.
type RegionResolver struct {
	catalog repositories.RegionCatalog
}

// NewRegionResolver creates a new region resolver
func NewRegionResolver(catalog repositories.RegionCatalog) *RegionResolver {
	return &RegionResolver{catalog: catalog}
}

// Resolve returns the region name for a location. A nil location means
// geolocation was unavailable and yields the default region.
func (r *RegionResolver) Resolve(loc *entities.Location) string {
	if loc == nil {
		return r.catalog.DefaultRegion()
	}
	for _, region := range r.catalog.Regions() {
		if region.BBox.Contains(loc.Latitude, loc.Longitude) {
			return region.Name
		}
	}
	return r.catalog.DefaultRegion()
}
