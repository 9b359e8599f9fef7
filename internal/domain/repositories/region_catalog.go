package repositories

import (
	"context"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
)

// RegionCatalog provides read access to the static regional hospital
// directories. Implementations load their data once at startup and are
// safe for concurrent readers.
type RegionCatalog interface {
	// Regions returns all configured regions in priority order
	Regions() []entities.Region

	// ByRegion returns the hospital records for a region in stable source
	// order. An unknown region name falls back to the default region's list.
	ByRegion(name string) []entities.HospitalRecord

	// DefaultRegion returns the name of the configured default region
	DefaultRegion() string
}

// HospitalSearchRepository indexes hospital records in an external
// search engine for autocomplete at the API edge. The core text filter
// never consults it.
type HospitalSearchRepository interface {
	Index(ctx context.Context, region string, hospital *entities.HospitalRecord) error
	Delete(ctx context.Context, id string) error
	Suggest(ctx context.Context, query string, limit int) ([]*entities.HospitalRecord, error)
}

// ConditionCatalog provides the configured emergency-condition vocabulary
type ConditionCatalog interface {
	// Conditions returns all conditions in display order
	Conditions() []entities.Condition

	// ByID returns the condition with the given id, or nil if unknown
	ByID(id string) *entities.Condition
}
