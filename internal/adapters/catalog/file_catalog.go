package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

type regionsFile struct {
	Regions []entities.Region `json:"regions"`
}

// FileCatalog is a RegionCatalog backed by a JSON configuration file,
// loaded once at startup. Region order in the file is the bounding-box
// priority order.
type FileCatalog struct {
	regions       []entities.Region
	byName        map[string][]entities.HospitalRecord
	defaultRegion string
}

var _ repositories.RegionCatalog = (*FileCatalog)(nil)

// NewFileCatalog loads and validates the region configuration. Empty or
// malformed configuration is fatal: the service must not start without
// a valid default region.
func NewFileCatalog(path, defaultRegion string) (*FileCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to read region configuration", err)
	}

	var file regionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewConfigurationError("failed to parse region configuration", err)
	}

	return newCatalog(file.Regions, defaultRegion)
}

// newCatalog validates the region list shared by all catalog sources
func newCatalog(regions []entities.Region, defaultRegion string) (*FileCatalog, error) {
	if len(regions) == 0 {
		return nil, apperrors.NewConfigurationError("region configuration is empty", nil)
	}

	byName := make(map[string][]entities.HospitalRecord, len(regions))
	logger := observability.GetLogger()
	for _, region := range regions {
		if region.Name == "" {
			return nil, apperrors.NewConfigurationError("region with empty name in configuration", nil)
		}
		if _, dup := byName[region.Name]; dup {
			return nil, apperrors.NewConfigurationError(
				fmt.Sprintf("duplicate region %q in configuration", region.Name), nil)
		}

		seen := make(map[string]struct{}, len(region.Hospitals))
		for _, h := range region.Hospitals {
			if _, dup := seen[h.ID]; dup {
				logger.Warn().Str("region", region.Name).Str("hospital_id", h.ID).
					Msg("duplicate hospital id in region dataset")
			}
			seen[h.ID] = struct{}{}
		}

		byName[region.Name] = region.Hospitals
	}

	if _, ok := byName[defaultRegion]; !ok {
		return nil, apperrors.NewConfigurationError(
			fmt.Sprintf("default region %q not present in configuration", defaultRegion), nil)
	}

	return &FileCatalog{
		regions:       regions,
		byName:        byName,
		defaultRegion: defaultRegion,
	}, nil
}

// Regions returns all configured regions in priority order
func (c *FileCatalog) Regions() []entities.Region {
	return c.regions
}

// ByRegion returns the hospital records for a region in source order.
// Unknown names fall back to the default region's list.
func (c *FileCatalog) ByRegion(name string) []entities.HospitalRecord {
	if hospitals, ok := c.byName[name]; ok {
		return hospitals
	}
	return c.byName[c.defaultRegion]
}

// DefaultRegion returns the configured default region name
func (c *FileCatalog) DefaultRegion() string {
	return c.defaultRegion
}
