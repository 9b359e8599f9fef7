package catalog

import (
	"encoding/json"
	"os"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

type conditionsFile struct {
	Conditions []entities.Condition `json:"conditions"`
}

// FileConditionCatalog holds the medical condition vocabulary loaded
// from a JSON configuration file.
type FileConditionCatalog struct {
	conditions []entities.Condition
	byID       map[string]*entities.Condition
}

var _ repositories.ConditionCatalog = (*FileConditionCatalog)(nil)

func NewFileConditionCatalog(path string) (*FileConditionCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to read condition configuration", err)
	}

	var file conditionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewConfigurationError("failed to parse condition configuration", err)
	}
	if len(file.Conditions) == 0 {
		return nil, apperrors.NewConfigurationError("condition configuration is empty", nil)
	}

	byID := make(map[string]*entities.Condition, len(file.Conditions))
	for i := range file.Conditions {
		cond := &file.Conditions[i]
		if cond.ID == "" {
			return nil, apperrors.NewConfigurationError("condition with empty id in configuration", nil)
		}
		byID[cond.ID] = cond
	}

	return &FileConditionCatalog{
		conditions: file.Conditions,
		byID:       byID,
	}, nil
}

// Conditions returns the full vocabulary in source order
func (c *FileConditionCatalog) Conditions() []entities.Condition {
	return c.conditions
}

// ByID returns the condition for an id, or nil when unknown
func (c *FileConditionCatalog) ByID(id string) *entities.Condition {
	return c.byID[id]
}
