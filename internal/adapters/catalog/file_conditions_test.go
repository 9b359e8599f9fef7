package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

const testConditions = `{
  "conditions": [
    {"id": "heart-attack", "label": "Heart Attack", "emergency": true, "specialties": ["Cardiology"], "priority": 1},
    {"id": "fracture", "label": "Fracture", "emergency": false, "specialties": ["Orthopedics"], "priority": 3}
  ]
}`

func writeConditions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conditions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewFileConditionCatalog_LoadsConditions(t *testing.T) {
	cat, err := NewFileConditionCatalog(writeConditions(t, testConditions))
	require.NoError(t, err)

	conditions := cat.Conditions()
	require.Len(t, conditions, 2)
	assert.Equal(t, "Heart Attack", conditions[0].Label)

	cond := cat.ByID("fracture")
	require.NotNil(t, cond)
	assert.Equal(t, []string{"Orthopedics"}, cond.Specialties)
	assert.False(t, cond.Emergency)
}

func TestByID_UnknownConditionIsNil(t *testing.T) {
	cat, err := NewFileConditionCatalog(writeConditions(t, testConditions))
	require.NoError(t, err)

	assert.Nil(t, cat.ByID("sprain"))
}

func TestNewFileConditionCatalog_EmptyFile(t *testing.T) {
	_, err := NewFileConditionCatalog(writeConditions(t, `{"conditions": []}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfiguration))
}

func TestNewFileConditionCatalog_MissingFile(t *testing.T) {
	_, err := NewFileConditionCatalog(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfiguration))
}
