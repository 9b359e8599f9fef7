package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestNormalize_FillsDefaults(t *testing.T) {
	n := NewRecordNormalizer()

	rec, err := n.Normalize(entities.HospitalRecord{
		ID:            "h1",
		Name:          "Bare Hospital",
		BedsAvailable: 5,
		TotalBeds:     20,
	})
	require.NoError(t, err)

	require.NotNil(t, rec.OccupancyRate)
	assert.Equal(t, 70.0, *rec.OccupancyRate)
	require.NotNil(t, rec.DoctorAvail)
	assert.Equal(t, 70.0, *rec.DoctorAvail)
	require.NotNil(t, rec.ICUAvailable)
	assert.Equal(t, 0, *rec.ICUAvailable)
	assert.Equal(t, entities.BloodStockMedium, rec.BloodBankStock)
}

func TestNormalize_CanonicalizesBloodStock(t *testing.T) {
	n := NewRecordNormalizer()

	rec, err := n.Normalize(entities.HospitalRecord{
		ID: "h1", BedsAvailable: 5, TotalBeds: 20,
		BloodBankStock: "HIGH",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BloodStockHigh, rec.BloodBankStock)

	rec, err = n.Normalize(entities.HospitalRecord{
		ID: "h1", BedsAvailable: 5, TotalBeds: 20,
		BloodBankStock: "Low",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BloodStockLow, rec.BloodBankStock)

	// Unknown vocabulary counts as absent
	rec, err = n.Normalize(entities.HospitalRecord{
		ID: "h1", BedsAvailable: 5, TotalBeds: 20,
		BloodBankStock: "plenty",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BloodStockMedium, rec.BloodBankStock)
}

func TestNormalize_RejectsNonPositiveTotalBeds(t *testing.T) {
	n := NewRecordNormalizer()

	_, err := n.Normalize(entities.HospitalRecord{ID: "h1", TotalBeds: 0})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = n.Normalize(entities.HospitalRecord{ID: "h1", TotalBeds: -4})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestNormalize_RejectsBedsOutOfRange(t *testing.T) {
	n := NewRecordNormalizer()

	_, err := n.Normalize(entities.HospitalRecord{ID: "h1", BedsAvailable: -1, TotalBeds: 10})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = n.Normalize(entities.HospitalRecord{ID: "h1", BedsAvailable: 11, TotalBeds: 10})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestNormalize_ClearsPrecomputedChance(t *testing.T) {
	n := NewRecordNormalizer()

	rec, err := n.Normalize(entities.HospitalRecord{
		ID: "h1", BedsAvailable: 5, TotalBeds: 20,
		AdmissionChance: intPtr(85),
	})
	require.NoError(t, err)
	assert.Nil(t, rec.AdmissionChance)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	n := NewRecordNormalizer()

	raw := entities.HospitalRecord{
		ID: "h1", BedsAvailable: 5, TotalBeds: 20,
		BloodBankStock:  "HIGH",
		AdmissionChance: intPtr(85),
		Specialties:     []string{"Cardiology"},
	}

	rec, err := n.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, entities.BloodStock("HIGH"), raw.BloodBankStock)
	require.NotNil(t, raw.AdmissionChance)
	assert.Equal(t, 85, *raw.AdmissionChance)

	rec.Specialties[0] = "changed"
	assert.Equal(t, "Cardiology", raw.Specialties[0])
}

func TestNormalize_KeepsProvidedSignals(t *testing.T) {
	n := NewRecordNormalizer()

	rec, err := n.Normalize(entities.HospitalRecord{
		ID: "h1", BedsAvailable: 5, TotalBeds: 20,
		OccupancyRate: floatPtr(55),
		DoctorAvail:   floatPtr(90),
		ICUAvailable:  intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, 55.0, *rec.OccupancyRate)
	assert.Equal(t, 90.0, *rec.DoctorAvail)
	assert.Equal(t, 4, *rec.ICUAvailable)
}
