package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
)

func rimsRecord() entities.HospitalRecord {
	return entities.HospitalRecord{
		ID:             "1",
		Name:           "RIMS Ranchi",
		BedsAvailable:  25,
		TotalBeds:      50,
		OccupancyRate:  floatPtr(50),
		DoctorAvail:    floatPtr(80),
		ICUAvailable:   intPtr(8),
		BloodBankStock: entities.BloodStockHigh,
	}
}

func TestScore_WeightedSum(t *testing.T) {
	scorer := NewAdmissionScorer(10)

	// beds 50%*.4 + occupancy 50%*.2 + doctors 80*.2 + icu 80%*.1 + blood 100*.1
	score, breakdown := scorer.Score(rimsRecord())

	assert.Equal(t, 64, score)
	assert.InDelta(t, 20.0, breakdown["beds"], 0.001)
	assert.InDelta(t, 10.0, breakdown["occupancy"], 0.001)
	assert.InDelta(t, 16.0, breakdown["doctors"], 0.001)
	assert.InDelta(t, 8.0, breakdown["icu"], 0.001)
	assert.InDelta(t, 10.0, breakdown["blood"], 0.001)
}

func TestScore_ICUNormChangesSubScore(t *testing.T) {
	// With a norm of 5, 8 ICU beds saturate the sub-score
	scorer := NewAdmissionScorer(5)

	score, breakdown := scorer.Score(rimsRecord())

	assert.InDelta(t, 10.0, breakdown["icu"], 0.001)
	assert.Equal(t, 66, score)
}

func TestScore_FullResourcesHitCeiling(t *testing.T) {
	scorer := NewAdmissionScorer(10)

	score, _ := scorer.Score(entities.HospitalRecord{
		BedsAvailable:  50,
		TotalBeds:      50,
		OccupancyRate:  floatPtr(0),
		DoctorAvail:    floatPtr(100),
		ICUAvailable:   intPtr(10),
		BloodBankStock: entities.BloodStockHigh,
	})

	assert.Equal(t, 100, score)
}

func TestScore_ClampsToZero(t *testing.T) {
	scorer := NewAdmissionScorer(10)

	// Occupancy beyond 100 drives the weighted sum negative
	score, _ := scorer.Score(entities.HospitalRecord{
		BedsAvailable:  0,
		TotalBeds:      10,
		OccupancyRate:  floatPtr(200),
		DoctorAvail:    floatPtr(0),
		ICUAvailable:   intPtr(0),
		BloodBankStock: entities.BloodStockLow,
	})

	assert.Equal(t, 0, score)
}

func TestScore_BloodStockLevels(t *testing.T) {
	scorer := NewAdmissionScorer(10)

	rec := rimsRecord()

	rec.BloodBankStock = entities.BloodStockHigh
	_, breakdown := scorer.Score(rec)
	assert.InDelta(t, 10.0, breakdown["blood"], 0.001)

	rec.BloodBankStock = entities.BloodStockMedium
	_, breakdown = scorer.Score(rec)
	assert.InDelta(t, 5.0, breakdown["blood"], 0.001)

	rec.BloodBankStock = entities.BloodStockLow
	_, breakdown = scorer.Score(rec)
	assert.InDelta(t, 2.0, breakdown["blood"], 0.001)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewAdmissionScorer(10)
	rec := rimsRecord()

	first, _ := scorer.Score(rec)
	for i := 0; i < 10; i++ {
		again, _ := scorer.Score(rec)
		assert.Equal(t, first, again)
	}
}

func TestScore_MoreBedsNeverLowersScore(t *testing.T) {
	scorer := NewAdmissionScorer(10)

	rec := rimsRecord()
	prev := -1
	for beds := 0; beds <= rec.TotalBeds; beds += 5 {
		rec.BedsAvailable = beds
		score, _ := scorer.Score(rec)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestNewAdmissionScorer_NonPositiveNormUsesDefault(t *testing.T) {
	scorer := NewAdmissionScorer(0)
	fallback := NewAdmissionScorer(DefaultICUNorm)

	score, _ := scorer.Score(rimsRecord())
	want, _ := fallback.Score(rimsRecord())
	assert.Equal(t, want, score)
}
