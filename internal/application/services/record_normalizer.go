package services

import (
	"fmt"
	"strings"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

// Neutral defaults applied when optional resource signals are absent.
const (
	defaultOccupancyRate = 70.0
	defaultDoctorAvail   = 70.0
	defaultICUAvailable  = 0
)

// RecordNormalizer canonicalizes raw hospital records before scoring.
// It never mutates its input; malformed records are rejected with a
// validation error so the pipeline can drop them individually.
type RecordNormalizer struct{}

// NewRecordNormalizer creates a new record normalizer
func NewRecordNormalizer() *RecordNormalizer {
	return &RecordNormalizer{}
}

// Normalize returns a canonicalized copy of the record:
// blood stock lowercased (unrecognized values treated as absent),
// optional fields defaulted, and any precomputed admission chance
// cleared so the scorer is the single source of truth.
func (n *RecordNormalizer) Normalize(raw entities.HospitalRecord) (entities.HospitalRecord, error) {
	if raw.TotalBeds <= 0 {
		return entities.HospitalRecord{}, apperrors.NewValidationError(
			fmt.Sprintf("hospital %s: total_beds must be positive, got %d", raw.ID, raw.TotalBeds))
	}
	if raw.BedsAvailable < 0 || raw.BedsAvailable > raw.TotalBeds {
		return entities.HospitalRecord{}, apperrors.NewValidationError(
			fmt.Sprintf("hospital %s: beds_available %d outside [0, %d]", raw.ID, raw.BedsAvailable, raw.TotalBeds))
	}

	rec := raw

	rec.BloodBankStock = canonicalBloodStock(raw.BloodBankStock)

	occupancy := defaultOccupancyRate
	if raw.OccupancyRate != nil {
		occupancy = *raw.OccupancyRate
	}
	rec.OccupancyRate = &occupancy

	doctors := defaultDoctorAvail
	if raw.DoctorAvail != nil {
		doctors = *raw.DoctorAvail
	}
	rec.DoctorAvail = &doctors

	icu := defaultICUAvailable
	if raw.ICUAvailable != nil && *raw.ICUAvailable > 0 {
		icu = *raw.ICUAvailable
	}
	rec.ICUAvailable = &icu

	// Precomputed chances in source data can disagree with live signals;
	// the pipeline always recomputes.
	rec.AdmissionChance = nil

	rec.Specialties = append([]string(nil), raw.Specialties...)
	rec.Facilities = append([]string(nil), raw.Facilities...)

	return rec, nil
}

// canonicalBloodStock lowercases the stock level; anything outside the
// known vocabulary counts as absent and gets the midpoint default.
func canonicalBloodStock(raw entities.BloodStock) entities.BloodStock {
	switch entities.BloodStock(strings.ToLower(string(raw))) {
	case entities.BloodStockHigh:
		return entities.BloodStockHigh
	case entities.BloodStockLow:
		return entities.BloodStockLow
	case entities.BloodStockMedium:
		return entities.BloodStockMedium
	default:
		return entities.BloodStockMedium
	}
}
