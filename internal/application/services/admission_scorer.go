package services

import (
	"math"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
)

// Signal weights, summing to 1.0.
const (
	weightBeds      = 0.40
	weightOccupancy = 0.20
	weightDoctors   = 0.20
	weightICU       = 0.10
	weightBlood     = 0.10
)

// DefaultICUNorm is the ICU-bed count that maps to a full ICU sub-score
// when no deployment-specific value is configured.
const DefaultICUNorm = 10

// AdmissionScorer computes the 0-100 admission likelihood for a
// hospital from its resource signals. Pure and deterministic: identical
// input always yields an identical score.
type AdmissionScorer struct {
	icuNorm float64
}

// NewAdmissionScorer creates a scorer. icuNorm must match the scale of
// the deployment's datasets; non-positive values fall back to the default.
func NewAdmissionScorer(icuNorm int) *AdmissionScorer {
	if icuNorm <= 0 {
		icuNorm = DefaultICUNorm
	}
	return &AdmissionScorer{icuNorm: float64(icuNorm)}
}

// Score returns the admission chance for a normalized record plus the
// weighted per-signal breakdown.
func (s *AdmissionScorer) Score(rec entities.HospitalRecord) (int, map[string]float64) {
	bedScore := 0.0
	if rec.TotalBeds > 0 {
		bedScore = 100 * float64(rec.BedsAvailable) / float64(rec.TotalBeds)
	}

	occupancy := defaultOccupancyRate
	if rec.OccupancyRate != nil {
		occupancy = *rec.OccupancyRate
	}
	occupancyScore := 100 - occupancy

	doctorScore := defaultDoctorAvail
	if rec.DoctorAvail != nil {
		doctorScore = *rec.DoctorAvail
	}

	icu := 0
	if rec.ICUAvailable != nil {
		icu = *rec.ICUAvailable
	}
	icuScore := math.Min(100, 100*float64(icu)/s.icuNorm)

	bloodScore := 50.0
	switch rec.BloodBankStock {
	case entities.BloodStockHigh:
		bloodScore = 100
	case entities.BloodStockLow:
		bloodScore = 20
	}

	breakdown := map[string]float64{
		"beds":      bedScore * weightBeds,
		"occupancy": occupancyScore * weightOccupancy,
		"doctors":   doctorScore * weightDoctors,
		"icu":       icuScore * weightICU,
		"blood":     bloodScore * weightBlood,
	}

	total := breakdown["beds"] + breakdown["occupancy"] + breakdown["doctors"] +
		breakdown["icu"] + breakdown["blood"]

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, breakdown
}
