package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

// DiscoveryResult is the outcome of one pipeline invocation
type DiscoveryResult struct {
	Region  string                  `json:"region"`
	Results []entities.ScoredResult `json:"results"`
	Dropped int                     `json:"-"`
}

// DiscoveryService orchestrates the discovery pipeline:
// resolve region, load candidates, normalize, score, filter, sort.
// It holds no per-request state; concurrent calls are independent.
type DiscoveryService struct {
	resolver   *RegionResolver
	catalog    repositories.RegionCatalog
	normalizer *RecordNormalizer
	scorer     *AdmissionScorer
	analytics  *SearchAnalyticsService
	metrics    *observability.Metrics
}

// NewDiscoveryService creates a new discovery service. analytics and
// metrics may be nil.
func NewDiscoveryService(
	resolver *RegionResolver,
	catalog repositories.RegionCatalog,
	normalizer *RecordNormalizer,
	scorer *AdmissionScorer,
	analytics *SearchAnalyticsService,
	metrics *observability.Metrics,
) *DiscoveryService {
	return &DiscoveryService{
		resolver:   resolver,
		catalog:    catalog,
		normalizer: normalizer,
		scorer:     scorer,
		analytics:  analytics,
		metrics:    metrics,
	}
}

// Discover runs the full pipeline and returns the ranked, filtered
// results. A nil location falls back to the default region. An empty
// result set is a valid outcome, not an error.
func (s *DiscoveryService) Discover(ctx context.Context, loc *entities.Location, criteria entities.SearchCriteria) (*DiscoveryResult, error) {
	ctx, span := observability.StartSpan(ctx, "DiscoveryService.Discover")
	defer span.End()
	start := time.Now()

	if criteria.SortKey == "" {
		criteria.SortKey = entities.SortByChance
	}
	if !criteria.SortKey.Valid() {
		return nil, apperrors.NewValidationError("unsupported sort key: " + string(criteria.SortKey))
	}

	region := s.resolver.Resolve(loc)
	span.SetAttributes(attribute.String("region", region))

	candidates := s.catalog.ByRegion(region)
	logger := observability.LoggerFromContext(ctx)

	scored := make([]entities.ScoredResult, 0, len(candidates))
	dropped := 0
	for _, raw := range candidates {
		rec, err := s.normalizer.Normalize(raw)
		if err != nil {
			dropped++
			logger.Warn().
				Str("hospital_id", raw.ID).
				Str("region", region).
				Err(err).
				Msg("dropping malformed hospital record")
			continue
		}

		chance, breakdown := s.scorer.Score(rec)
		rec.AdmissionChance = &chance
		scored = append(scored, entities.ScoredResult{
			Hospital:        rec,
			AdmissionChance: chance,
			Breakdown:       breakdown,
		})
	}

	results := filterByCondition(scored, criteria.Condition)
	results = filterByQuery(results, criteria.Query)
	if criteria.EmergencyOnly {
		results = filterEmergency(results)
	}
	sortResults(results, criteria.SortKey)

	elapsed := time.Since(start)
	observability.RecordDiscoverMetric(ctx, s.metrics, region, len(results), dropped, elapsed)

	if s.analytics != nil {
		event := entities.NewSearchEvent(region, criteria, len(results), dropped)
		event.LatencyMs = int(elapsed.Milliseconds())
		if loc != nil {
			event.UserLatitude = loc.Latitude
			event.UserLongitude = loc.Longitude
		}
		s.analytics.TrackSearch(ctx, event)
	}

	return &DiscoveryResult{Region: region, Results: results, Dropped: dropped}, nil
}

// GetHospital returns the normalized, scored record with the given id
// from the resolved region, falling back across all regions so detail
// pages work regardless of where the caller is.
func (s *DiscoveryService) GetHospital(ctx context.Context, id string) (*entities.ScoredResult, error) {
	for _, region := range s.catalog.Regions() {
		for _, raw := range region.Hospitals {
			if raw.ID != id {
				continue
			}
			rec, err := s.normalizer.Normalize(raw)
			if err != nil {
				return nil, err
			}
			chance, breakdown := s.scorer.Score(rec)
			rec.AdmissionChance = &chance
			return &entities.ScoredResult{
				Hospital:        rec,
				AdmissionChance: chance,
				Breakdown:       breakdown,
			}, nil
		}
	}
	return nil, apperrors.NewNotFoundError("hospital not found: " + id)
}

// filterByCondition keeps records whose specialties intersect the
// condition's required set. Matching is exact and case-sensitive against
// the configured specialty vocabulary.
func filterByCondition(results []entities.ScoredResult, cond *entities.Condition) []entities.ScoredResult {
	if cond == nil {
		return results
	}
	required := make(map[string]struct{}, len(cond.Specialties))
	for _, sp := range cond.Specialties {
		required[sp] = struct{}{}
	}
	kept := results[:0]
	for _, r := range results {
		for _, sp := range r.Hospital.Specialties {
			if _, ok := required[sp]; ok {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}

// filterByQuery keeps records matching the free-text query against
// name, address, or any specialty, case-insensitively. An empty query
// after trimming is no filter at all.
func filterByQuery(results []entities.ScoredResult, query string) []entities.ScoredResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}
	kept := results[:0]
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Hospital.Name), q) ||
			strings.Contains(strings.ToLower(r.Hospital.Address), q) ||
			anySpecialtyContains(r.Hospital.Specialties, q) {
			kept = append(kept, r)
		}
	}
	return kept
}

func anySpecialtyContains(specialties []string, q string) bool {
	for _, sp := range specialties {
		if strings.Contains(strings.ToLower(sp), q) {
			return true
		}
	}
	return false
}

func filterEmergency(results []entities.ScoredResult) []entities.ScoredResult {
	kept := results[:0]
	for _, r := range results {
		if r.Hospital.EmergencyCapable {
			kept = append(kept, r)
		}
	}
	return kept
}

// sortResults orders results by the chosen key. Ties break by ascending
// distance, then by id, so equal inputs always produce the same order.
func sortResults(results []entities.ScoredResult, key entities.SortKey) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		switch key {
		case entities.SortByBeds:
			if a.Hospital.BedsAvailable != b.Hospital.BedsAvailable {
				return a.Hospital.BedsAvailable > b.Hospital.BedsAvailable
			}
		case entities.SortByDistance:
			if a.Hospital.DistanceValue != b.Hospital.DistanceValue {
				return a.Hospital.DistanceValue < b.Hospital.DistanceValue
			}
		default: // SortByChance
			if a.AdmissionChance != b.AdmissionChance {
				return a.AdmissionChance > b.AdmissionChance
			}
		}
		if a.Hospital.DistanceValue != b.Hospital.DistanceValue {
			return a.Hospital.DistanceValue < b.Hospital.DistanceValue
		}
		return a.Hospital.ID < b.Hospital.ID
	})
}
