package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

func testHospitals() map[string][]entities.HospitalRecord {
	return map[string][]entities.HospitalRecord{
		"ranchi": {
			{
				ID: "a", Name: "Apex Cardiac Centre", Address: "Bariatu Road",
				DistanceValue: 5.0, EmergencyCapable: true,
				BedsAvailable: 40, TotalBeds: 50,
				DoctorAvail: floatPtr(100),
				Specialties: []string{"Cardiology", "Emergency"},
			},
			{
				ID: "b", Name: "City Neuro Hospital", Address: "Main Road",
				DistanceValue: 2.0, EmergencyCapable: false,
				BedsAvailable: 20, TotalBeds: 50,
				Specialties: []string{"Neurology"},
			},
			{
				ID: "c", Name: "Bone & Joint Centre", Address: "Lalpur Chowk",
				DistanceValue: 3.0, EmergencyCapable: true,
				BedsAvailable: 45, TotalBeds: 50,
				Specialties: []string{"Orthopedics"},
			},
			{
				// Malformed: dropped during normalization
				ID: "bad", Name: "Ghost Hospital",
				BedsAvailable: 5, TotalBeds: 0,
			},
		},
		"jamshedpur": {
			{
				ID: "j1", Name: "Steel City Hospital", Address: "Bistupur",
				DistanceValue: 1.5, EmergencyCapable: true,
				BedsAvailable: 10, TotalBeds: 40,
				Specialties: []string{"General Medicine"},
			},
		},
	}
}

func newTestDiscovery() *DiscoveryService {
	catalog := jharkhandCatalog(testHospitals())
	return NewDiscoveryService(
		NewRegionResolver(catalog),
		catalog,
		NewRecordNormalizer(),
		NewAdmissionScorer(10),
		nil,
		nil,
	)
}

func resultIDs(results []entities.ScoredResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Hospital.ID)
	}
	return ids
}

func TestDiscover_DefaultSortIsChance(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{})
	require.NoError(t, err)

	assert.Equal(t, "ranchi", res.Region)
	// a: beds 32 + occupancy 6 + doctors 20 + blood 5 = 63
	// c: beds 36 + occupancy 6 + doctors 14 + blood 5 = 61
	// b: beds 16 + occupancy 6 + doctors 14 + blood 5 = 41
	assert.Equal(t, []string{"a", "c", "b"}, resultIDs(res.Results))
	assert.Equal(t, 1, res.Dropped)
}

func TestDiscover_MalformedRecordsAreDroppedNotFatal(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{})
	require.NoError(t, err)

	assert.NotContains(t, resultIDs(res.Results), "bad")
}

func TestDiscover_InvalidSortKey(t *testing.T) {
	svc := newTestDiscovery()

	_, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{SortKey: "rating"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestDiscover_SortByBeds(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{SortKey: entities.SortByBeds})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, resultIDs(res.Results))
}

func TestDiscover_SortByDistance(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{SortKey: entities.SortByDistance})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a"}, resultIDs(res.Results))
}

func TestDiscover_TieBreakByDistanceThenID(t *testing.T) {
	identical := func(id string, distance float64) entities.HospitalRecord {
		return entities.HospitalRecord{
			ID: id, Name: "Twin " + id, DistanceValue: distance,
			BedsAvailable: 10, TotalBeds: 20,
		}
	}
	catalog := jharkhandCatalog(map[string][]entities.HospitalRecord{
		"ranchi": {
			identical("z", 4.0),
			identical("y", 4.0),
			identical("x", 2.0),
		},
	})
	svc := NewDiscoveryService(NewRegionResolver(catalog), catalog,
		NewRecordNormalizer(), NewAdmissionScorer(10), nil, nil)

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{})
	require.NoError(t, err)

	// Equal chances: nearer first, then lexicographic id
	assert.Equal(t, []string{"x", "y", "z"}, resultIDs(res.Results))
}

func TestDiscover_ConditionFilter(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{
		Condition: &entities.Condition{ID: "heart-attack", Specialties: []string{"Cardiology"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, resultIDs(res.Results))
}

func TestDiscover_ConditionFilterIsCaseSensitive(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{
		Condition: &entities.Condition{ID: "heart-attack", Specialties: []string{"cardiology"}},
	})
	require.NoError(t, err)

	assert.Empty(t, res.Results)
}

func TestDiscover_QueryFilter(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{Query: "  BONE  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, resultIDs(res.Results))

	// Address and specialty are also matched
	res, err = svc.Discover(context.Background(), nil, entities.SearchCriteria{Query: "main road"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, resultIDs(res.Results))

	res, err = svc.Discover(context.Background(), nil, entities.SearchCriteria{Query: "neuro"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, resultIDs(res.Results))
}

func TestDiscover_BlankQueryIsNoFilter(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{Query: "   "})
	require.NoError(t, err)

	assert.Len(t, res.Results, 3)
}

func TestDiscover_EmergencyOnly(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{EmergencyOnly: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, resultIDs(res.Results))
}

func TestDiscover_FiltersCompose(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{
		Query:         "centre",
		EmergencyOnly: true,
		Condition:     &entities.Condition{ID: "fracture", Specialties: []string{"Orthopedics"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c"}, resultIDs(res.Results))
}

func TestDiscover_LocationSelectsRegion(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(),
		&entities.Location{Latitude: 22.80, Longitude: 86.20},
		entities.SearchCriteria{})
	require.NoError(t, err)

	assert.Equal(t, "jamshedpur", res.Region)
	assert.Equal(t, []string{"j1"}, resultIDs(res.Results))
}

func TestDiscover_SetsAdmissionChanceOnRecord(t *testing.T) {
	svc := newTestDiscovery()

	res, err := svc.Discover(context.Background(), nil, entities.SearchCriteria{})
	require.NoError(t, err)

	for _, r := range res.Results {
		require.NotNil(t, r.Hospital.AdmissionChance)
		assert.Equal(t, r.AdmissionChance, *r.Hospital.AdmissionChance)
		assert.GreaterOrEqual(t, r.AdmissionChance, 0)
		assert.LessOrEqual(t, r.AdmissionChance, 100)
	}
}

func TestGetHospital_FindsAcrossRegions(t *testing.T) {
	svc := newTestDiscovery()

	result, err := svc.GetHospital(context.Background(), "j1")
	require.NoError(t, err)

	assert.Equal(t, "Steel City Hospital", result.Hospital.Name)
	require.NotNil(t, result.Hospital.AdmissionChance)
	assert.Equal(t, result.AdmissionChance, *result.Hospital.AdmissionChance)
}

func TestGetHospital_NotFound(t *testing.T) {
	svc := newTestDiscovery()

	_, err := svc.GetHospital(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
