package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	tsclient "github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter indexes hospital records for name and specialty
// autocomplete. Ranking never consults it; suggestions are an edge
// convenience only.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.HospitalSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the hospitals collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(tsclient.HospitalsCollection).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: tsclient.HospitalsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "address", Type: "string"},
			{Name: "region", Type: "string", Facet: pointer.True()},
			{Name: "specialties", Type: "string[]"},
			{Name: "emergency", Type: "bool"},
			{Name: "beds_available", Type: "int32"},
			{Name: "rating", Type: "float"},
		},
		DefaultSortingField: pointer.String("beds_available"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index upserts a hospital record into the suggestion index
func (a *TypesenseAdapter) Index(ctx context.Context, region string, hospital *entities.HospitalRecord) error {
	document := map[string]interface{}{
		"id":             hospital.ID,
		"name":           hospital.Name,
		"address":        hospital.Address,
		"region":         region,
		"specialties":    hospital.Specialties,
		"emergency":      hospital.EmergencyCapable,
		"beds_available": hospital.BedsAvailable,
		"rating":         hospital.Rating,
	}

	_, err := a.client.Client().Collection(tsclient.HospitalsCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index hospital: %w", err)
	}

	return nil
}

// Delete removes a hospital from the suggestion index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.HospitalsCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete hospital from index: %w", err)
	}
	return nil
}

// Suggest returns hospitals matching a partial query by name, address
// or specialty.
func (a *TypesenseAdapter) Suggest(ctx context.Context, query string, limit int) ([]*entities.HospitalRecord, error) {
	if limit <= 0 {
		limit = 5
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,address,specialties"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(tsclient.HospitalsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}

	hospitals := []*entities.HospitalRecord{}
	if result.Hits == nil {
		return hospitals, nil
	}

	for _, hit := range *result.Hits {
		doc := *hit.Document
		hospitals = append(hospitals, documentToRecord(doc))
	}

	return hospitals, nil
}

// documentToRecord rebuilds a partial record from a Typesense document.
// Typesense hands back map[string]interface{}; callers wanting full
// detail fetch it from the catalog by id.
func documentToRecord(doc map[string]interface{}) *entities.HospitalRecord {
	rec := &entities.HospitalRecord{}

	if val, ok := doc["id"].(string); ok {
		rec.ID = val
	}
	if val, ok := doc["name"].(string); ok {
		rec.Name = val
	}
	if val, ok := doc["address"].(string); ok {
		rec.Address = val
	}
	if val, ok := doc["emergency"].(bool); ok {
		rec.EmergencyCapable = val
	}
	if val, ok := doc["beds_available"].(float64); ok {
		rec.BedsAvailable = int(val)
	}
	if val, ok := doc["rating"].(float64); ok {
		rec.Rating = val
	}
	if vals, ok := doc["specialties"].([]interface{}); ok {
		for _, v := range vals {
			if s, ok := v.(string); ok {
				rec.Specialties = append(rec.Specialties, s)
			}
		}
	}

	return rec
}
