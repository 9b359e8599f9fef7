package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
	"github.com/lifelinecare/hospitalfinder/backend/pkg/config"
)

// Seeds the regions and hospitals tables from the JSON region
// configuration, so a Postgres-backed deployment starts from the same
// dataset as a file-backed one.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	observability.InitLogger("hospital-finder-seed", cfg.Server.Env)
	logger := observability.GetLogger()

	data, err := os.ReadFile(cfg.Catalog.RegionsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Catalog.RegionsPath).Msg("failed to read region configuration")
	}

	var file struct {
		Regions []entities.Region `json:"regions"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse region configuration")
	}
	if len(file.Regions) == 0 {
		logger.Fatal().Msg("region configuration is empty")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := goqu.New("postgres", pgClient.DB())

	if os.Getenv("RESET_DB") == "true" {
		logger.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				hospitals,
				regions
			RESTART IDENTITY CASCADE
		`); err != nil {
			logger.Fatal().Err(err).Msg("failed to truncate tables")
		}
	}

	seeded := 0
	for priority, region := range file.Regions {
		regionRecord := goqu.Record{
			"name":     region.Name,
			"lat_min":  region.BBox.LatMin,
			"lat_max":  region.BBox.LatMax,
			"lng_min":  region.BBox.LngMin,
			"lng_max":  region.BBox.LngMax,
			"priority": priority,
		}

		query, args, err := db.Insert("regions").Rows(regionRecord).ToSQL()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build region insert")
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			logger.Fatal().Err(err).Str("region", region.Name).Msg("failed to insert region")
		}

		for _, h := range region.Hospitals {
			record := goqu.Record{
				"id":                h.ID,
				"region":            region.Name,
				"name":              h.Name,
				"address":           h.Address,
				"phone":             h.Phone,
				"distance_km":       h.DistanceValue,
				"rating":            h.Rating,
				"emergency_capable": h.EmergencyCapable,
				"open":              h.Open,
				"wait_time":         h.WaitTime,
				"beds_available":    h.BedsAvailable,
				"total_beds":        h.TotalBeds,
				"blood_units":       h.BloodUnits,
				"blood_bank_stock":  string(h.BloodBankStock),
				"specialties":       pq.Array(h.Specialties),
				"facilities":        pq.Array(h.Facilities),
				"estimated_arrival": h.EstimatedArrival,
			}
			if h.ICUAvailable != nil {
				record["icu_available"] = *h.ICUAvailable
			}
			if h.OccupancyRate != nil {
				record["occupancy_rate"] = *h.OccupancyRate
			}
			if h.DoctorAvail != nil {
				record["doctor_availability"] = *h.DoctorAvail
			}

			query, args, err := db.Insert("hospitals").Rows(record).ToSQL()
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to build hospital insert")
			}
			if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
				logger.Fatal().Err(err).Str("hospital_id", h.ID).Msg("failed to insert hospital")
			}
			seeded++
		}
	}

	logger.Info().Int("regions", len(file.Regions)).Int("hospitals", seeded).Msg("seed complete")
}
