package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/catalog"
	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/search"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
	"github.com/lifelinecare/hospitalfinder/backend/pkg/config"
)

// Reindexer pushes catalog hospital records into Typesense so the
// suggest endpoint has fresh data. It can run once or on an interval.
func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	observability.InitLogger("hospital-finder-indexer", os.Getenv("APP_ENV"))
	logger := observability.GetLogger()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			logger.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if interval <= 0 {
			logger.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			logger.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		logger.Info().Dur("interval", interval).Msg("reindex complete, waiting for next run")

		select {
		case <-ctx.Done():
			logger.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.GetLogger()

	var regionCatalog repositories.RegionCatalog
	switch cfg.Catalog.Source {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			return err
		}
		defer pgClient.Close()

		regionCatalog, err = catalog.NewPostgresCatalog(ctx, pgClient, cfg.Catalog.DefaultRegion)
		if err != nil {
			return err
		}
	default:
		regionCatalog, err = catalog.NewFileCatalog(cfg.Catalog.RegionsPath, cfg.Catalog.DefaultRegion)
		if err != nil {
			return err
		}
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	adapter := search.NewTypesenseAdapter(tsClient)

	if reset {
		if _, err := tsClient.Client().Collection(typesense.HospitalsCollection).Delete(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to delete collection, continuing")
		}
	}

	if err := adapter.InitSchema(ctx); err != nil {
		return err
	}

	indexed := 0
	for _, region := range regionCatalog.Regions() {
		for i := range region.Hospitals {
			if err := adapter.Index(ctx, region.Name, &region.Hospitals[i]); err != nil {
				logger.Warn().Err(err).
					Str("hospital_id", region.Hospitals[i].ID).
					Str("region", region.Name).
					Msg("failed to index hospital")
				continue
			}
			indexed++
		}
	}

	logger.Info().Int("indexed", indexed).Msg("hospital index refreshed")
	return nil
}
