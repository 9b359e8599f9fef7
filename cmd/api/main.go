package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/cache"
	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/catalog"
	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/events"
	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/providers/geolocation"
	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/providers/routing"
	"github.com/lifelinecare/hospitalfinder/backend/internal/adapters/search"
	"github.com/lifelinecare/hospitalfinder/backend/internal/api/handlers"
	"github.com/lifelinecare/hospitalfinder/backend/internal/api/middleware"
	"github.com/lifelinecare/hospitalfinder/backend/internal/api/routes"
	"github.com/lifelinecare/hospitalfinder/backend/internal/application/services"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/redis"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
	"github.com/lifelinecare/hospitalfinder/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional; the service runs fine without a collector
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Region and condition catalogs are mandatory; the service must not
	// start without them.
	var regionCatalog repositories.RegionCatalog
	switch cfg.Catalog.Source {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()

		regionCatalog, err = catalog.NewPostgresCatalog(ctx, pgClient, cfg.Catalog.DefaultRegion)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load region catalog from database")
		}
		logger.Info().Msg("region catalog loaded from PostgreSQL")
	default:
		regionCatalog, err = catalog.NewFileCatalog(cfg.Catalog.RegionsPath, cfg.Catalog.DefaultRegion)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Catalog.RegionsPath).Msg("failed to load region catalog")
		}
		logger.Info().Str("path", cfg.Catalog.RegionsPath).Msg("region catalog loaded from file")
	}

	conditionCatalog, err := catalog.NewFileConditionCatalog(cfg.Catalog.ConditionsPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Catalog.ConditionsPath).Msg("failed to load condition catalog")
	}

	// Redis is optional; discovery works without caching or analytics
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		logger.Info().Msg("event bus initialized")
	}

	// Typesense is optional; without it suggestions return 503
	var searchRepo repositories.HospitalSearchRepository
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Typesense client, suggestions disabled")
	} else {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to init Typesense schema")
		}
		searchRepo = adapter
		logger.Info().Msg("Typesense client initialized")
	}

	var geolocationProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "google":
		if cfg.Geolocation.APIKey == "" {
			logger.Warn().Msg("GEOLOCATION_API_KEY is not set, using mock geolocation provider")
			geolocationProvider = geolocation.NewMockGeolocationProvider()
		} else {
			geolocationProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, cacheProvider)
		}
	default:
		geolocationProvider = geolocation.NewMockGeolocationProvider()
	}

	routeProvider := routing.NewOSRMRouteProvider(cfg.Routing.BaseURL, cacheProvider)

	// Wire services
	resolver := services.NewRegionResolver(regionCatalog)
	normalizer := services.NewRecordNormalizer()
	scorer := services.NewAdmissionScorer(cfg.Scoring.ICUNorm)

	var analytics *services.SearchAnalyticsService
	if eventBus != nil {
		analytics = services.NewSearchAnalyticsService(eventBus)
	}

	discoveryService := services.NewDiscoveryService(
		resolver,
		regionCatalog,
		normalizer,
		scorer,
		analytics,
		metrics,
	)

	assistantService, err := services.NewAssistantService(cfg.Catalog.RulesPath, conditionCatalog, discoveryService)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Catalog.RulesPath).Msg("failed to load assistant rules")
	}

	// Wire handlers
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, conditionCatalog)
	hospitalHandler := handlers.NewHospitalHandler(discoveryService, searchRepo)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	geolocationHandler := handlers.NewGeolocationHandler(resolver, geolocationProvider)
	routeHandler := handlers.NewRouteHandler(routeProvider)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		logger.Info().Msg("response cache middleware enabled")
	}

	router := routes.NewRouter(
		discoveryHandler,
		hospitalHandler,
		assistantHandler,
		geolocationHandler,
		routeHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing event bus")
		}
	}

	logger.Info().Msg("server stopped")
}
