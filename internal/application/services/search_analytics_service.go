package services

import (
	"context"
	"time"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/providers"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/observability"
)

// SearchAnalyticsService publishes discovery events to the event bus so
// downstream consumers (dashboards, zero-result monitoring) can watch
// search behavior without touching the pipeline.
type SearchAnalyticsService struct {
	bus providers.EventBus
}

// NewSearchAnalyticsService creates a new search analytics service
func NewSearchAnalyticsService(bus providers.EventBus) *SearchAnalyticsService {
	return &SearchAnalyticsService{bus: bus}
}

// TrackSearch publishes the event in the background so the caller's
// request is never blocked by analytics.
func (s *SearchAnalyticsService) TrackSearch(ctx context.Context, event *entities.SearchEvent) {
	if s.bus == nil {
		return
	}
	go func() {
		// Fresh context: the request context may already be cancelled
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.bus.Publish(bgCtx, providers.EventChannelSearches, event); err != nil {
			observability.GetLogger().Warn().Err(err).Msg("failed to publish search event")
			return
		}
		if err := s.bus.Publish(bgCtx, providers.GetRegionChannel(event.Region), event); err != nil {
			observability.GetLogger().Warn().Err(err).Msg("failed to publish regional search event")
		}
	}()
}
