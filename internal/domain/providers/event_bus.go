package providers

import (
	"context"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// search analytics events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.SearchEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.SearchEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for different event types
const (
	// EventChannelSearches is the channel carrying every discovery call
	EventChannelSearches = "search:events"

	// EventChannelRegionPrefix is the prefix for per-region channels
	EventChannelRegionPrefix = "search:region:"
)

// GetRegionChannel returns the channel name for a specific region
func GetRegionChannel(region string) string {
	return EventChannelRegionPrefix + region
}
