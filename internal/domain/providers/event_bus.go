package providers

import (
	"context"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to listing events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.ListingEvent) error

	// Subscribe subscribes to events on a channel until ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.ListingEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelListingUpdates is the channel for all registry changes
	EventChannelListingUpdates = "listings:updates"

	// EventChannelKindPrefix is the prefix for per-kind channels
	EventChannelKindPrefix = "listings:"
)

// GetKindChannel returns the channel name for one directory kind
func GetKindChannel(kind entities.Kind) string {
	return EventChannelKindPrefix + string(kind)
}
