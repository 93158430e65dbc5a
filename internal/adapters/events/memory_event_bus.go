package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
)

// MemoryEventBus delivers events within one process. Used when Redis is disabled.
type MemoryEventBus struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan *entities.ListingEvent]struct{}
}

// NewMemoryEventBus creates an in-process event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{subscribers: make(map[string]map[chan *entities.ListingEvent]struct{})}
}

// Publish delivers the event to current subscribers without blocking.
func (b *MemoryEventBus) Publish(_ context.Context, channel string, event *entities.ListingEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for subscriber := range b.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			log.Warn().Str("channel", channel).Str("event_id", event.ID).Msg("subscriber channel full, skipping event")
		}
	}
	return nil
}

// Subscribe subscribes to events on a channel until ctx is done
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.ListingEvent, error) {
	b.mu.Lock()
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.ListingEvent]struct{})
	}
	eventChan := make(chan *entities.ListingEvent, subscriberBuffer)
	b.subscribers[channel][eventChan] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(channel, eventChan)
	}()
	return eventChan, nil
}

func (b *MemoryEventBus) remove(channel string, eventChan chan *entities.ListingEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[channel][eventChan]; !ok {
		return
	}
	delete(b.subscribers[channel], eventChan)
	close(eventChan)
	if len(b.subscribers[channel]) == 0 {
		delete(b.subscribers, channel)
	}
}

// Unsubscribe closes every subscriber of a channel
func (b *MemoryEventBus) Unsubscribe(_ context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		close(subscriber)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close closes all subscriptions
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for channel, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
		delete(b.subscribers, channel)
	}
	return nil
}
