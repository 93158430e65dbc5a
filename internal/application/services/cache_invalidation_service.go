package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
)

// CacheInvalidationService drops cached responses that may list a listing
// the registry just approved or rejected.
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	patterns []string
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

// NewCacheInvalidationService creates a service that deletes every key matching
// patterns whenever a listing event arrives.
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus, patterns ...string) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		patterns: patterns,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start begins listening for listing events.
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelListingUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to listing updates: %w", err)
	}

	s.started = true
	go s.processEvents(eventChan)
	log.Info().Strs("patterns", s.patterns).Msg("cache invalidation service started")
	return nil
}

// Stop stops the service and waits for the event loop to exit.
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
	log.Info().Msg("cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.ListingEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.ListingEvent) {
	// Registration alone changes nothing visible until approval.
	if event.EventType == entities.ListingEventRegistered {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Str("listing_id", event.ListingID).Msg("failed to invalidate cache")
		return
	}
	log.Debug().
		Str("event_id", event.ID).
		Str("kind", string(event.Kind)).
		Str("listing_id", event.ListingID).
		Msg("invalidated cached responses")
}

// Invalidate deletes every configured pattern.
func (s *CacheInvalidationService) Invalidate(ctx context.Context) error {
	for _, pattern := range s.patterns {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			return fmt.Errorf("failed to invalidate pattern %s: %w", pattern, err)
		}
	}
	return nil
}
