package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// RegistryService handles listing registration and admin approval.
type RegistryService struct {
	repo   repositories.ListingRepository
	index  repositories.ListingSearchRepository
	events providers.EventBus
}

// NewRegistryService creates a registry service. index may be nil.
func NewRegistryService(repo repositories.ListingRepository, index repositories.ListingSearchRepository) *RegistryService {
	return &RegistryService{repo: repo, index: index}
}

// WithEvents publishes a listing event on every registry change.
func (s *RegistryService) WithEvents(bus providers.EventBus) *RegistryService {
	s.events = bus
	return s
}

func (s *RegistryService) publish(ctx context.Context, kind entities.Kind, id string, t entities.ListingEventType) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, providers.EventChannelListingUpdates, entities.NewListingEvent(kind, id, t)); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("kind", string(kind)).
			Str("id", id).
			Str("event", string(t)).
			Msg("failed to publish listing event")
	}
}

// Register stores a new unverified listing and returns it with its generated id.
func (s *RegistryService) Register(ctx context.Context, listing entities.Listing) (*entities.Listing, error) {
	listing.Name = strings.TrimSpace(listing.Name)
	if listing.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if _, ok := entities.ParseKind(string(listing.Kind)); !ok {
		return nil, apperrors.NewValidationError("unknown listing kind " + string(listing.Kind))
	}
	if listing.Position != nil {
		if err := listing.Position.Validate(); err != nil {
			return nil, err
		}
	}

	listing.ID = uuid.New().String()
	listing.Verified = false
	listing.Source = entities.SourceVerified
	listing.CreatedAt = time.Now().UTC()
	listing.DistanceKm = 0
	listing.DistanceKnown = false

	if err := s.repo.Create(ctx, &listing); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("kind", string(listing.Kind)).
		Str("id", listing.ID).
		Msg("listing registered, awaiting approval")
	s.publish(ctx, listing.Kind, listing.ID, entities.ListingEventRegistered)
	return &listing, nil
}

// Pending lists the listings of a kind awaiting approval.
func (s *RegistryService) Pending(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return s.repo.ListPending(ctx, kind)
}

// Approve marks a listing verified and indexes it. Index failures are logged only;
// the store stays authoritative and the indexer can catch up.
func (s *RegistryService) Approve(ctx context.Context, kind entities.Kind, id string) (*entities.Listing, error) {
	if err := s.repo.SetVerified(ctx, kind, id, true); err != nil {
		return nil, err
	}
	listing, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	logger := observability.LoggerFromContext(ctx)
	if s.index != nil {
		if err := s.index.Index(ctx, listing); err != nil {
			logger.Warn().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to index approved listing")
		}
	}
	logger.Info().Str("kind", string(kind)).Str("id", id).Msg("listing approved")
	s.publish(ctx, kind, id, entities.ListingEventApproved)
	return listing, nil
}

// Reject deletes a listing and removes it from the index.
func (s *RegistryService) Reject(ctx context.Context, kind entities.Kind, id string) error {
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return err
	}
	if s.index != nil {
		if err := s.index.Delete(ctx, kind, id); err != nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("kind", string(kind)).
				Str("id", id).
				Msg("failed to remove rejected listing from index")
		}
	}
	s.publish(ctx, kind, id, entities.ListingEventRejected)
	return nil
}
