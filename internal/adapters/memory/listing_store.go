package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

type listingKey struct {
	kind entities.Kind
	id   string
}

// ListingStore is an in-process ListingRepository used when Postgres is disabled.
type ListingStore struct {
	mu       sync.RWMutex
	listings map[listingKey]entities.Listing
}

var _ repositories.ListingRepository = (*ListingStore)(nil)

// NewListingStore creates an empty store.
func NewListingStore() *ListingStore {
	return &ListingStore{listings: make(map[listingKey]entities.Listing)}
}

// Name identifies the store as a verified source.
func (s *ListingStore) Name() string { return "memory" }

// FetchVerified returns approved listings, for use in a source chain.
func (s *ListingStore) FetchVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return s.ListVerified(ctx, kind)
}

func (s *ListingStore) Create(_ context.Context, listing *entities.Listing) error {
	if listing == nil {
		return apperrors.NewInternalError("listing is nil", fmt.Errorf("listing is nil"))
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := listingKey{listing.Kind, listing.ID}
	if _, ok := s.listings[key]; ok {
		return apperrors.NewConflictError(fmt.Sprintf("%s %s already exists", listing.Kind, listing.ID))
	}
	s.listings[key] = clone(*listing)
	return nil
}

func (s *ListingStore) GetByID(_ context.Context, kind entities.Kind, id string) (*entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[listingKey{kind, id}]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", kind, id))
	}
	out := clone(l)
	return &out, nil
}

func (s *ListingStore) GetByIDs(_ context.Context, kind entities.Kind, ids []string) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := s.listings[listingKey{kind, id}]; ok {
			out = append(out, clone(l))
		}
	}
	return out, nil
}

func (s *ListingStore) ListVerified(_ context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return s.list(kind, true), nil
}

func (s *ListingStore) ListPending(_ context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return s.list(kind, false), nil
}

func (s *ListingStore) list(kind entities.Kind, verified bool) []entities.Listing {
	s.mu.RLock()
	out := []entities.Listing{}
	for k, l := range s.listings {
		if k.kind == kind && l.Verified == verified {
			out = append(out, clone(l))
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *ListingStore) SetVerified(_ context.Context, kind entities.Kind, id string, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := listingKey{kind, id}
	l, ok := s.listings[key]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", kind, id))
	}
	l.Verified = verified
	s.listings[key] = l
	return nil
}

func (s *ListingStore) Delete(_ context.Context, kind entities.Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := listingKey{kind, id}
	if _, ok := s.listings[key]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", kind, id))
	}
	delete(s.listings, key)
	return nil
}

func clone(l entities.Listing) entities.Listing {
	if l.Position != nil {
		p := *l.Position
		l.Position = &p
	}
	l.CategoryTags = append([]string(nil), l.CategoryTags...)
	if l.Attributes != nil {
		attrs := make(map[string]string, len(l.Attributes))
		for k, v := range l.Attributes {
			attrs[k] = v
		}
		l.Attributes = attrs
	}
	return l
}
