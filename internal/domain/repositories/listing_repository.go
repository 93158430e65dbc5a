package repositories

import (
	"context"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// ListingRepository defines the interface for directory listing data operations
type ListingRepository interface {
	// Create stores a new listing
	Create(ctx context.Context, listing *entities.Listing) error

	// GetByID retrieves a listing by kind and ID
	GetByID(ctx context.Context, kind entities.Kind, id string) (*entities.Listing, error)

	// GetByIDs retrieves the listings of a kind among ids, skipping missing ones
	GetByIDs(ctx context.Context, kind entities.Kind, ids []string) ([]entities.Listing, error)
	// ListVerified returns approved listings of a kind
	ListVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error)

	// ListPending returns listings awaiting approval
	ListPending(ctx context.Context, kind entities.Kind) ([]entities.Listing, error)

	// SetVerified approves or un-approves a listing
	SetVerified(ctx context.Context, kind entities.Kind, id string, verified bool) error

	// Delete removes a listing
	Delete(ctx context.Context, kind entities.Kind, id string) error
}

// ListingSearchRepository defines the interface for the listing search index (e.g. Typesense)
type ListingSearchRepository interface {
	// ListVerified returns indexed listings of a kind
	ListVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error)

	// Index adds or replaces a listing in the index
	Index(ctx context.Context, listing *entities.Listing) error

	// Delete removes a listing from the index
	Delete(ctx context.Context, kind entities.Kind, id string) error
}
