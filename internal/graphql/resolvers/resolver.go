package resolvers

import (
	"context"
	"fmt"

	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/graphql/loaders"
)

// Resolver is the Query root. registry and bookings may be nil, which disables
// pendingListings and doctorBookings.
type Resolver struct {
	directory *services.DirectoryService
	registry  *services.RegistryService
	bookings  *services.BookingService
}

// NewResolver creates a new resolver
func NewResolver(directory *services.DirectoryService, registry *services.RegistryService, bookings *services.BookingService) *Resolver {
	return &Resolver{directory: directory, registry: registry, bookings: bookings}
}

// Field resolves a Query field.
func (r *Resolver) Field(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "nearby":
		return r.nearby(ctx, args)
	case "search":
		return r.search(ctx, args)
	case "categories":
		kind, err := kindArg(args)
		if err != nil {
			return nil, err
		}
		return r.directory.Categories(ctx, kind)
	case "listing":
		kind, err := kindArg(args)
		if err != nil {
			return nil, err
		}
		listing, err := loaders.For(ctx).ListingLoader.Load(ctx, loaders.ListingKey{Kind: kind, ID: stringArg(args, "id")})()
		if err != nil || listing == nil {
			return nil, err
		}
		return &listingObject{*listing}, nil
	case "pendingListings":
		if r.registry == nil {
			return nil, fmt.Errorf("listing registry is disabled")
		}
		kind, err := kindArg(args)
		if err != nil {
			return nil, err
		}
		pending, err := r.registry.Pending(ctx, kind)
		if err != nil {
			return nil, err
		}
		return listingObjects(pending), nil
	case "doctorBookings":
		if r.bookings == nil {
			return nil, fmt.Errorf("bookings are disabled")
		}
		bookings, err := r.bookings.ListByDoctor(ctx, stringArg(args, "doctorId"))
		if err != nil {
			return nil, err
		}
		out := make([]*bookingObject, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, &bookingObject{b})
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown field Query.%s", name)
}

func (r *Resolver) nearby(ctx context.Context, args map[string]any) (any, error) {
	kind, err := kindArg(args)
	if err != nil {
		return nil, err
	}
	origin, err := originArg(args)
	if err != nil {
		return nil, err
	}
	result, err := r.directory.Nearby(ctx, services.NearbyQuery{
		Kind:     kind,
		Origin:   origin,
		Criteria: filterArg(args).Criteria(kind),
	})
	if err != nil {
		return nil, err
	}
	return &nearbyObject{result}, nil
}

func (r *Resolver) search(ctx context.Context, args map[string]any) (any, error) {
	origin, err := originArg(args)
	if err != nil {
		return nil, err
	}
	result, err := r.directory.Search(ctx, stringArg(args, "q"), origin)
	if err != nil {
		return nil, err
	}
	return &searchObject{result}, nil
}
