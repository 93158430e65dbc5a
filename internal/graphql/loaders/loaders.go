package loaders

import (
	"context"
	"net/http"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// ListingKey identifies a listing across kinds.
type ListingKey struct {
	Kind entities.Kind
	ID   string
}

// Loaders contains the per-request dataloaders.
type Loaders struct {
	ListingLoader *dataloader.Loader[ListingKey, *entities.Listing]
}

// NewLoaders creates a new instance of Loaders. Missing listings load as nil.
func NewLoaders(listingRepo repositories.ListingRepository) *Loaders {
	return &Loaders{
		ListingLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []ListingKey) []*dataloader.Result[*entities.Listing] {
			byKind := make(map[entities.Kind][]string)
			for _, key := range keys {
				byKind[key.Kind] = append(byKind[key.Kind], key.ID)
			}

			found := make(map[ListingKey]*entities.Listing, len(keys))
			failed := make(map[entities.Kind]error)
			for kind, ids := range byKind {
				listings, err := listingRepo.GetByIDs(ctx, kind, ids)
				if err != nil {
					failed[kind] = err
					continue
				}
				for i := range listings {
					found[ListingKey{Kind: kind, ID: listings[i].ID}] = &listings[i]
				}
			}

			results := make([]*dataloader.Result[*entities.Listing], len(keys))
			for i, key := range keys {
				if err, ok := failed[key.Kind]; ok {
					results[i] = &dataloader.Result[*entities.Listing]{Error: err}
					continue
				}
				results[i] = &dataloader.Result[*entities.Listing]{Data: found[key]}
			}
			return results
		}),
	}
}

// For returns the loaders for a given context
func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}

// Middleware attaches fresh loaders to every request.
func Middleware(listingRepo repositories.ListingRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(listingRepo))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
