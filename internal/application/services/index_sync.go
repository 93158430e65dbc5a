package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
)

const indexConcurrency = 4

// SyncIndex copies every verified listing of every kind from src into index.
// It returns the number of listings indexed per kind and stops at the first failure.
func SyncIndex(ctx context.Context, src VerifiedSource, index repositories.ListingSearchRepository) (map[entities.Kind]int, error) {
	logger := observability.LoggerFromContext(ctx)

	var mu sync.Mutex
	counts := make(map[entities.Kind]int, len(entities.AllKinds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(indexConcurrency)

	for _, kind := range entities.AllKinds {
		listings, err := src.FetchVerified(ctx, kind)
		if err != nil {
			_ = g.Wait()
			return counts, fmt.Errorf("load %s listings from %s: %w", kind, src.Name(), err)
		}
		logger.Info().Str("kind", string(kind)).Int("count", len(listings)).Msg("indexing listings")

		for i := range listings {
			l := listings[i]
			g.Go(func() error {
				if err := index.Index(gctx, &l); err != nil {
					return fmt.Errorf("index %s %s: %w", l.Kind, l.ID, err)
				}
				mu.Lock()
				counts[l.Kind]++
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return counts, err
	}
	return counts, nil
}
