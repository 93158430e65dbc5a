package services

import (
	"context"
	"fmt"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// VerifiedSource loads curated listings of one kind.
type VerifiedSource interface {
	Name() string
	FetchVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error)
}

// SourceAttempt records the outcome of one source in the chain.
type SourceAttempt struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// SourceResult is the typed outcome of a chain run.
type SourceResult struct {
	Listings []entities.Listing `json:"-"`
	Source   string             `json:"source"`
	Attempts []SourceAttempt    `json:"attempts"`
}

// FallbackChain tries verified sources in priority order. A source that errors, or a
// non-terminal source that returns nothing, is skipped; the last source's answer is final.
type FallbackChain struct {
	sources []VerifiedSource
	metrics *observability.Metrics
}

// NewFallbackChain creates a chain over sources, highest priority first.
func NewFallbackChain(metrics *observability.Metrics, sources ...VerifiedSource) *FallbackChain {
	return &FallbackChain{sources: sources, metrics: metrics}
}

// Sources returns the names of the configured sources in order.
func (c *FallbackChain) Sources() []string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return names
}

// Fetch returns the first usable answer. It fails only when every source errored.
func (c *FallbackChain) Fetch(ctx context.Context, kind entities.Kind) (SourceResult, error) {
	logger := observability.LoggerFromContext(ctx)
	result := SourceResult{Attempts: make([]SourceAttempt, 0, len(c.sources))}

	var lastErr error
	for i, src := range c.sources {
		terminal := i == len(c.sources)-1

		listings, err := src.FetchVerified(ctx, kind)
		if err == nil && (len(listings) > 0 || terminal) {
			result.Attempts = append(result.Attempts, SourceAttempt{Source: src.Name(), Count: len(listings)})
			result.Listings = listings
			result.Source = src.Name()
			logger.Debug().
				Str("kind", string(kind)).
				Str("source", src.Name()).
				Int("count", len(listings)).
				Msg("verified listings loaded")
			return result, nil
		}

		if err == nil {
			err = fmt.Errorf("no %s listings", kind)
		}
		lastErr = apperrors.NewUnavailableError(src.Name(), err)
		result.Attempts = append(result.Attempts, SourceAttempt{Source: src.Name(), Error: err.Error()})
		observability.RecordSourceFallback(ctx, c.metrics, string(kind), src.Name())
		logger.Warn().
			Err(err).
			Str("kind", string(kind)).
			Str("source", src.Name()).
			Msg("verified source unavailable, trying next")
	}

	if lastErr == nil {
		lastErr = apperrors.NewUnavailableError("verified sources", fmt.Errorf("no sources configured"))
	}
	return result, lastErr
}

// SourceFunc adapts a function to VerifiedSource.
type SourceFunc struct {
	SourceName string
	Fn         func(ctx context.Context, kind entities.Kind) ([]entities.Listing, error)
}

// Name implements VerifiedSource.
func (f SourceFunc) Name() string { return f.SourceName }

// FetchVerified implements VerifiedSource.
func (f SourceFunc) FetchVerified(ctx context.Context, kind entities.Kind) ([]entities.Listing, error) {
	return f.Fn(ctx, kind)
}
