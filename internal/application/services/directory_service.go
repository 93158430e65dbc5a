package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

const (
	DefaultNearbyRadiusMeters  = 10000
	DefaultEmergencyPriorityKm = 20.0
)

// DirectoryOptions configures the directory queries.
type DirectoryOptions struct {
	NearbyRadiusMeters  int
	EmergencyPriorityKm float64
	// MergeFallback appends the fallback listings to a non-empty answer from another
	// source. Listings already present by id are skipped.
	MergeFallback bool
}

// NearbyQuery asks for one directory around an optional origin.
type NearbyQuery struct {
	Kind     entities.Kind
	Origin   *entities.GeoPoint
	Criteria []entities.FilterCriterion
}

// NearbyResult is a merged and ranked directory page.
type NearbyResult struct {
	Kind               entities.Kind      `json:"kind"`
	Listings           []entities.Listing `json:"listings"`
	Source             string             `json:"source"`
	Attempts           []SourceAttempt    `json:"attempts"`
	SupplementaryCount int                `json:"supplementary_count"`
	DuplicatesDropped  int                `json:"duplicates_dropped"`
}

// EmergencyResult splits hospitals around the caller.
type EmergencyResult struct {
	Nearby           []entities.Listing         `json:"nearby"`
	Far              []entities.Listing         `json:"far"`
	Numbers          []entities.EmergencyNumber `json:"numbers"`
	LocationRequired bool                       `json:"location_required"`
	PriorityKm       float64                    `json:"priority_km"`
}

// SearchGroup holds the matches of one kind.
type SearchGroup struct {
	Kind     entities.Kind      `json:"kind"`
	Listings []entities.Listing `json:"listings"`
}

// SearchResult is a cross-kind free-text search.
type SearchResult struct {
	Query  string        `json:"query"`
	Groups []SearchGroup `json:"groups"`
	Total  int           `json:"total"`
}

// DirectoryService orchestrates the verified chain, the supplementary provider and the matcher.
type DirectoryService struct {
	chain    *FallbackChain
	fallback VerifiedSource
	nearby   providers.NearbyPlacesProvider
	matcher  *GeoMatcher
	metrics  *observability.Metrics
	opts     DirectoryOptions
}

// NewDirectoryService creates a directory service. fallback answers when the whole chain
// fails; nearby and metrics may be nil.
func NewDirectoryService(
	chain *FallbackChain,
	fallback VerifiedSource,
	nearby providers.NearbyPlacesProvider,
	matcher *GeoMatcher,
	metrics *observability.Metrics,
	opts DirectoryOptions,
) *DirectoryService {
	if opts.NearbyRadiusMeters <= 0 {
		opts.NearbyRadiusMeters = DefaultNearbyRadiusMeters
	}
	if opts.EmergencyPriorityKm <= 0 {
		opts.EmergencyPriorityKm = DefaultEmergencyPriorityKm
	}
	if matcher == nil {
		matcher = NewGeoMatcher(DefaultMatcherOptions())
	}
	return &DirectoryService{
		chain:    chain,
		fallback: fallback,
		nearby:   nearby,
		matcher:  matcher,
		metrics:  metrics,
		opts:     opts,
	}
}

// Nearby loads verified and supplementary listings concurrently, then merges and ranks
// them. Either fetch failing is replaced by its default, so Nearby itself only fails on
// an invalid query.
func (s *DirectoryService) Nearby(ctx context.Context, q NearbyQuery) (*NearbyResult, error) {
	if q.Kind == "" {
		return nil, apperrors.NewValidationError("kind is required")
	}
	if q.Origin != nil {
		if err := q.Origin.Validate(); err != nil {
			return nil, err
		}
	}

	ctx, span := observability.StartSpan(ctx, "DirectoryService.Nearby")
	defer span.End()

	var (
		verified      SourceResult
		supplementary []entities.Listing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		verified = s.loadVerified(gctx, q.Kind)
		return nil
	})
	g.Go(func() error {
		supplementary = s.loadSupplementary(gctx, q.Kind, q.Origin)
		return nil
	})
	_ = g.Wait()

	merged := s.matcher.Merge(verified.Listings, supplementary, q.Origin)
	dropped := len(verified.Listings) + len(supplementary) - len(merged)
	observability.RecordDedupDropped(ctx, s.metrics, string(q.Kind), dropped)

	return &NearbyResult{
		Kind:               q.Kind,
		Listings:           s.matcher.FilterAndRank(merged, q.Criteria),
		Source:             verified.Source,
		Attempts:           verified.Attempts,
		SupplementaryCount: len(supplementary) - dropped,
		DuplicatesDropped:  dropped,
	}, nil
}

func (s *DirectoryService) loadVerified(ctx context.Context, kind entities.Kind) SourceResult {
	logger := observability.LoggerFromContext(ctx)

	if s.chain != nil {
		result, err := s.chain.Fetch(ctx, kind)
		if err == nil {
			if s.opts.MergeFallback {
				s.mergeFallback(ctx, kind, &result)
			}
			return result
		}
		logger.Warn().Err(err).Str("kind", string(kind)).Msg("verified chain failed, using fallback data")
		if s.fallback == nil {
			return SourceResult{Listings: []entities.Listing{}, Attempts: result.Attempts}
		}
		listings, ferr := s.fallback.FetchVerified(ctx, kind)
		if ferr != nil {
			listings = []entities.Listing{}
		}
		result.Listings = listings
		result.Source = s.fallback.Name()
		return result
	}

	if s.fallback != nil {
		if listings, err := s.fallback.FetchVerified(ctx, kind); err == nil {
			return SourceResult{Listings: listings, Source: s.fallback.Name()}
		}
	}
	return SourceResult{Listings: []entities.Listing{}}
}

func (s *DirectoryService) mergeFallback(ctx context.Context, kind entities.Kind, result *SourceResult) {
	if s.fallback == nil || result.Source == s.fallback.Name() {
		return
	}
	extra, err := s.fallback.FetchVerified(ctx, kind)
	if err != nil {
		result.Attempts = append(result.Attempts, SourceAttempt{Source: s.fallback.Name(), Error: err.Error()})
		return
	}

	seen := make(map[string]bool, len(result.Listings))
	for _, l := range result.Listings {
		seen[l.ID] = true
	}
	listings := append(make([]entities.Listing, 0, len(result.Listings)+len(extra)), result.Listings...)
	added := 0
	for _, l := range extra {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		listings = append(listings, l)
		added++
	}
	result.Listings = listings
	result.Attempts = append(result.Attempts, SourceAttempt{Source: s.fallback.Name(), Count: added})
}

func (s *DirectoryService) loadSupplementary(ctx context.Context, kind entities.Kind, origin *entities.GeoPoint) []entities.Listing {
	if s.nearby == nil || origin == nil {
		return nil
	}
	listings, err := s.nearby.FetchNearby(ctx, *origin, s.opts.NearbyRadiusMeters, kind)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("kind", string(kind)).
			Msg("supplementary places unavailable")
		return nil
	}
	return listings
}

// Emergency returns hospitals split at the priority radius. Without an origin every
// hospital is Far and LocationRequired is set.
func (s *DirectoryService) Emergency(ctx context.Context, origin *entities.GeoPoint) (*EmergencyResult, error) {
	page, err := s.Nearby(ctx, NearbyQuery{Kind: entities.KindHospital, Origin: origin})
	if err != nil {
		return nil, err
	}

	result := &EmergencyResult{
		Nearby:           []entities.Listing{},
		Far:              []entities.Listing{},
		Numbers:          entities.EmergencyNumbers,
		LocationRequired: origin == nil,
		PriorityKm:       s.opts.EmergencyPriorityKm,
	}
	for _, l := range page.Listings {
		if l.DistanceKnown && l.DistanceKm <= s.opts.EmergencyPriorityKm {
			result.Nearby = append(result.Nearby, l)
		} else {
			result.Far = append(result.Far, l)
		}
	}
	return result, nil
}

// Search matches query against the verified listings of every kind.
func (s *DirectoryService) Search(ctx context.Context, query string, origin *entities.GeoPoint) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("query is required")
	}
	if origin != nil {
		if err := origin.Validate(); err != nil {
			return nil, err
		}
	}

	ctx, span := observability.StartSpan(ctx, "DirectoryService.Search")
	defer span.End()

	criteria := []entities.FilterCriterion{entities.Text(query)}
	groups := make([]SearchGroup, len(entities.AllKinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range entities.AllKinds {
		g.Go(func() error {
			verified := s.loadVerified(gctx, kind)
			annotated := s.matcher.Annotate(verified.Listings, origin, entities.SourceVerified)
			groups[i] = SearchGroup{Kind: kind, Listings: s.matcher.FilterAndRank(annotated, criteria)}
			return nil
		})
	}
	_ = g.Wait()

	result := &SearchResult{Query: query, Groups: make([]SearchGroup, 0, len(groups))}
	for _, group := range groups {
		if len(group.Listings) == 0 {
			continue
		}
		result.Groups = append(result.Groups, group)
		result.Total += len(group.Listings)
	}
	return result, nil
}

// Categories returns the distinct category tags of a kind in first-seen order,
// deduplicated case-insensitively.
func (s *DirectoryService) Categories(ctx context.Context, kind entities.Kind) ([]string, error) {
	if kind == "" {
		return nil, apperrors.NewValidationError("kind is required")
	}

	verified := s.loadVerified(ctx, kind)
	seen := make(map[string]bool)
	categories := []string{}
	for _, l := range verified.Listings {
		for _, tag := range l.CategoryTags {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			categories = append(categories, tag)
		}
	}
	return categories, nil
}
