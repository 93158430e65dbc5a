package services

import (
	"math"
	"sort"
	"strings"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

const (
	DefaultDedupRadiusKm      = 0.3
	DefaultSentinelDistanceKm = 999.0
	DefaultTieThresholdKm     = 0.1
)

// MatcherOptions tunes the merge and ranking thresholds.
type MatcherOptions struct {
	// DedupRadiusKm is the proximity under which a supplementary listing duplicates a verified one.
	DedupRadiusKm float64
	// SentinelDistanceKm is assigned when the origin or the listing position is unknown.
	SentinelDistanceKm float64
	// TieThresholdKm is the width of the distance buckets compared after availability rank.
	TieThresholdKm float64
}

// DefaultMatcherOptions returns the thresholds used by the directory pages.
func DefaultMatcherOptions() MatcherOptions {
	return MatcherOptions{
		DedupRadiusKm:      DefaultDedupRadiusKm,
		SentinelDistanceKm: DefaultSentinelDistanceKm,
		TieThresholdKm:     DefaultTieThresholdKm,
	}
}

// GeoMatcher merges verified and supplementary listings and ranks them around an origin.
// It holds no mutable state and is safe for concurrent use.
type GeoMatcher struct {
	opts MatcherOptions
}

// NewGeoMatcher creates a matcher. Non-positive options fall back to their defaults.
func NewGeoMatcher(opts MatcherOptions) *GeoMatcher {
	defaults := DefaultMatcherOptions()
	if opts.DedupRadiusKm <= 0 {
		opts.DedupRadiusKm = defaults.DedupRadiusKm
	}
	if opts.SentinelDistanceKm <= 0 {
		opts.SentinelDistanceKm = defaults.SentinelDistanceKm
	}
	if opts.TieThresholdKm <= 0 {
		opts.TieThresholdKm = defaults.TieThresholdKm
	}
	return &GeoMatcher{opts: opts}
}

// Annotate returns copies of listings with DistanceKm set relative to origin.
func (m *GeoMatcher) Annotate(listings []entities.Listing, origin *entities.GeoPoint, source entities.Source) []entities.Listing {
	out := make([]entities.Listing, 0, len(listings))
	for _, l := range listings {
		out = append(out, m.annotate(l, origin, source))
	}
	return out
}

func (m *GeoMatcher) annotate(l entities.Listing, origin *entities.GeoPoint, source entities.Source) entities.Listing {
	l.Source = source
	l.Attributes = copyAttributes(l.Attributes)
	l.CategoryTags = append([]string(nil), l.CategoryTags...)
	if origin != nil && l.Position != nil {
		l.DistanceKm = origin.DistanceTo(*l.Position)
		l.DistanceKnown = true
	} else {
		l.DistanceKm = m.opts.SentinelDistanceKm
		l.DistanceKnown = false
	}
	return l
}

// Merge combines verified listings with supplementary ones. A supplementary listing is
// dropped when its name overlaps a verified name or, with a known origin, it lies within
// DedupRadiusKm of a verified listing. Verified listings always appear exactly once.
// The result is ordered by ascending distance; equal distances keep verified first.
func (m *GeoMatcher) Merge(verified, supplementary []entities.Listing, origin *entities.GeoPoint) []entities.Listing {
	merged := m.Annotate(verified, origin, entities.SourceVerified)

	for _, s := range supplementary {
		if m.isDuplicate(s, verified, origin) {
			continue
		}
		merged = append(merged, m.annotate(s, origin, entities.SourceSupplementary))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DistanceKm < merged[j].DistanceKm
	})
	return merged
}

func (m *GeoMatcher) isDuplicate(s entities.Listing, verified []entities.Listing, origin *entities.GeoPoint) bool {
	for _, v := range verified {
		if namesOverlap(v.Name, s.Name) {
			return true
		}
		if origin != nil && v.Position != nil && s.Position != nil &&
			v.Position.DistanceTo(*s.Position) < m.opts.DedupRadiusKm {
			return true
		}
	}
	return false
}

// namesOverlap is the case-insensitive substring test in either direction.
func namesOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// FilterAndRank keeps the listings satisfying every criterion and orders them. When any
// survivor carries an availability state, availability rank comes first and distance
// buckets of TieThresholdKm break ties; otherwise listings are ordered by distance.
// The input is not modified and the result is never nil.
func (m *GeoMatcher) FilterAndRank(records []entities.Listing, criteria []entities.FilterCriterion) []entities.Listing {
	out := make([]entities.Listing, 0, len(records))
	byAvailability := false
	for _, r := range records {
		if !entities.MatchesAll(r, criteria) {
			continue
		}
		if r.Availability != "" {
			byAvailability = true
		}
		out = append(out, r)
	}

	if byAvailability {
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := out[i].Availability.Rank(), out[j].Availability.Rank()
			if ri != rj {
				return ri < rj
			}
			return m.bucket(out[i].DistanceKm) < m.bucket(out[j].DistanceKm)
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

func (m *GeoMatcher) bucket(distanceKm float64) float64 {
	return math.Floor(distanceKm / m.opts.TieThresholdKm)
}

func copyAttributes(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
