package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/adapters/memory"
	"github.com/afandyna/ser-Health/internal/adapters/sample"
	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

type MockNearbyProvider struct {
	mock.Mock
}

func (m *MockNearbyProvider) FetchNearby(ctx context.Context, origin entities.GeoPoint, radiusMeters int, kind entities.Kind) ([]entities.Listing, error) {
	args := m.Called(ctx, origin, radiusMeters, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Listing), args.Error(1)
}

var cairo = point(30.0444, 31.2357)

func hospitals() []entities.Listing {
	return []entities.Listing{
		{ID: "h-near", Kind: entities.KindHospital, Name: "Kasr Al Ainy", Position: point(30.0310, 31.2300), CategoryTags: []string{"General", "Emergency"}, Status: "open"},
		{ID: "h-mid", Kind: entities.KindHospital, Name: "Dar Al Fouad", Position: point(30.0070, 30.9700), CategoryTags: []string{"cardiology"}, Status: "open"},
		{ID: "h-far", Kind: entities.KindHospital, Name: "Alexandria Main", Position: point(31.2001, 29.9187), CategoryTags: []string{"general"}, Status: "closed"},
	}
}

func newDirectory(verified []entities.Listing, nearby *MockNearbyProvider) *DirectoryService {
	chain := NewFallbackChain(nil, staticSource("memory", verified, nil))
	fallback := staticSource("sample", []entities.Listing{listing("sample-1", "Sample", nil)}, nil)
	var np providers.NearbyPlacesProvider
	if nearby != nil {
		np = nearby
	}
	return NewDirectoryService(chain, fallback, np, NewGeoMatcher(DefaultMatcherOptions()), nil, DirectoryOptions{})
}

func TestDirectoryService_NearbyMergesSupplementary(t *testing.T) {
	nearby := new(MockNearbyProvider)
	nearby.On("FetchNearby", mock.Anything, *cairo, DefaultNearbyRadiusMeters, entities.KindHospital).Return([]entities.Listing{
		{ID: "gm_dup", Kind: entities.KindHospital, Name: "Kasr Al Ainy Hospital", Position: point(30.0312, 31.2302)},
		{ID: "gm_new", Kind: entities.KindHospital, Name: "Nile Clinic", Position: point(30.0500, 31.2400)},
	}, nil)

	svc := newDirectory(hospitals(), nearby)
	result, err := svc.Nearby(context.Background(), NearbyQuery{Kind: entities.KindHospital, Origin: cairo})
	require.NoError(t, err)

	assert.Equal(t, "memory", result.Source)
	assert.Equal(t, 1, result.DuplicatesDropped)
	assert.Equal(t, 1, result.SupplementaryCount)
	require.Len(t, result.Listings, 4)
	assert.Equal(t, []string{"gm_new", "h-near", "h-mid", "h-far"}, ids(result.Listings))
	assert.Equal(t, entities.SourceSupplementary, result.Listings[0].Source)
	nearby.AssertExpectations(t)
}

func TestDirectoryService_NearbySupplementaryFailureFallsBackToEmpty(t *testing.T) {
	nearby := new(MockNearbyProvider)
	nearby.On("FetchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	svc := newDirectory(hospitals(), nearby)
	result, err := svc.Nearby(context.Background(), NearbyQuery{Kind: entities.KindHospital, Origin: cairo})
	require.NoError(t, err)
	assert.Len(t, result.Listings, 3)
	assert.Zero(t, result.SupplementaryCount)
}

func TestDirectoryService_NearbyWithoutOriginSkipsSupplementary(t *testing.T) {
	nearby := new(MockNearbyProvider)

	svc := newDirectory(hospitals(), nearby)
	result, err := svc.Nearby(context.Background(), NearbyQuery{
		Kind:     entities.KindHospital,
		Criteria: []entities.FilterCriterion{entities.Status("open")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"h-near", "h-mid"}, ids(result.Listings))
	for _, l := range result.Listings {
		assert.False(t, l.DistanceKnown)
		assert.Equal(t, DefaultSentinelDistanceKm, l.DistanceKm)
	}
	nearby.AssertNotCalled(t, "FetchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDirectoryService_NearbyChainFailureUsesFallback(t *testing.T) {
	chain := NewFallbackChain(nil, staticSource("postgres", nil, errors.New("down")))
	fallback := staticSource("sample", []entities.Listing{listing("sample-1", "Sample", nil)}, nil)
	svc := NewDirectoryService(chain, fallback, nil, nil, nil, DirectoryOptions{})

	result, err := svc.Nearby(context.Background(), NearbyQuery{Kind: entities.KindHospital})
	require.NoError(t, err)
	assert.Equal(t, "sample", result.Source)
	assert.Equal(t, []string{"sample-1"}, ids(result.Listings))
	require.Len(t, result.Attempts, 1)
}

func TestDirectoryService_NearbyRejectsInvalidOrigin(t *testing.T) {
	svc := newDirectory(hospitals(), nil)
	_, err := svc.Nearby(context.Background(), NearbyQuery{Kind: entities.KindHospital, Origin: point(120, 0)})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestDirectoryService_Emergency(t *testing.T) {
	svc := newDirectory(hospitals(), nil)

	result, err := svc.Emergency(context.Background(), cairo)
	require.NoError(t, err)
	assert.False(t, result.LocationRequired)
	assert.Equal(t, []string{"h-near"}, ids(result.Nearby))
	assert.Equal(t, []string{"h-mid", "h-far"}, ids(result.Far))
	assert.Equal(t, entities.EmergencyNumbers, result.Numbers)
}

func TestDirectoryService_EmergencyWithoutOrigin(t *testing.T) {
	svc := newDirectory(hospitals(), nil)

	result, err := svc.Emergency(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, result.LocationRequired)
	assert.Empty(t, result.Nearby)
	assert.Len(t, result.Far, 3)
}

func TestDirectoryService_Search(t *testing.T) {
	chain := NewFallbackChain(nil, SourceFunc{
		SourceName: "memory",
		Fn: func(_ context.Context, kind entities.Kind) ([]entities.Listing, error) {
			switch kind {
			case entities.KindHospital:
				return hospitals(), nil
			case entities.KindLab:
				return []entities.Listing{{ID: "lab-1", Kind: entities.KindLab, Name: "Cardio Lab", CategoryTags: []string{"ECG"}}}, nil
			}
			return []entities.Listing{}, nil
		},
	})
	svc := NewDirectoryService(chain, nil, nil, nil, nil, DirectoryOptions{})

	result, err := svc.Search(context.Background(), "cardio", cairo)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Groups, 2)
	assert.Equal(t, entities.KindHospital, result.Groups[0].Kind)
	assert.Equal(t, []string{"h-mid"}, ids(result.Groups[0].Listings))
	assert.Equal(t, entities.KindLab, result.Groups[1].Kind)

	_, err = svc.Search(context.Background(), "  ", nil)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestDirectoryService_Categories(t *testing.T) {
	svc := newDirectory(hospitals(), nil)

	categories, err := svc.Categories(context.Background(), entities.KindHospital)
	require.NoError(t, err)
	assert.Equal(t, []string{"General", "Emergency", "cardiology"}, categories)
}

func TestDirectoryService_NearbyMergesSampleIntoStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewListingStore()
	registry := NewRegistryService(store, nil)

	registered, err := registry.Register(ctx, entities.Doctor{Name: "Dr. Mona Adel", Specialty: "Pediatrics"}.Listing())
	require.NoError(t, err)
	_, err = registry.Approve(ctx, entities.KindDoctor, registered.ID)
	require.NoError(t, err)

	chain := NewFallbackChain(nil, store, sample.NewSource())
	svc := NewDirectoryService(chain, sample.NewSource(), nil, nil, nil, DirectoryOptions{MergeFallback: true})

	result, err := svc.Nearby(ctx, NearbyQuery{Kind: entities.KindDoctor})
	require.NoError(t, err)
	assert.Equal(t, "memory", result.Source)
	require.Len(t, result.Listings, 6)
	assert.Contains(t, ids(result.Listings), registered.ID)
	assert.Contains(t, ids(result.Listings), "d1")
	require.Len(t, result.Attempts, 2)
	assert.Equal(t, sample.SourceName, result.Attempts[1].Source)
	assert.Equal(t, 5, result.Attempts[1].Count)
}

func TestDirectoryService_MergeFallbackSkipsKnownIDs(t *testing.T) {
	chain := NewFallbackChain(nil, staticSource("postgres", []entities.Listing{listing("d1", "Dr. Ahmed", nil)}, nil))
	fallback := staticSource("sample", []entities.Listing{listing("d1", "Dr. Ahmed (sample)", nil), listing("d2", "Dr. Sara", nil)}, nil)
	svc := NewDirectoryService(chain, fallback, nil, nil, nil, DirectoryOptions{MergeFallback: true})

	result, err := svc.Nearby(context.Background(), NearbyQuery{Kind: entities.KindDoctor})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"d1", "d2"}, ids(result.Listings))
	for _, l := range result.Listings {
		if l.ID == "d1" {
			assert.Equal(t, "Dr. Ahmed", l.Name)
		}
	}
}

func TestDirectoryService_MergeFallbackDisabled(t *testing.T) {
	svc := newDirectory(hospitals(), nil)
	result, err := svc.Nearby(context.Background(), NearbyQuery{Kind: entities.KindHospital})
	require.NoError(t, err)
	assert.NotContains(t, ids(result.Listings), "sample-1")
}
