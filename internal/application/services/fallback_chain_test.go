package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func staticSource(name string, listings []entities.Listing, err error) SourceFunc {
	return SourceFunc{
		SourceName: name,
		Fn: func(context.Context, entities.Kind) ([]entities.Listing, error) {
			return listings, err
		},
	}
}

func TestFallbackChain_FirstSourceWins(t *testing.T) {
	chain := NewFallbackChain(nil,
		staticSource("typesense", []entities.Listing{listing("a", "A", nil)}, nil),
		staticSource("sample", []entities.Listing{listing("s", "S", nil)}, nil),
	)

	result, err := chain.Fetch(context.Background(), entities.KindHospital)
	require.NoError(t, err)
	assert.Equal(t, "typesense", result.Source)
	assert.Equal(t, []string{"a"}, ids(result.Listings))
	require.Len(t, result.Attempts, 1)
}

func TestFallbackChain_SkipsErrorsAndEmptyResults(t *testing.T) {
	chain := NewFallbackChain(nil,
		staticSource("typesense", nil, errors.New("connection refused")),
		staticSource("postgres", []entities.Listing{}, nil),
		staticSource("sample", []entities.Listing{listing("s", "S", nil)}, nil),
	)

	result, err := chain.Fetch(context.Background(), entities.KindLab)
	require.NoError(t, err)
	assert.Equal(t, "sample", result.Source)
	require.Len(t, result.Attempts, 3)
	assert.Equal(t, "connection refused", result.Attempts[0].Error)
	assert.NotEmpty(t, result.Attempts[1].Error)
	assert.Equal(t, 1, result.Attempts[2].Count)
	assert.Equal(t, []string{"typesense", "postgres", "sample"}, chain.Sources())
}

func TestFallbackChain_TerminalEmptyIsAnAnswer(t *testing.T) {
	chain := NewFallbackChain(nil,
		staticSource("typesense", nil, errors.New("down")),
		staticSource("postgres", []entities.Listing{}, nil),
	)

	result, err := chain.Fetch(context.Background(), entities.KindDonation)
	require.NoError(t, err)
	assert.Equal(t, "postgres", result.Source)
	assert.Empty(t, result.Listings)
}

func TestFallbackChain_AllFail(t *testing.T) {
	chain := NewFallbackChain(nil,
		staticSource("typesense", nil, errors.New("down")),
		staticSource("postgres", nil, errors.New("down too")),
	)

	_, err := chain.Fetch(context.Background(), entities.KindDoctor)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnavailable))
}

func TestFallbackChain_NoSources(t *testing.T) {
	_, err := NewFallbackChain(nil).Fetch(context.Background(), entities.KindDoctor)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnavailable))
}
