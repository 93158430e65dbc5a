package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

func TestSyncIndex(t *testing.T) {
	src := SourceFunc{
		SourceName: "memory",
		Fn: func(_ context.Context, kind entities.Kind) ([]entities.Listing, error) {
			if kind == entities.KindLab {
				return []entities.Listing{
					{ID: "l1", Kind: entities.KindLab, Name: "Alfa"},
					{ID: "l2", Kind: entities.KindLab, Name: "Al Borg"},
				}, nil
			}
			return []entities.Listing{}, nil
		},
	}
	index := new(MockListingIndex)
	index.On("Index", mock.Anything, mock.AnythingOfType("*entities.Listing")).Return(nil)

	counts, err := SyncIndex(context.Background(), src, index)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[entities.KindLab])
	index.AssertNumberOfCalls(t, "Index", 2)
}

func TestSyncIndex_SourceError(t *testing.T) {
	src := staticSource("postgres", nil, errors.New("down"))
	_, err := SyncIndex(context.Background(), src, new(MockListingIndex))
	assert.Error(t, err)
}

func TestSyncIndex_IndexError(t *testing.T) {
	src := staticSource("memory", []entities.Listing{{ID: "x", Kind: entities.KindHospital, Name: "X"}}, nil)
	index := new(MockListingIndex)
	index.On("Index", mock.Anything, mock.Anything).Return(errors.New("typesense down"))

	_, err := SyncIndex(context.Background(), src, index)
	assert.ErrorContains(t, err, "typesense down")
}
