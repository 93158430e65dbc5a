//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/adapters/cache"
	"github.com/afandyna/ser-Health/internal/adapters/search"
	"github.com/afandyna/ser-Health/internal/domain/entities"
)

func TestRedisCacheRoundTrip(t *testing.T) {
	client := maybeTestRedisClient(t)
	if client == nil {
		t.Skip("redis not available")
	}
	defer client.Close()

	ctx := context.Background()
	c := cache.NewRedisAdapter(client, nil)
	key := "http:/api/cities:it"

	require.NoError(t, c.Set(ctx, key, []byte(`{"ok":true}`), 30))
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(got))
	require.NoError(t, c.Delete(ctx, key))
}

func TestTypesenseIndexAndList(t *testing.T) {
	client := maybeTestTypesenseClient(t)
	if client == nil {
		t.Skip("typesense not available")
	}

	ctx := context.Background()
	index := search.NewTypesenseAdapter(client)
	require.NoError(t, index.InitSchema(ctx))

	pos := entities.GeoPoint{Lat: 31.2001, Lng: 29.9187}
	listing := &entities.Listing{
		ID:           "it-hospital",
		Kind:         entities.KindHospital,
		Name:         "Alexandria Main University Hospital",
		Position:     &pos,
		Availability: entities.AvailabilityAvailable,
		Verified:     true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, index.Index(ctx, listing))
	defer func() { _ = index.Delete(ctx, entities.KindHospital, listing.ID) }()

	listings, err := index.ListVerified(ctx, entities.KindHospital)
	require.NoError(t, err)

	var found bool
	for _, l := range listings {
		if l.ID == listing.ID {
			found = true
			require.NotNil(t, l.Position)
			assert.InDelta(t, pos.Lat, l.Position.Lat, 1e-4)
		}
	}
	assert.True(t, found)
}
