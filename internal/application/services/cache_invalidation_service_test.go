package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/adapters/cache"
	"github.com/afandyna/ser-Health/internal/adapters/events"
	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/providers"
)

const searchPattern = "http:cache:/api/search:*"

func seedCache(t *testing.T, c providers.CacheProvider) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "http:cache:/api/search:1", []byte("data"), 300))
	require.NoError(t, c.Set(ctx, "http:cache:/api/search:2", []byte("data"), 300))
	require.NoError(t, c.Set(ctx, "http:cache:/api/cities:1", []byte("data"), 300))
}

func cached(c providers.CacheProvider, key string) bool {
	_, err := c.Get(context.Background(), key)
	return err == nil
}

func TestCacheInvalidationService_ApprovalClearsSearch(t *testing.T) {
	c := cache.NewMemoryCache()
	bus := events.NewMemoryEventBus()
	defer bus.Close()
	seedCache(t, c)

	service := services.NewCacheInvalidationService(c, bus, searchPattern)
	require.NoError(t, service.Start())
	defer service.Stop()

	event := entities.NewListingEvent(entities.KindHospital, "h1", entities.ListingEventApproved)
	require.NoError(t, bus.Publish(context.Background(), providers.EventChannelListingUpdates, event))

	assert.Eventually(t, func() bool {
		return !cached(c, "http:cache:/api/search:1") && !cached(c, "http:cache:/api/search:2")
	}, time.Second, 10*time.Millisecond)
	assert.True(t, cached(c, "http:cache:/api/cities:1"))
}

func TestCacheInvalidationService_RegistrationKeepsCache(t *testing.T) {
	c := cache.NewMemoryCache()
	bus := events.NewMemoryEventBus()
	defer bus.Close()
	seedCache(t, c)

	service := services.NewCacheInvalidationService(c, bus, searchPattern)
	require.NoError(t, service.Start())

	event := entities.NewListingEvent(entities.KindLab, "l1", entities.ListingEventRegistered)
	require.NoError(t, bus.Publish(context.Background(), providers.EventChannelListingUpdates, event))

	service.Stop()
	assert.True(t, cached(c, "http:cache:/api/search:1"))
}

func TestCacheInvalidationService_Invalidate(t *testing.T) {
	c := cache.NewMemoryCache()
	seedCache(t, c)

	service := services.NewCacheInvalidationService(c, events.NewMemoryEventBus(), searchPattern)
	require.NoError(t, service.Invalidate(context.Background()))

	assert.False(t, cached(c, "http:cache:/api/search:1"))
	assert.True(t, cached(c, "http:cache:/api/cities:1"))
}
