package loaders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/adapters/memory"
	"github.com/afandyna/ser-Health/internal/domain/entities"
)

type countingStore struct {
	*memory.ListingStore
	calls atomic.Int32
	err   error
}

func (s *countingStore) GetByIDs(ctx context.Context, kind entities.Kind, ids []string) ([]entities.Listing, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.ListingStore.GetByIDs(ctx, kind, ids)
}

func seededStore(t *testing.T) *countingStore {
	t.Helper()
	store := &countingStore{ListingStore: memory.NewListingStore()}
	for _, id := range []string{"d1", "d2", "d3"} {
		require.NoError(t, store.Create(context.Background(), &entities.Listing{ID: id, Kind: entities.KindDoctor, Name: "Dr. " + id}))
	}
	return store
}

func TestListingLoader_BatchesConcurrentLoads(t *testing.T) {
	store := seededStore(t)
	l := NewLoaders(store)
	ctx := context.Background()

	keys := []ListingKey{
		{Kind: entities.KindDoctor, ID: "d1"},
		{Kind: entities.KindDoctor, ID: "d2"},
		{Kind: entities.KindDoctor, ID: "d3"},
		{Kind: entities.KindDoctor, ID: "missing"},
	}
	got := make([]*entities.Listing, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listing, err := l.ListingLoader.Load(ctx, key)()
			assert.NoError(t, err)
			got[i] = listing
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), store.calls.Load())
	require.NotNil(t, got[0])
	assert.Equal(t, "Dr. d1", got[0].Name)
	assert.Equal(t, "d3", got[2].ID)
	assert.Nil(t, got[3])
}

func TestListingLoader_PropagatesStoreErrors(t *testing.T) {
	store := seededStore(t)
	store.err = errors.New("connection reset")

	_, err := NewLoaders(store).ListingLoader.Load(context.Background(), ListingKey{Kind: entities.KindDoctor, ID: "d1"})()
	assert.EqualError(t, err, "connection reset")
}

func TestMiddleware_AttachesLoaders(t *testing.T) {
	var attached *Loaders
	handler := Middleware(seededStore(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attached = For(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/graphql", nil))
	assert.NotNil(t, attached)
}
