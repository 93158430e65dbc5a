package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/adapters/cache"
)

func okHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	calls := 0
	h := CORSMiddleware([]string{"https://ser.health"})(okHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil)
	req.Header.Set("Origin", "https://ser.health")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://ser.health", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 1, calls)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	calls := 0
	h := CORSMiddleware(nil)(okHandler(&calls))

	req := httptest.NewRequest(http.MethodOptions, "/api/nearby-hospitals", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Zero(t, calls)
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	calls := 0
	rec := httptest.NewRecorder()
	LoggingMiddleware(okHandler(&calls)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc")
	rec = httptest.NewRecorder()
	LoggingMiddleware(okHandler(&calls)).ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(requestIDHeader))
}

func TestCacheMiddleware_HitAfterMiss(t *testing.T) {
	calls := 0
	h := NewCacheMiddleware(cache.NewMemoryCache()).Middleware(okHandler(&calls))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/geocode?address=cairo", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/geocode?address=cairo", nil))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 1, calls)
}

func TestCacheMiddleware_SkipsUncachedRoutes(t *testing.T) {
	calls := 0
	h := NewCacheMiddleware(cache.NewMemoryCache()).Middleware(okHandler(&calls))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/directory/hospitals?lat=30&lng=31", nil))
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_RoutePatternInvalidates(t *testing.T) {
	calls := 0
	c := cache.NewMemoryCache()
	h := NewCacheMiddleware(c).Middleware(okHandler(&calls))

	get := func(target string) string {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec.Header().Get("X-Cache")
	}

	assert.Equal(t, "MISS", get("/api/search?q=heart"))
	assert.Equal(t, "MISS", get("/api/cities"))
	assert.Equal(t, "HIT", get("/api/search?q=heart"))

	require.NoError(t, c.DeletePattern(context.Background(), RoutePattern("/api/search")))

	assert.Equal(t, "MISS", get("/api/search?q=heart"))
	assert.Equal(t, "HIT", get("/api/cities"))
}
