package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/afandyna/ser-Health/internal/domain/providers"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
)

// CacheConfig holds cache configuration for specific routes
type CacheConfig struct {
	TTLSeconds int
	Enabled    bool
}

// CacheMiddleware caches successful GET responses of slow, read-only routes.
type CacheMiddleware struct {
	cache        providers.CacheProvider
	routeConfigs map[string]CacheConfig
}

// NewCacheMiddleware creates a cache middleware with the default route table.
// Directory pages are not cached because supplementary places change with the origin.
func NewCacheMiddleware(cache providers.CacheProvider) *CacheMiddleware {
	return NewCacheMiddlewareWithConfig(cache, map[string]CacheConfig{
		"/api/geocode": {TTLSeconds: 3600, Enabled: true},
		"/api/cities":  {TTLSeconds: 86400, Enabled: true},
		"/api/search":  {TTLSeconds: 60, Enabled: true},
	})
}

// NewCacheMiddlewareWithConfig creates a cache middleware with a custom route table.
// Keys ending in "/" match as prefixes.
func NewCacheMiddlewareWithConfig(cache providers.CacheProvider, configs map[string]CacheConfig) *CacheMiddleware {
	return &CacheMiddleware{cache: cache, routeConfigs: configs}
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		config := m.getRouteConfig(r.URL.Path)
		if !config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		logger := observability.LoggerFromContext(r.Context())
		cacheKey := generateCacheKey(r)

		if cached, err := m.cache.Get(r.Context(), cacheKey); err == nil {
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(r.Context(), cacheKey, recorder.body.Bytes(), config.TTLSeconds); err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("failed to cache response")
			}
		}
	})
}

func (m *CacheMiddleware) getRouteConfig(path string) CacheConfig {
	if config, exists := m.routeConfigs[path]; exists {
		return config
	}
	for pattern, config := range m.routeConfigs {
		if strings.HasSuffix(pattern, "/") && strings.HasPrefix(path, pattern) {
			return config
		}
	}
	return CacheConfig{Enabled: false}
}

func generateCacheKey(r *http.Request) string {
	key := fmt.Sprintf("%s:%s", r.Method, r.URL.Path)
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.Query().Encode()
	}
	hash := sha256.Sum256([]byte(key))
	return CacheKeyPrefix + r.URL.Path + ":" + hex.EncodeToString(hash[:])
}

// CacheKeyPrefix starts every response cache key, followed by the request path.
const CacheKeyPrefix = "http:cache:"

// RoutePattern matches every cached response of a path.
func RoutePattern(path string) string {
	return CacheKeyPrefix + path + ":*"
}

// responseRecorder captures the response for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
