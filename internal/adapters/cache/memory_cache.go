package cache

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/afandyna/ser-Health/internal/domain/providers"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process CacheProvider used when Redis is disabled.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() providers.CacheProvider {
	return &MemoryCache{entries: make(map[string]entry), now: time.Now}
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || (!e.expiresAt.IsZero() && c.now().After(e.expiresAt)) {
		delete(c.entries, key)
		return nil, fmt.Errorf("key not found: %s", key)
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores a value; a non-positive expiration never expires.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if expirationSeconds > 0 {
		e.expiresAt = c.now().Add(time.Duration(expirationSeconds) * time.Second)
	}
	c.entries[key] = e
	return nil
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// DeletePattern removes every key matching a glob where '*' matches any run of characters.
func (c *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	re, err := globToRegexp(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if re.MatchString(key) {
			delete(c.entries, key)
		}
	}
	return nil
}

func globToRegexp(pattern string) (*regexp.Regexp, error) {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile("^" + strings.Join(parts, ".*") + "$")
}
