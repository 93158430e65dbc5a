package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/afandyna/ser-Health/internal/domain/providers"
	redisclient "github.com/afandyna/ser-Health/internal/infrastructure/clients/redis"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
)

const scanBatch = 100

// RedisAdapter implements the CacheProvider interface using Redis
type RedisAdapter struct {
	client  *redisclient.Client
	metrics *observability.Metrics
}

// NewRedisAdapter creates a new Redis cache adapter. metrics may be nil.
func NewRedisAdapter(client *redisclient.Client, metrics *observability.Metrics) providers.CacheProvider {
	return &RedisAdapter{
		client:  client,
		metrics: metrics,
	}
}

// Get retrieves a value from cache
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.RecordCacheMiss(ctx, a.metrics, prefixOf(key))
		return nil, fmt.Errorf("key not found: %s", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	observability.RecordCacheHit(ctx, a.metrics, prefixOf(key))
	return result, nil
}

// Set stores a value in cache with expiration
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	expiration := time.Duration(expirationSeconds) * time.Second
	if err := a.client.Client().Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

// Delete removes a value from cache
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}

// DeletePattern scans for matching keys and deletes them in batches.
func (a *RedisAdapter) DeletePattern(ctx context.Context, pattern string) error {
	rdb := a.client.Client()
	iter := rdb.Scan(ctx, 0, pattern, scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := rdb.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to delete keys matching %s: %w", pattern, err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys matching %s: %w", pattern, err)
	}
	if len(batch) > 0 {
		if err := rdb.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to delete keys matching %s: %w", pattern, err)
		}
	}
	return nil
}

// prefixOf keeps the first two segments of a colon-separated key ("geo:v3").
func prefixOf(key string) string {
	seen := 0
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			seen++
			if seen == 2 {
				return key[:i]
			}
		}
	}
	return key
}
