package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/metrics"
)

const cacheTTL = 5 * time.Minute

// ContentCache is a Redis-backed JSON cache for the public content listings.
// Entries expire after cacheTTL even without an explicit invalidation.
type ContentCache struct {
	client *redis.Client
}

func NewContentCache(client *redis.Client) *ContentCache {
	return &ContentCache{client: client}
}

// Get unmarshals the cached value into dest and reports whether the key was
// present.
func (c *ContentCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ContentCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.ContentCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *ContentCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(key), raw, cacheTTL).Err()
}

func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	return c.client.Del(ctx, prefixed...).Err()
}

func (c *ContentCache) key(k string) string {
	return "cache:" + k
}
