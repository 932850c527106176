package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefixes of the listing caches.
const (
	PrefixCompanies = "jobly:companies:"
	PrefixJobs      = "jobly:jobs:"
)

// ListCache caches filtered listings in Redis under one key prefix.
type ListCache[T any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewListCache returns a new ListCache.
func NewListCache[T any](rdb *redis.Client, prefix string, ttl time.Duration) *ListCache[T] {
	return &ListCache[T]{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Get returns the cached listing for key, or nil on a miss.
func (c *ListCache[T]) Get(ctx context.Context, key string) ([]T, error) {
	b, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list := []T{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Set stores the listing for key.
func (c *ListCache[T]) Set(ctx context.Context, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.prefix+key, b, c.ttl).Err()
}

// InvalidateAll removes every listing under the prefix (cache invalidation on write).
func (c *ListCache[T]) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Key joins normalized parts into a cache key.
func Key(parts ...string) string {
	for i, p := range parts {
		parts[i] = normalizeQuery(p)
	}
	return strings.Join(parts, "|")
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
