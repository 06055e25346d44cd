// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/vvdex/internal/platform/constants"
)

// cacheVersion is bumped whenever the cached JSON layout changes.
const cacheVersion = "v1"

// RedisCache implements [Cache] with one JSON string per kind.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a [RedisCache]. A zero ttl disables caching.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(kind Kind) string {
	return constants.RedisPrefixCatalog + string(kind) + ":" + cacheVersion
}

// Get reads the cached list for kind.
func (cache *RedisCache) Get(ctx context.Context, kind Kind) ([]Item, bool, error) {
	if cache.ttl <= 0 {
		return nil, false, nil
	}

	raw, err := cache.client.Get(ctx, cacheKey(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog: cache get %s: %w", kind, err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("catalog: cache decode %s: %w", kind, err)
	}

	return items, true, nil
}

// Set stores the list for kind with the configured TTL.
func (cache *RedisCache) Set(ctx context.Context, kind Kind, items []Item) error {
	if cache.ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("catalog: cache encode %s: %w", kind, err)
	}

	if err := cache.client.Set(ctx, cacheKey(kind), raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("catalog: cache set %s: %w", kind, err)
	}

	return nil
}
