// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/flagdex/internal/platform/constants"
)

// ErrCacheMiss is returned when no cached figures exist.
var ErrCacheMiss = errors.New("country: stats cache miss")

// StatsCache keeps resolved figures between restarts.
type StatsCache interface {
	Load(context stdctx.Context) (map[string]Figures, error)
	Save(context stdctx.Context, figures map[string]Figures, ttl time.Duration) error
}

// DefaultCacheKey is the redis key holding the resolved figures.
const DefaultCacheKey = constants.RedisKeyCountryFigures

// RedisStatsCache stores the figures as one JSON value.
type RedisStatsCache struct {
	client *redis.Client
	key    string
}

// NewRedisStatsCache creates a cache under key, [DefaultCacheKey] when empty.
func NewRedisStatsCache(client *redis.Client, key string) *RedisStatsCache {
	if key == "" {
		key = DefaultCacheKey
	}
	return &RedisStatsCache{client: client, key: key}
}

// Load reads the cached figures.
func (cache *RedisStatsCache) Load(context stdctx.Context) (map[string]Figures, error) {
	raw, err := cache.client.Get(context, cache.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("country: read stats cache: %w", err)
	}

	var figures map[string]Figures
	if err := json.Unmarshal(raw, &figures); err != nil {
		return nil, fmt.Errorf("country: decode stats cache: %w", err)
	}
	return figures, nil
}

// Save writes the figures with an expiry.
func (cache *RedisStatsCache) Save(context stdctx.Context, figures map[string]Figures, ttl time.Duration) error {
	raw, err := json.Marshal(figures)
	if err != nil {
		return fmt.Errorf("country: encode stats cache: %w", err)
	}
	if err := cache.client.Set(context, cache.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("country: write stats cache: %w", err)
	}
	return nil
}
