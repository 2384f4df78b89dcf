package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

var ErrCacheMiss = errors.New("cache miss")

// StatsCache keeps the dashboard payload warm between requests.
type StatsCache interface {
	Get(ctx context.Context, target any) error
	Set(ctx context.Context, value any, ttl time.Duration) error
}

type redisStatsCache struct {
	client *redis.Client
}

func NewRedisStatsCache(client *redis.Client) StatsCache {
	return &redisStatsCache{client: client}
}

func (c *redisStatsCache) Get(ctx context.Context, target any) error {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}

func (c *redisStatsCache) Set(ctx context.Context, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, raw, ttl).Err()
}

// NoopStatsCache disables caching; every dashboard request recomputes.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(ctx context.Context, target any) error {
	return ErrCacheMiss
}

func (NoopStatsCache) Set(ctx context.Context, value any, ttl time.Duration) error {
	return nil
}
