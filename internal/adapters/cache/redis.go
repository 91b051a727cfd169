package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"fxproxy/internal/domain"
)

// RedisCache shares rate tables across service replicas. Tables are stored
// as JSON under rates:{BASE} with the TTL enforced by the server, so a
// replica restart does not lose the freshness window.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func redisKey(base string) string {
	return "rates:" + base
}

func (c *RedisCache) Get(ctx context.Context, base string) (*domain.RateTable, bool) {
	data, err := c.client.Get(ctx, redisKey(base)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("Redis rate cache read failed")
		}
		return nil, false
	}

	var table domain.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		logrus.WithError(err).Warn("Redis rate cache holds an unreadable table")
		return nil, false
	}

	return &table, true
}

func (c *RedisCache) Set(ctx context.Context, table *domain.RateTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal rate table for %q: %w", table.Base, err)
	}

	if err := c.client.Set(ctx, redisKey(table.Base), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store rate table for %q: %w", table.Base, err)
	}

	return nil
}
