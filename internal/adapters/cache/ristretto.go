package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"fxproxy/internal/domain"
)

// RistrettoCache is the in-process backend for deployments that want an
// admission-controlled memory bound. Set waits for buffered writes to apply
// so callers always see their own write.
type RistrettoCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewRistrettoCache(maxItems int64, ttl time.Duration) (*RistrettoCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate table cache failed: %w", err)
	}

	return &RistrettoCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoCache) Get(_ context.Context, base string) (*domain.RateTable, bool) {
	v, ok := c.cache.Get(base)
	if !ok {
		return nil, false
	}

	table, ok := v.(*domain.RateTable)
	return table, ok
}

func (c *RistrettoCache) Set(_ context.Context, table *domain.RateTable) error {
	c.cache.SetWithTTL(table.Base, table, 1, c.ttl)
	c.cache.Wait()
	return nil
}

func (c *RistrettoCache) Close() {
	c.cache.Close()
}
