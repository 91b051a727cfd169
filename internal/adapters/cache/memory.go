package cache

import (
	"context"
	"sync"
	"time"

	"fxproxy/internal/domain"
)

// MemoryCache keeps one rate table per base behind an RWMutex. An entry is
// valid while its fetch timestamp is younger than the TTL; stale entries are
// overwritten by the next Set, never reaped by a background job.
type MemoryCache struct {
	mu     sync.RWMutex
	tables map[string]*domain.RateTable
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		tables: make(map[string]*domain.RateTable),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, base string) (*domain.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[base]
	if !ok || t.Age(c.now()) >= c.ttl {
		return nil, false
	}
	return t, true
}

func (c *MemoryCache) Set(_ context.Context, table *domain.RateTable) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[table.Base] = table
	return nil
}
