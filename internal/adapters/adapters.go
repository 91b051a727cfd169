package adapters

import (
	"context"

	"fxproxy/internal/domain"
)

// RateSource fetches the full rate table for a base currency from the
// upstream provider.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (map[string]float64, error)
}

// RateCache stores one rate table per base currency. Implementations own the
// TTL; Get must never return a table older than it.
type RateCache interface {
	Get(ctx context.Context, base string) (*domain.RateTable, bool)
	Set(ctx context.Context, table *domain.RateTable) error
}

type SnapshotRepository interface {
	Save(ctx context.Context, snap *domain.RateSnapshot) error
	LatestByBase(ctx context.Context, base string) (*domain.RateSnapshot, error)
	ListByBase(ctx context.Context, base string, limit int) ([]domain.RateSnapshot, error)
}
