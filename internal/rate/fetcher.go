package rate

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"fxproxy/internal/adapters"
	"fxproxy/internal/domain"
)

// Fetcher returns the rate table for a base currency, serving from the cache
// while the table is younger than the cache TTL and hitting the upstream
// otherwise. Concurrent misses for the same base collapse into a single
// upstream request.
type Fetcher struct {
	source    adapters.RateSource
	cache     adapters.RateCache
	snapshots adapters.SnapshotRepository // optional
	metrics   Metrics
	retryWait time.Duration

	group singleflight.Group
	now   func() time.Time
}

func NewFetcher(source adapters.RateSource, cache adapters.RateCache, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:    source,
		cache:     cache,
		metrics:   NoopMetrics{},
		retryWait: 250 * time.Millisecond,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type FetcherOption func(*Fetcher)

// WithSnapshots makes every successful fetch persist a snapshot. Persistence
// is best-effort: a failed write is logged and the fetch still succeeds.
func WithSnapshots(repo adapters.SnapshotRepository) FetcherOption {
	return func(f *Fetcher) { f.snapshots = repo }
}

func WithMetrics(m Metrics) FetcherOption {
	return func(f *Fetcher) { f.metrics = m }
}

// WithRetryWait sets the pause before the single retry of a failed network
// call. Zero or negative disables the retry.
func WithRetryWait(wait time.Duration) FetcherOption {
	return func(f *Fetcher) { f.retryWait = wait }
}

// GetRates validates base, then serves the table per the cache contract:
// a fresh cached table means no network call at all; a miss means exactly
// one upstream GET shared by every concurrent caller asking for that base.
func (f *Fetcher) GetRates(ctx context.Context, base string) (*domain.RateTable, error) {
	code, err := domain.NormalizeCode(base)
	if err != nil {
		return nil, err
	}

	if table, ok := f.cache.Get(ctx, code); ok {
		f.metrics.CacheHit()
		return table, nil
	}
	f.metrics.CacheMiss()

	v, err, _ := f.group.Do(code, func() (interface{}, error) {
		// Another caller in this flight may have filled the cache already.
		if table, ok := f.cache.Get(ctx, code); ok {
			return table, nil
		}
		return f.fetchAndStore(ctx, code)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.RateTable), nil
}

func (f *Fetcher) fetchAndStore(ctx context.Context, code string) (*domain.RateTable, error) {
	rates, err := f.fetchWithRetry(ctx, code)
	if err != nil {
		f.metrics.UpstreamError()
		return nil, err
	}

	table, err := domain.NewRateTable(code, rates, f.now())
	if err != nil {
		f.metrics.UpstreamError()
		return nil, err
	}

	if setErr := f.cache.Set(ctx, table); setErr != nil {
		logrus.WithError(setErr).WithField("base", code).Warn("Failed to cache rate table")
	}
	if f.snapshots != nil {
		if saveErr := f.snapshots.Save(ctx, domain.SnapshotOf(table)); saveErr != nil {
			logrus.WithError(saveErr).WithField("base", code).Warn("Failed to persist rate snapshot")
		}
	}
	return table, nil
}

// fetchWithRetry retries once after a fixed wait, and only for network
// failures: an invalid currency or a malformed body will not get better on
// a second attempt.
func (f *Fetcher) fetchWithRetry(ctx context.Context, code string) (map[string]float64, error) {
	rates, err := f.source.FetchRates(ctx, code)
	if err == nil || f.retryWait <= 0 || !errors.Is(err, domain.ErrNetwork) {
		return rates, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(f.retryWait):
	}

	logrus.WithError(err).WithField("base", code).Debug("Retrying rates fetch")
	return f.source.FetchRates(ctx, code)
}
