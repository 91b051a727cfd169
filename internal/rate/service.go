package rate

import (
	"context"
	"fmt"

	"fxproxy/internal/adapters"
	"fxproxy/internal/domain"
)

// RatesFetcher is what the service needs from the fetch client.
type RatesFetcher interface {
	GetRates(ctx context.Context, base string) (*domain.RateTable, error)
}

type Service struct {
	fetcher   RatesFetcher
	snapshots adapters.SnapshotRepository
	metrics   Metrics
}

func NewService(fetcher RatesFetcher, snapshots adapters.SnapshotRepository, metrics Metrics) *Service {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Service{fetcher: fetcher, snapshots: snapshots, metrics: metrics}
}

func (s *Service) GetTable(ctx context.Context, base string) (*domain.RateTable, error) {
	return s.fetcher.GetRates(ctx, base)
}

// GetPair reads the quote value out of the base table.
func (s *Service) GetPair(ctx context.Context, base, quote string) (PairView, error) {
	quote, err := domain.NormalizeCode(quote)
	if err != nil {
		return PairView{}, err
	}

	table, err := s.fetcher.GetRates(ctx, base)
	if err != nil {
		return PairView{}, err
	}

	value, ok := table.Rate(quote)
	if !ok {
		return PairView{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, quote)
	}

	return PairView{
		Base:      table.Base,
		Quote:     quote,
		Value:     value,
		FetchedAt: table.FetchedAt,
	}, nil
}

// Convert fetches the table based on the source currency and applies the
// cross-rate arithmetic.
func (s *Service) Convert(ctx context.Context, from, to string, amount float64) (ConversionView, error) {
	to, err := domain.NormalizeCode(to)
	if err != nil {
		return ConversionView{}, err
	}

	table, err := s.fetcher.GetRates(ctx, from)
	if err != nil {
		return ConversionView{}, err
	}

	result, err := Convert(amount, table.Base, to, table)
	if err != nil {
		return ConversionView{}, err
	}
	s.metrics.Conversion()

	return ConversionView{
		From:      table.Base,
		To:        to,
		Amount:    amount,
		Result:    result,
		FetchedAt: table.FetchedAt,
	}, nil
}

func (s *Service) LatestSnapshot(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	code, err := domain.NormalizeCode(base)
	if err != nil {
		return nil, err
	}
	return s.snapshots.LatestByBase(ctx, code)
}

func (s *Service) ListSnapshots(ctx context.Context, base string, limit int) ([]domain.RateSnapshot, error) {
	code, err := domain.NormalizeCode(base)
	if err != nil {
		return nil, err
	}
	return s.snapshots.ListByBase(ctx, code, limit)
}
