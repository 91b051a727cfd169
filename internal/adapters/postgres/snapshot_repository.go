package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fxproxy/internal/domain"
)

// SnapshotRepository persists every successful fetch so the last known rates
// survive restarts and can be browsed after the fact.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Save(ctx context.Context, snap *domain.RateSnapshot) error {
	payload, err := json.Marshal(snap.Rates)
	if err != nil {
		return fmt.Errorf("failed to marshal rates for %q: %w", snap.Base, err)
	}

	const q = `
		insert into rate_snapshots (id, base, rates, fetched_at)
		values ($1, $2, $3, $4);
	`

	if _, err = r.pool.Exec(ctx, q, snap.ID, snap.Base, json.RawMessage(payload), snap.FetchedAt); err != nil {
		return fmt.Errorf("failed to insert snapshot for %q: %w", snap.Base, err)
	}
	return nil
}

func (r *SnapshotRepository) LatestByBase(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	const q = `
		select id, base, rates, fetched_at
		from rate_snapshots
		where base = $1
		order by fetched_at desc
		limit 1;
	`

	snap, err := scanSnapshot(r.pool.QueryRow(ctx, q, base))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to select latest snapshot for %q: %w", base, err)
	}
	return snap, nil
}

func (r *SnapshotRepository) ListByBase(ctx context.Context, base string, limit int) ([]domain.RateSnapshot, error) {
	const q = `
		select id, base, rates, fetched_at
		from rate_snapshots
		where base = $1
		order by fetched_at desc
		limit $2;
	`

	rows, err := r.pool.Query(ctx, q, base, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots for %q: %w", base, err)
	}
	defer rows.Close()

	snaps := make([]domain.RateSnapshot, 0, limit)
	for rows.Next() {
		snap, scanErr := scanSnapshot(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan snapshot for %q: %w", base, scanErr)
		}
		snaps = append(snaps, *snap)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots for %q: %w", base, err)
	}
	return snaps, nil
}

func scanSnapshot(row pgx.Row) (*domain.RateSnapshot, error) {
	var snap domain.RateSnapshot
	var payload []byte
	if err := row.Scan(&snap.ID, &snap.Base, &payload, &snap.FetchedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &snap.Rates); err != nil {
		return nil, err
	}
	return &snap, nil
}
