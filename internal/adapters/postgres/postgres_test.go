package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"

	"fxproxy/internal/adapters/postgres"
	"fxproxy/internal/domain"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `truncate table rate_snapshots`); err != nil {
		return err
	}
	return nil
}

func newSnapshot(base string, rates map[string]float64, fetchedAt time.Time) *domain.RateSnapshot {
	return &domain.RateSnapshot{
		ID:        uuid.New(),
		Base:      base,
		Rates:     rates,
		FetchedAt: fetchedAt,
	}
}

func TestSnapshotRepository_LatestByBase_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	ctx := context.Background()
	_, err := repo.LatestByBase(ctx, "USD")
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotRepository_SaveAndLatestByBase(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx := context.Background()

	older := newSnapshot("USD", map[string]float64{"USD": 1, "EUR": 0.90}, time.Now().Add(-time.Hour))
	newer := newSnapshot("USD", map[string]float64{"USD": 1, "EUR": 0.92}, time.Now())
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.LatestByBase(ctx, "USD")
	require.NoError(t, err)
	require.Equal(t, newer.ID, got.ID)
	require.Equal(t, "USD", got.Base)
	require.Equal(t, newer.Rates, got.Rates)
	require.WithinDuration(t, newer.FetchedAt, got.FetchedAt, time.Millisecond)
}

func TestSnapshotRepository_LatestByBase_IgnoresOtherBases(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newSnapshot("EUR", map[string]float64{"EUR": 1, "USD": 1.08}, time.Now())))

	_, err := repo.LatestByBase(ctx, "USD")
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotRepository_ListByBase_OrderAndLimit(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		snap := newSnapshot("USD", map[string]float64{"USD": 1, "EUR": 0.90 + float64(i)/100}, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Save(ctx, snap))
		ids = append(ids, snap.ID)
	}

	snaps, err := repo.ListByBase(ctx, "USD", 3)
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	// Newest first.
	require.Equal(t, ids[4], snaps[0].ID)
	require.Equal(t, ids[3], snaps[1].ID)
	require.Equal(t, ids[2], snaps[2].ID)
}

func TestSnapshotRepository_ListByBase_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	snaps, err := repo.ListByBase(context.Background(), "USD", 10)
	require.NoError(t, err)
	require.Empty(t, snaps)
}

func TestSnapshotRepository_Save_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := repo.Save(ctx, newSnapshot("USD", map[string]float64{"USD": 1}, time.Now()))
	require.Error(t, err)
}
