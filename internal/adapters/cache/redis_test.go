package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx := context.Background()
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisCache_SetAndGet(t *testing.T) {
	client := setupRedis(t)
	c := NewRedisCache(client, time.Minute)

	table := mustTable(t, "USD", map[string]float64{"EUR": 0.92, "GBP": 0.79}, time.Now())
	require.NoError(t, c.Set(context.Background(), table))

	got, ok := c.Get(context.Background(), "USD")
	require.True(t, ok)
	require.Equal(t, table.Base, got.Base)
	require.Equal(t, table.Rates, got.Rates)
	require.True(t, table.FetchedAt.Equal(got.FetchedAt))
}

func TestRedisCache_GetMissWhenEmpty(t *testing.T) {
	client := setupRedis(t)
	c := NewRedisCache(client, time.Minute)

	got, ok := c.Get(context.Background(), "EUR")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestRedisCache_EntryExpiresAfterTTL(t *testing.T) {
	client := setupRedis(t)
	c := NewRedisCache(client, time.Second)

	table := mustTable(t, "USD", map[string]float64{"EUR": 0.92}, time.Now())
	require.NoError(t, c.Set(context.Background(), table))

	_, ok := c.Get(context.Background(), "USD")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := c.Get(context.Background(), "USD")
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRedisCache_SkipsUnreadablePayload(t *testing.T) {
	client := setupRedis(t)
	c := NewRedisCache(client, time.Minute)

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, redisKey("USD"), "not-json", time.Minute).Err())

	got, ok := c.Get(ctx, "USD")
	require.False(t, ok)
	require.Nil(t, got)
}
