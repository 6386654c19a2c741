//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"addressbook-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()

	redisC, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	t.Cleanup(func() {
		redisC.Terminate(ctx)
	})

	connStr, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(connStr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() {
		client.Close()
	})
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func TestRedis_GetPutExpire(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	c := NewRedis(setupTestRedis(t), time.Second)
	key := Key{Skip: 0, Limit: 10}

	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	persons := []models.Person{{ID: 1, Name: "Jane Doe", Address: models.Address{ID: 1, PersonID: 1, City: "Quezon City"}}}
	c.Put(ctx, key, persons)

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, persons, got)

	assert.Eventually(t, func() bool {
		_, ok := c.Get(ctx, key)
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRedis_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	c := NewRedis(client, time.Second)

	c.Put(context.Background(), Key{}, []models.Person{{ID: 1}})
	_, ok := c.Get(context.Background(), Key{})
	assert.False(t, ok)
}
