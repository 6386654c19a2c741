package app

import (
	"context"
	"testing"
	"time"

	"addressbook-api/internal/config"
	"addressbook-api/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		Host:             "127.0.0.1",
		Port:             "8000",
		StoreBackend:     "memory",
		GeocoderProvider: "nominatim",
		NominatimURL:     "http://127.0.0.1:1",
		CacheBackend:     "memory",
		CacheSize:        100,
		CacheTTL:         time.Minute,
	}
}

func TestBuild_Memory(t *testing.T) {
	a, err := Build(context.Background(), memoryConfig(), metrics.Nop())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Service)

	persons, err := a.Service.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestBuild_Google(t *testing.T) {
	cfg := memoryConfig()
	cfg.GeocoderProvider = "google"
	cfg.GoogleMapsAPIKey = "AIzaTestKey"

	a, err := Build(context.Background(), cfg, metrics.Nop())
	require.NoError(t, err)
	a.Close()
}

func TestBuild_InvalidRedisURL(t *testing.T) {
	cfg := memoryConfig()
	cfg.CacheBackend = "redis"
	cfg.RedisURL = "http://not-redis"

	_, err := Build(context.Background(), cfg, metrics.Nop())
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}

func TestBuild_InvalidTimezone(t *testing.T) {
	cfg := memoryConfig()
	cfg.Timezone = "Mars/Olympus"

	_, err := Build(context.Background(), cfg, metrics.Nop())
	assert.Error(t, err)
}
