// Package app assembles the address book service from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"addressbook-api/internal/cache"
	"addressbook-api/internal/config"
	"addressbook-api/internal/geocoder"
	"addressbook-api/internal/metrics"
	"addressbook-api/internal/repository"
	"addressbook-api/internal/service"
	"addressbook-api/internal/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	geocodeTimeout     = 10 * time.Second
	nominatimUserAgent = "addressbook-api/1.0"
)

// App holds the assembled service and the resources it owns.
type App struct {
	Service *service.AddressService

	closers []func()
}

// Close releases database and cache connections in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build wires store, geocoder, cache and validator according to cfg.
func Build(ctx context.Context, cfg config.Config, m *metrics.Metrics) (*App, error) {
	a := &App{}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := a.newStore(ctx, cfg, loc)
	if err != nil {
		a.Close()
		return nil, err
	}

	resolver, err := newResolver(cfg, m)
	if err != nil {
		a.Close()
		return nil, err
	}

	listing, err := a.newCache(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Service = service.NewAddressService(store, resolver, listing, validation.New(), m)
	return a, nil
}

func (a *App) newStore(ctx context.Context, cfg config.Config, loc *time.Location) (service.PersonStore, error) {
	if cfg.StoreBackend == "memory" {
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return repository.NewMemoryRepository(loc), nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return nil, fmt.Errorf("app: cannot connect to db: %w", err)
	}
	a.closers = append(a.closers, pool.Close)

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("app: cannot reach db: %w", err)
	}
	if cfg.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		log.Info().Msg("database schema is up to date")
	}
	return repository.NewRepository(pool, loc), nil
}

func newResolver(cfg config.Config, m *metrics.Metrics) (geocoder.Resolver, error) {
	client := &http.Client{Timeout: geocodeTimeout}

	switch cfg.GeocoderProvider {
	case "nominatim":
		return geocoder.NewInstrumented(geocoder.NewNominatim(cfg.NominatimURL, nominatimUserAgent, client), "nominatim", m), nil
	default:
		g, err := geocoder.NewGoogle(cfg.GoogleMapsAPIKey, "", client)
		if err != nil {
			return nil, err
		}
		return geocoder.NewInstrumented(g, "google", m), nil
	}
}

func (a *App) newCache(cfg config.Config) (cache.ListingCache, error) {
	if cfg.CacheBackend != "redis" {
		return cache.NewMemory(cfg.CacheSize, cfg.CacheTTL), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("app: invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	a.closers = append(a.closers, func() { _ = client.Close() })
	return cache.NewRedis(client, cfg.CacheTTL), nil
}
