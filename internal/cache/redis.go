package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"addressbook-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisKeyPrefix = "addressbook:list:"

// Redis is a ListingCache shared between API instances. Redis failures are
// logged and treated as misses so a cache outage never fails a listing.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; every entry is written with ttl.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key Key) ([]models.Person, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key.String()).Msg("listing cache read failed")
		}
		return nil, false
	}

	var persons []models.Person
	if err := json.Unmarshal(raw, &persons); err != nil {
		log.Warn().Err(err).Str("key", key.String()).Msg("listing cache entry is corrupt")
		return nil, false
	}
	return persons, true
}

func (r *Redis) Put(ctx context.Context, key Key, persons []models.Person) {
	raw, err := json.Marshal(persons)
	if err != nil {
		log.Warn().Err(err).Str("key", key.String()).Msg("listing cache encode failed")
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key.String(), raw, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key.String()).Msg("listing cache write failed")
	}
}
