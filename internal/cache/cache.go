// Package cache holds the read-through cache in front of the paginated
// listing. Entries expire after a fixed TTL and are never invalidated by
// writes, so a listing may be stale for up to one TTL.
package cache

import (
	"context"
	"fmt"
	"time"

	"addressbook-api/internal/models"
)

const (
	// DefaultSize is the maximum number of distinct (skip, limit) windows kept.
	DefaultSize = 100
	// DefaultTTL is how long a listing snapshot is served.
	DefaultTTL = 60 * time.Second
)

// Key identifies one pagination window.
type Key struct {
	Skip  int
	Limit int
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.Skip, k.Limit)
}

// ListingCache caches listing snapshots by pagination window.
type ListingCache interface {
	Get(ctx context.Context, key Key) ([]models.Person, bool)
	Put(ctx context.Context, key Key, persons []models.Person)
}
