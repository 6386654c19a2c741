package cache

import (
	"context"
	"time"

	"addressbook-api/internal/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is a process-local, size-bounded, expiring ListingCache. It is safe
// for concurrent use.
type Memory struct {
	lru *expirable.LRU[Key, []models.Person]
}

// NewMemory returns a cache holding at most size keys, each for ttl.
func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: expirable.NewLRU[Key, []models.Person](size, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, key Key) ([]models.Person, bool) {
	return m.lru.Get(key)
}

func (m *Memory) Put(_ context.Context, key Key, persons []models.Person) {
	m.lru.Add(key, persons)
}

// Len reports the number of live entries.
func (m *Memory) Len() int {
	return m.lru.Len()
}
