package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"addressbook-api/internal/geo"
	"addressbook-api/internal/models"
)

// MemoryRepository is an in-process store with the same contract as
// Repository. Mutations of one person serialize on a per-id mutex held for
// the whole read-modify-write, standing in for the row lock.
type MemoryRepository struct {
	mu       sync.RWMutex
	persons  map[int64]models.Person
	emails   map[string]int64
	nextID   int64
	nextAddr int64
	rowLocks sync.Map // int64 -> *sync.Mutex
	loc      *time.Location
	now      func() time.Time
}

// NewMemoryRepository returns an empty store. Timestamps use loc; nil means UTC.
func NewMemoryRepository(loc *time.Location) *MemoryRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &MemoryRepository{
		persons: make(map[int64]models.Person),
		emails:  make(map[string]int64),
		loc:     loc,
		now:     time.Now,
	}
}

func (m *MemoryRepository) rowLock(id int64) *sync.Mutex {
	l, _ := m.rowLocks.LoadOrStore(id, &sync.Mutex{})
	return l.(*sync.Mutex)
}

func (m *MemoryRepository) sortedIDs() []int64 {
	ids := make([]int64, 0, len(m.persons))
	for id := range m.persons {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *MemoryRepository) ListPersons(_ context.Context, skip, limit int) ([]models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	persons := []models.Person{}
	ids := m.sortedIDs()
	for i := skip; i < len(ids) && len(persons) < limit; i++ {
		persons = append(persons, m.persons[ids[i]])
	}
	return persons, nil
}

func (m *MemoryRepository) GetPerson(_ context.Context, id int64) (*models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.persons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// FindNearby filters in memory with the same formula the SQL store pushes down.
func (m *MemoryRepository) FindNearby(_ context.Context, lat, lon, radiusKm float64) ([]models.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	persons := []models.Person{}
	for _, id := range m.sortedIDs() {
		p := m.persons[id]
		if geo.GreatCircleDistanceKm(p.Address.Latitude, p.Address.Longitude, lat, lon) <= radiusKm {
			persons = append(persons, p)
		}
	}
	return persons, nil
}

func (m *MemoryRepository) CreatePerson(_ context.Context, p models.Person) (*models.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.emails[p.Email]; taken {
		return nil, ErrConflict
	}

	m.nextID++
	m.nextAddr++
	now := m.now().In(m.loc)
	p.ID = m.nextID
	p.CreatedAt, p.UpdatedAt = now, now
	p.Address.ID = m.nextAddr
	p.Address.PersonID = p.ID
	p.Address.CreatedAt, p.Address.UpdatedAt = now, now

	m.persons[p.ID] = p
	m.emails[p.Email] = p.ID
	return &p, nil
}

func (m *MemoryRepository) UpdatePerson(_ context.Context, id int64, mutate func(*models.Person) error) (*models.Person, error) {
	lock := m.rowLock(id)
	lock.Lock()
	defer lock.Unlock()

	m.mu.RLock()
	current, ok := m.persons[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	p := current
	if err := mutate(&p); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Email != current.Email {
		if owner, taken := m.emails[p.Email]; taken && owner != id {
			return nil, ErrConflict
		}
		delete(m.emails, current.Email)
		m.emails[p.Email] = id
	}

	now := m.now().In(m.loc)
	p.UpdatedAt = now
	p.Address.UpdatedAt = now
	m.persons[id] = p
	return &p, nil
}

func (m *MemoryRepository) DeletePerson(_ context.Context, id int64) error {
	lock := m.rowLock(id)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.persons[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.persons, id)
	delete(m.emails, p.Email)
	m.rowLocks.Delete(id)
	return nil
}
