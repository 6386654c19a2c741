package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"addressbook-api/internal/geo"
	"addressbook-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// store is the contract shared by Repository and MemoryRepository.
type store interface {
	ListPersons(ctx context.Context, skip, limit int) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.Person, error)
	CreatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	UpdatePerson(ctx context.Context, id int64, mutate func(*models.Person) error) (*models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

func newPerson(name, email string, lat, lon float64) models.Person {
	return models.Person{
		Name:  name,
		Email: email,
		Phone: "09123456789",
		Address: models.Address{
			Street:    "1 Narra St",
			City:      "Quezon City",
			Country:   "Philippines",
			Postal:    "1100",
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

// runStoreContract exercises a store. newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) store) {
	ctx := context.Background()

	t.Run("create then get round-trips", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 14.676, 121.0437))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.NotZero(t, created.Address.ID)
		assert.Equal(t, created.ID, created.Address.PersonID)

		got, err := s.GetPerson(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "jane@x.com", got.Email)
		assert.Equal(t, "09123456789", got.Phone)
		assert.Equal(t, "Quezon City", got.Address.City)
		assert.Equal(t, "1100", got.Address.Postal)
		assert.Equal(t, 14.676, got.Address.Latitude)
		assert.Equal(t, 121.0437, got.Address.Longitude)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get missing person", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetPerson(ctx, 4242)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s := newStore(t)
		first, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 1, 1))
		require.NoError(t, err)

		_, err = s.CreatePerson(ctx, newPerson("Jane Other", "jane@x.com", 2, 2))
		assert.ErrorIs(t, err, ErrConflict)

		all, err := s.ListPersons(ctx, 0, 100)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, first.ID, all[0].ID)
	})

	t.Run("list paginates in insertion order", func(t *testing.T) {
		s := newStore(t)
		for i := 0; i < 5; i++ {
			_, err := s.CreatePerson(ctx, newPerson("Person", fmt.Sprintf("p%d@x.com", i), 0, 0))
			require.NoError(t, err)
		}

		page, err := s.ListPersons(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "p1@x.com", page[0].Email)
		assert.Equal(t, "p2@x.com", page[1].Email)

		empty, err := s.ListPersons(ctx, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, empty)

		past, err := s.ListPersons(ctx, 10, 10)
		require.NoError(t, err)
		assert.Empty(t, past)
	})

	t.Run("update applies mutation", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 1, 1))
		require.NoError(t, err)

		updated, err := s.UpdatePerson(ctx, created.ID, func(p *models.Person) error {
			p.Phone = "09998887777"
			p.Address.City = "Makati"
			p.Address.Latitude, p.Address.Longitude = 14.55, 121.02
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "09998887777", updated.Phone)

		got, err := s.GetPerson(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "09998887777", got.Phone)
		assert.Equal(t, "Makati", got.Address.City)
		assert.Equal(t, 14.55, got.Address.Latitude)
		assert.Equal(t, 121.02, got.Address.Longitude)
	})

	t.Run("update mutation error rolls back", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 1, 1))
		require.NoError(t, err)

		boom := errors.New("geocoder down")
		_, err = s.UpdatePerson(ctx, created.ID, func(p *models.Person) error {
			p.Name = "Changed"
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.GetPerson(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
	})

	t.Run("update to taken email conflicts", func(t *testing.T) {
		s := newStore(t)
		_, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 1, 1))
		require.NoError(t, err)
		john, err := s.CreatePerson(ctx, newPerson("John Doe", "john@x.com", 1, 1))
		require.NoError(t, err)

		_, err = s.UpdatePerson(ctx, john.ID, func(p *models.Person) error {
			p.Email = "jane@x.com"
			return nil
		})
		assert.ErrorIs(t, err, ErrConflict)

		got, err := s.GetPerson(ctx, john.ID)
		require.NoError(t, err)
		assert.Equal(t, "john@x.com", got.Email)
	})

	t.Run("update missing person", func(t *testing.T) {
		s := newStore(t)
		called := false
		_, err := s.UpdatePerson(ctx, 4242, func(*models.Person) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, called)
	})

	t.Run("concurrent updates of one person serialize", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 0, 0))
		require.NoError(t, err)

		const workers = 20
		var wg sync.WaitGroup
		for i := 1; i <= workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.UpdatePerson(ctx, created.ID, func(p *models.Person) error {
					// read-modify-write: lost updates would leave the counter short
					p.Address.Latitude++
					p.Address.Longitude = float64(i)
					p.Address.Postal = fmt.Sprintf("%04d", i)
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		got, err := s.GetPerson(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(workers), got.Address.Latitude)
		assert.Equal(t, fmt.Sprintf("%04d", int(got.Address.Longitude)), got.Address.Postal,
			"postal and longitude must come from the same update")
	})

	t.Run("delete removes person", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 1, 1))
		require.NoError(t, err)

		require.NoError(t, s.DeletePerson(ctx, created.ID))

		_, err = s.GetPerson(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeletePerson(ctx, created.ID), ErrNotFound)

		_, err = s.CreatePerson(ctx, newPerson("Jane Again", "jane@x.com", 1, 1))
		assert.NoError(t, err, "email is free again after delete")
	})

	t.Run("update after concurrent delete sees not found", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePerson(ctx, newPerson("Jane Doe", "jane@x.com", 1, 1))
		require.NoError(t, err)

		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error)
		go func() {
			_, err := s.UpdatePerson(ctx, created.ID, func(p *models.Person) error {
				close(entered)
				<-release
				p.Name = "Updated"
				return nil
			})
			done <- err
		}()

		<-entered
		deleted := make(chan error)
		go func() { deleted <- s.DeletePerson(ctx, created.ID) }()
		close(release)

		require.NoError(t, <-done)
		require.NoError(t, <-deleted)

		_, err = s.UpdatePerson(ctx, created.ID, func(*models.Person) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nearby includes boundary", func(t *testing.T) {
		s := newStore(t)
		centerLat, centerLon := 14.5995, 120.9842
		near, err := s.CreatePerson(ctx, newPerson("Near", "near@x.com", 14.676, 121.0437))
		require.NoError(t, err)
		_, err = s.CreatePerson(ctx, newPerson("Far", "far@x.com", 35.681236, 139.767125))
		require.NoError(t, err)

		boundary := geo.GreatCircleDistanceKm(14.676, 121.0437, centerLat, centerLon)

		found, err := s.FindNearby(ctx, centerLat, centerLon, boundary+1e-9)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, near.ID, found[0].ID)

		none, err := s.FindNearby(ctx, centerLat, centerLon, boundary-0.01)
		require.NoError(t, err)
		assert.Empty(t, none)

		all, err := s.FindNearby(ctx, centerLat, centerLon, 5000)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
