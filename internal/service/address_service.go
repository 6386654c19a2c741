package service

import (
	"context"
	"errors"
	"fmt"

	"addressbook-api/internal/apperrors"
	"addressbook-api/internal/cache"
	"addressbook-api/internal/geocoder"
	"addressbook-api/internal/metrics"
	"addressbook-api/internal/models"
	"addressbook-api/internal/repository"
	"addressbook-api/internal/validation"

	"github.com/rs/zerolog/log"
)

// PersonStore is the record store the service depends on.
type PersonStore interface {
	ListPersons(ctx context.Context, skip, limit int) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.Person, error)
	CreatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	UpdatePerson(ctx context.Context, id int64, mutate func(*models.Person) error) (*models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// AddressService contains the business logic for the address book.
type AddressService struct {
	store     PersonStore
	resolver  geocoder.Resolver
	cache     cache.ListingCache
	validator *validation.Validator
	metrics   *metrics.Metrics
}

// NewAddressService wires the service.
func NewAddressService(store PersonStore, resolver geocoder.Resolver, listing cache.ListingCache, v *validation.Validator, m *metrics.Metrics) *AddressService {
	return &AddressService{
		store:     store,
		resolver:  resolver,
		cache:     listing,
		validator: v,
		metrics:   m,
	}
}

// List returns one page of persons. Results are served from the listing
// cache when present; writes do not invalidate it.
func (s *AddressService) List(ctx context.Context, skip, limit int) ([]models.Person, error) {
	if skip < 0 || limit < 0 {
		return nil, apperrors.Validation("skip and limit must not be negative", []apperrors.Violation{
			{Field: "skip,limit", Rule: "min", Message: "skip and limit must be zero or greater"},
		})
	}

	key := cache.Key{Skip: skip, Limit: limit}
	if persons, ok := s.cache.Get(ctx, key); ok {
		s.metrics.CacheHit()
		log.Info().Int("skip", skip).Int("limit", limit).Msg("listing cache hit")
		return persons, nil
	}
	s.metrics.CacheMiss()
	log.Info().Int("skip", skip).Int("limit", limit).Msg("listing cache miss")

	persons, err := s.store.ListPersons(ctx, skip, limit)
	if err != nil {
		return nil, apperrors.Storage("Internal Server Error", nil, err)
	}

	s.cache.Put(ctx, key, persons)
	return persons, nil
}

// Get returns one person by id.
func (s *AddressService) Get(ctx context.Context, id int64) (*models.Person, error) {
	p, err := s.store.GetPerson(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Address not found", id)
		}
		return nil, apperrors.Storage("Internal Server Error", id, err)
	}
	return p, nil
}

// Nearby returns every person within distanceKm of the point, inclusive.
func (s *AddressService) Nearby(ctx context.Context, lat, lon, distanceKm float64) ([]models.Person, error) {
	persons, err := s.store.FindNearby(ctx, lat, lon, distanceKm)
	if err != nil {
		return nil, apperrors.Storage("Internal Server Error", fmt.Sprintf("lat:%v, lon:%v, dist:%v", lat, lon, distanceKm), err)
	}
	log.Info().Int("count", len(persons)).Float64("distance_km", distanceKm).Msg("found nearby addresses")
	return persons, nil
}

// Create validates the request, geocodes the address once and stores the
// person and address together.
func (s *AddressService) Create(ctx context.Context, in models.PersonCreate) (*models.MutationResult, error) {
	result, err := s.create(ctx, in)
	s.metrics.ObserveMutation("create", err)
	return result, err
}

func (s *AddressService) create(ctx context.Context, in models.PersonCreate) (*models.MutationResult, error) {
	if err := s.validator.ValidateCreate(in); err != nil {
		return nil, err
	}

	coords, err := s.geocode(ctx, in.Address.Formatted(), in.Email)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreatePerson(ctx, models.Person{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Address: models.Address{
			City:      in.Address.City,
			Country:   in.Address.Country,
			Street:    in.Address.Street,
			Postal:    in.Address.Postal,
			Latitude:  coords.Latitude,
			Longitude: coords.Longitude,
		},
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.Conflict("Integrity error (possibly duplicate email)", in.Email, err)
		}
		return nil, apperrors.Storage("Internal Server Error", in.Email, err)
	}

	log.Info().Int64("person_id", created.ID).Int64("address_id", created.Address.ID).Msg("address created")
	return &models.MutationResult{
		Message:   "Address created successfully",
		PersonID:  created.ID,
		AddressID: created.Address.ID,
	}, nil
}

// Update applies the non-empty fields of in to the person under the store's
// row lock. When any address field is present, the merged address is
// geocoded again and both coordinates are replaced together.
func (s *AddressService) Update(ctx context.Context, id int64, in models.PersonUpdate) (*models.MutationResult, error) {
	result, err := s.update(ctx, id, in)
	s.metrics.ObserveMutation("update", err)
	return result, err
}

func (s *AddressService) update(ctx context.Context, id int64, in models.PersonUpdate) (*models.MutationResult, error) {
	if err := s.validator.ValidateUpdate(in); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePerson(ctx, id, func(p *models.Person) error {
		log.Info().Int64("person_id", id).Msg("updating address")
		mergePerson(p, in)

		if in.Address.IsEmpty() {
			return nil
		}
		coords, err := s.geocode(ctx, p.Address.Formatted(), id)
		if err != nil {
			return err
		}
		p.Address.Latitude = coords.Latitude
		p.Address.Longitude = coords.Longitude
		return nil
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NotFound("Person not found", id)
		case errors.Is(err, repository.ErrConflict):
			return nil, apperrors.Conflict("Integrity error (possibly duplicate email)", id, err)
		default:
			return nil, apperrors.Storage("Internal Server Error", id, err)
		}
	}

	return &models.MutationResult{
		Message:   "Address updated successfully",
		PersonID:  updated.ID,
		AddressID: updated.Address.ID,
	}, nil
}

// Delete removes the person and their address.
func (s *AddressService) Delete(ctx context.Context, id int64) error {
	err := s.delete(ctx, id)
	s.metrics.ObserveMutation("delete", err)
	return err
}

func (s *AddressService) delete(ctx context.Context, id int64) error {
	if err := s.store.DeletePerson(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Person not found", id)
		}
		return apperrors.Storage("Internal Server Error", id, err)
	}
	log.Info().Int64("person_id", id).Msg("address deleted")
	return nil
}

func (s *AddressService) geocode(ctx context.Context, address string, requestID any) (models.Coordinates, error) {
	coords, err := s.resolver.Resolve(ctx, address)
	if err != nil {
		if errors.Is(err, geocoder.ErrNoMatch) {
			return models.Coordinates{}, apperrors.Upstream("No location found for the given address", requestID, err)
		}
		return models.Coordinates{}, apperrors.Upstream("Geocoding service unavailable", requestID, err)
	}
	return coords, nil
}

// mergePerson copies every non-empty field of in onto p.
func mergePerson(p *models.Person, in models.PersonUpdate) {
	overwrite(&p.Name, in.Name)
	overwrite(&p.Email, in.Email)
	overwrite(&p.Phone, in.Phone)
	if in.Address == nil {
		return
	}
	overwrite(&p.Address.City, in.Address.City)
	overwrite(&p.Address.Country, in.Address.Country)
	overwrite(&p.Address.Street, in.Address.Street)
	overwrite(&p.Address.Postal, in.Address.Postal)
}

func overwrite(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
