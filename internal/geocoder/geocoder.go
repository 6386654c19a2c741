// Package geocoder turns a free-text address into coordinates through an
// external provider.
package geocoder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"addressbook-api/internal/metrics"
	"addressbook-api/internal/models"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoMatch means the provider answered but found no location for the address.
	ErrNoMatch = errors.New("geocoder: no match for address")
	// ErrProvider means the provider could not be reached or sent an unusable answer.
	ErrProvider = errors.New("geocoder: provider failure")
)

// Resolver resolves an address string to coordinates. Implementations return
// an error wrapping ErrNoMatch or ErrProvider and never retry.
type Resolver interface {
	Resolve(ctx context.Context, address string) (models.Coordinates, error)
}

func providerError(provider string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrProvider, provider, err)
}

// Instrumented wraps a Resolver with logging and metrics.
type Instrumented struct {
	next     Resolver
	provider string
	metrics  *metrics.Metrics
}

// NewInstrumented wraps next, labelling observations with provider.
func NewInstrumented(next Resolver, provider string, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, provider: provider, metrics: m}
}

func (i *Instrumented) Resolve(ctx context.Context, address string) (models.Coordinates, error) {
	start := time.Now()
	coords, err := i.next.Resolve(ctx, address)
	elapsed := time.Since(start)

	outcome := "ok"
	switch {
	case errors.Is(err, ErrNoMatch):
		outcome = "no_match"
	case err != nil:
		outcome = "error"
	}
	i.metrics.ObserveGeocode(i.provider, outcome, elapsed.Seconds())

	if err != nil {
		log.Error().Err(err).Str("provider", i.provider).Str("address", address).Msg("geocoding failed")
		return models.Coordinates{}, err
	}

	log.Info().
		Str("provider", i.provider).
		Str("address", address).
		Float64("latitude", coords.Latitude).
		Float64("longitude", coords.Longitude).
		Dur("elapsed", elapsed).
		Msg("geocoded address")
	return coords, nil
}
