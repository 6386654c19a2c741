package geocoder

import (
	"context"
	"fmt"
	"net/http"

	"addressbook-api/internal/models"

	"googlemaps.github.io/maps"
)

// Google resolves addresses with the Google Maps Geocoding API.
type Google struct {
	client *maps.Client
}

// NewGoogle builds a Google geocoder. baseURL may be empty to use the public
// endpoint; httpClient may be nil.
func NewGoogle(apiKey, baseURL string, httpClient *http.Client) (*Google, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, maps.WithHTTPClient(httpClient))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to create google maps client: %w", err)
	}
	return &Google{client: client}, nil
}

// Resolve returns the location of the first geocoding result.
func (g *Google) Resolve(ctx context.Context, address string) (models.Coordinates, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return models.Coordinates{}, providerError("google", err)
	}
	if len(results) == 0 {
		return models.Coordinates{}, fmt.Errorf("%w: %q", ErrNoMatch, address)
	}

	loc := results[0].Geometry.Location
	return models.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
