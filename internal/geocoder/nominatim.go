package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"addressbook-api/internal/models"
)

// DefaultNominatimURL is the public OpenStreetMap Nominatim endpoint.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// nominatimResponse is the subset of the /search answer we read.
type nominatimResponse []struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Nominatim resolves addresses with an OpenStreetMap Nominatim server.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatim builds a Nominatim geocoder. Nominatim's usage policy requires
// an identifying User-Agent.
func NewNominatim(baseURL, userAgent string, client *http.Client) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Nominatim{baseURL: baseURL, userAgent: userAgent, client: client}
}

func (n *Nominatim) Resolve(ctx context.Context, address string) (models.Coordinates, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", n.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Coordinates{}, providerError("nominatim", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return models.Coordinates{}, providerError("nominatim", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, providerError("nominatim", fmt.Errorf("unexpected status: %s", resp.Status))
	}

	var results nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinates{}, providerError("nominatim", err)
	}
	if len(results) == 0 {
		return models.Coordinates{}, fmt.Errorf("%w: %q", ErrNoMatch, address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinates{}, providerError("nominatim", fmt.Errorf("invalid latitude %q", results[0].Lat))
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinates{}, providerError("nominatim", fmt.Errorf("invalid longitude %q", results[0].Lon))
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
