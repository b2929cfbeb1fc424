package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/cityweather/internal/weather"
)

// DefaultGeocodingBaseURL is the production Open-Meteo geocoding endpoint.
const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingClient implements weather.Geocoder against the Open-Meteo
// geocoding API.
type GeocodingClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewGeocodingClient creates a GeocodingClient. An empty baseURL selects the
// production endpoint.
func NewGeocodingClient(client *http.Client, baseURL string) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	return &GeocodingClient{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo-geocoding"),
	}
}

// Geocode requests the single best match for the query in English and returns
// it verbatim. An empty result set yields weather.ErrNotFound.
func (c *GeocodingClient) Geocode(ctx context.Context, city string) (weather.GeocodeResult, error) {
	values := url.Values{}
	values.Set("name", city)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	resp, err := doGet(ctx, c.client, c.circuit, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()))
	if err != nil {
		return weather.GeocodeResult{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.GeocodeResult{}, fmt.Errorf("%w: decode geocoding response: %v", weather.ErrUnavailable, err)
	}

	if len(payload.Results) == 0 {
		return weather.GeocodeResult{}, weather.ErrNotFound
	}

	best := payload.Results[0]
	return weather.GeocodeResult{
		Name:      best.Name,
		Country:   best.Country,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}
