package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/i474232898/cityweather/internal/weather"
)

func newTestHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func TestGeocodeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("name"); got != "Paris" {
			t.Errorf("expected name=Paris, got %s", got)
		}
		if got := q.Get("count"); got != "1" {
			t.Errorf("expected count=1, got %s", got)
		}
		if got := q.Get("language"); got != "en" {
			t.Errorf("expected language=en, got %s", got)
		}
		if got := q.Get("format"); got != "json" {
			t.Errorf("expected format=json, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"name":"Paris","country":"France","latitude":48.85341,"longitude":2.3488},
			{"name":"Paris","country":"United States","latitude":33.66094,"longitude":-95.55551}
		]}`))
	}))
	defer srv.Close()

	c := NewGeocodingClient(newTestHTTPClient(), srv.URL)
	got, err := c.Geocode(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the first (highest-confidence) candidate is used.
	if got.Name != "Paris" || got.Country != "France" {
		t.Errorf("place: got %s/%s, want Paris/France", got.Name, got.Country)
	}
	if got.Latitude != 48.85341 || got.Longitude != 2.3488 {
		t.Errorf("coordinates: got %f/%f", got.Latitude, got.Longitude)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	c := NewGeocodingClient(newTestHTTPClient(), srv.URL)
	_, err := c.Geocode(context.Background(), "Nowhereville")
	if !errors.Is(err, weather.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeocodeEmptyResultList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewGeocodingClient(newTestHTTPClient(), srv.URL)
	_, err := c.Geocode(context.Background(), "")
	if !errors.Is(err, weather.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGeocodingClient(newTestHTTPClient(), srv.URL)
	_, err := c.Geocode(context.Background(), "Paris")
	if !errors.Is(err, weather.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGeocodeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	c := NewGeocodingClient(newTestHTTPClient(), srv.URL)
	_, err := c.Geocode(context.Background(), "Paris")
	if !errors.Is(err, weather.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGeocodeMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":`))
	}))
	defer srv.Close()

	c := NewGeocodingClient(newTestHTTPClient(), srv.URL)
	_, err := c.Geocode(context.Background(), "Paris")
	if !errors.Is(err, weather.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
