package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/i474232898/cityweather/internal/weather"
)

func forecastServer(t *testing.T, temperature float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("current"); got != "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m" {
			t.Errorf("unexpected current fields: %s", got)
		}
		if got := q.Get("timezone"); got != "auto" {
			t.Errorf("expected timezone=auto, got %s", got)
		}
		if q.Get("latitude") == "" || q.Get("longitude") == "" {
			t.Error("latitude/longitude missing from request")
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"current":{"time":"2026-08-28T10:00","temperature_2m":%g,"relative_humidity_2m":64,"weather_code":61,"wind_speed_10m":11.3}}`, temperature)
	}))
}

func TestCurrentSuccess(t *testing.T) {
	srv := forecastServer(t, 18.7)
	defer srv.Close()

	c := NewForecastClient(newTestHTTPClient(), srv.URL)
	got, err := c.Current(context.Background(), 48.85, 2.35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Temperature != 19 {
		t.Errorf("temperature: got %d, want 19", got.Temperature)
	}
	if got.WeatherCode != 61 {
		t.Errorf("weather code: got %d, want 61", got.WeatherCode)
	}
	if got.Humidity != 64 {
		t.Errorf("humidity: got %d, want 64", got.Humidity)
	}
	if got.WindSpeed != 11.3 {
		t.Errorf("wind speed: got %f, want 11.3", got.WindSpeed)
	}
}

func TestCurrentTemperatureRounding(t *testing.T) {
	cases := []struct {
		raw  float64
		want int
	}{
		{21.4, 21},
		{21.5, 22},
		{-0.4, 0},
		{-0.5, -1},
		{0, 0},
	}

	for _, tc := range cases {
		srv := forecastServer(t, tc.raw)
		c := NewForecastClient(newTestHTTPClient(), srv.URL)
		got, err := c.Current(context.Background(), 0, 0)
		srv.Close()
		if err != nil {
			t.Fatalf("unexpected error for %g: %v", tc.raw, err)
		}
		if got.Temperature != tc.want {
			t.Errorf("rounding %g: got %d, want %d", tc.raw, got.Temperature, tc.want)
		}
	}
}

func TestCurrentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewForecastClient(newTestHTTPClient(), srv.URL)
	_, err := c.Current(context.Background(), 48.85, 2.35)
	if !errors.Is(err, weather.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCurrentMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewForecastClient(newTestHTTPClient(), srv.URL)
	_, err := c.Current(context.Background(), 48.85, 2.35)
	if !errors.Is(err, weather.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCurrentContextCancelled(t *testing.T) {
	srv := forecastServer(t, 20)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewForecastClient(newTestHTTPClient(), srv.URL)
	_, err := c.Current(ctx, 48.85, 2.35)
	if err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
