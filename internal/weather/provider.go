package weather

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a city query matches no known place.
	ErrNotFound = errors.New("city not found")

	// ErrUnavailable is returned when an upstream service could not deliver
	// usable data (transport failure or malformed payload).
	ErrUnavailable = errors.New("weather data unavailable")
)

// Geocoder resolves a free-text city name to its best matching place.
type Geocoder interface {
	Geocode(ctx context.Context, city string) (GeocodeResult, error)
}

// Forecaster fetches current conditions for a coordinate pair.
type Forecaster interface {
	Current(ctx context.Context, lat, lon float64) (CurrentConditions, error)
}
