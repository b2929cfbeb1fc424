package weather

import (
	"context"
	"errors"
	"fmt"
)

// Service composes geocoding and forecast lookups into a single
// city-name-to-snapshot operation. It holds no state and persists nothing.
type Service struct {
	geocoder   Geocoder
	forecaster Forecaster
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, forecaster Forecaster) *Service {
	return &Service{
		geocoder:   geocoder,
		forecaster: forecaster,
	}
}

// Lookup resolves a city name to coordinates, then fetches current conditions
// for them. It returns ErrNotFound when the city cannot be resolved and
// ErrUnavailable when the city resolved but conditions could not be fetched;
// the forecaster is never called after a failed geocode.
func (s *Service) Lookup(ctx context.Context, city string) (Snapshot, error) {
	place, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("geocode %q: %w", city, err)
	}

	cond, err := s.forecaster.Current(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return Snapshot{}, fmt.Errorf("current conditions for %q: %w", place.Name, err)
	}

	return Snapshot{
		City:        place.Name,
		Country:     place.Country,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Temperature: cond.Temperature,
		Description: Describe(cond.WeatherCode),
		WeatherCode: cond.WeatherCode,
		Humidity:    cond.Humidity,
		WindSpeed:   cond.WindSpeed,
	}, nil
}
