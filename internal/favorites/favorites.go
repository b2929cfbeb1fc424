// Package favorites owns persisted favorite locations scoped to an owning
// account.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDuplicate is returned when the owner already has a favorite for the
	// same city and country.
	ErrDuplicate = errors.New("favorite already exists")

	// ErrValidation is returned when a required field is empty on add.
	ErrValidation = errors.New("missing required field")

	// ErrPersistence wraps storage failures other than constraint violations.
	ErrPersistence = errors.New("favorites storage failure")
)

// Favorite is a persisted favorite location owned by a single account.
// Coordinates are kept as the decimal strings the caller supplied so they
// survive add/list round-trips without float drift.
type Favorite struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	CityName  string    `json:"cityName"`
	Country   string    `json:"country"`
	Lat       string    `json:"lat"`
	Lon       string    `json:"lon"`
	Nickname  string    `json:"nickname,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the contract every favorites backend must satisfy. All operations
// are scoped by an explicit owner id supplied by the caller; the store never
// infers identity. A single owner can hold at most one favorite per
// (city, country) pair, and rows are visible and deletable only to their
// owner.
type Store interface {
	// List returns the owner's favorites, newest first. Unknown owners get an
	// empty slice, not an error.
	List(ctx context.Context, ownerID string) ([]Favorite, error)

	// Add creates one favorite with a generated id and creation time. It
	// returns ErrValidation for empty required fields and ErrDuplicate when
	// the owner already saved this city.
	Add(ctx context.Context, ownerID, cityName, country, lat, lon, nickname string) (Favorite, error)

	// Delete removes the row matching both id and owner. It reports false,
	// without error, when nothing matched; a missing row and a row owned by
	// someone else are indistinguishable to the caller.
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}

// validateAdd checks the required fields of an add request. Nickname is
// optional and not checked.
func validateAdd(ownerID, cityName, country, lat, lon string) error {
	required := []struct {
		name, value string
	}{
		{"ownerId", ownerID},
		{"cityName", cityName},
		{"country", country},
		{"lat", lat},
		{"lon", lon},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrValidation, f.name)
		}
	}
	return nil
}
