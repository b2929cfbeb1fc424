package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS favorite_location (
  id         TEXT PRIMARY KEY,
  owner_id   TEXT NOT NULL,
  city_name  TEXT NOT NULL,
  country    TEXT NOT NULL,
  lat        TEXT NOT NULL,
  lon        TEXT NOT NULL,
  nickname   TEXT,
  created_at TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_favorite_owner_city
  ON favorite_location(owner_id, city_name, country);
CREATE INDEX IF NOT EXISTS idx_favorite_owner_created
  ON favorite_location(owner_id, created_at);
`

const listSQL = `
SELECT id, owner_id, city_name, country, lat, lon, nickname, created_at
FROM favorite_location
WHERE owner_id = ?
ORDER BY created_at DESC, id DESC`

const insertSQL = `
INSERT INTO favorite_location (id, owner_id, city_name, country, lat, lon, nickname, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const deleteSQL = `
DELETE FROM favorite_location
WHERE id = ? AND owner_id = ?`

// createdAtLayout is a fixed-width UTC timestamp format. Unlike RFC3339Nano,
// which trims trailing zeros from the fraction, every value is the same
// length, so the lexicographic ORDER BY on the text column is chronological.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore is the sqlite-backed Store. Uniqueness and ownership are
// enforced by the database itself — the unique index on
// (owner_id, city_name, country) and the owner-scoped DELETE — never by
// check-then-act logic, so concurrent requests cannot race past them.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore ensures the favorites schema exists and returns the store.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure favorites schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List(ctx context.Context, ownerID string) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, listSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrPersistence, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close favorites rows", "error", err)
		}
	}()

	out := make([]Favorite, 0)
	for rows.Next() {
		var f Favorite
		var nickname sql.NullString
		var created string
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.CityName, &f.Country, &f.Lat, &f.Lon, &nickname, &created); err != nil {
			return nil, fmt.Errorf("%w: scan favorite: %v", ErrPersistence, err)
		}
		f.Nickname = nickname.String
		ts, err := time.Parse(createdAtLayout, created)
		if err != nil {
			return nil, fmt.Errorf("%w: parse created_at %q: %v", ErrPersistence, created, err)
		}
		f.CreatedAt = ts
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *SQLiteStore) Add(ctx context.Context, ownerID, cityName, country, lat, lon, nickname string) (Favorite, error) {
	if err := validateAdd(ownerID, cityName, country, lat, lon); err != nil {
		return Favorite{}, err
	}

	f := Favorite{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CityName:  cityName,
		Country:   country,
		Lat:       lat,
		Lon:       lon,
		Nickname:  nickname,
		CreatedAt: time.Now().UTC(),
	}

	var nick interface{}
	if nickname != "" {
		nick = nickname
	}

	_, err := s.db.ExecContext(ctx, insertSQL,
		f.ID, f.OwnerID, f.CityName, f.Country, f.Lat, f.Lon, nick,
		f.CreatedAt.Format(createdAtLayout))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return Favorite{}, fmt.Errorf("%w: %s, %s", ErrDuplicate, cityName, country)
		}
		return Favorite{}, fmt.Errorf("%w: insert: %v", ErrPersistence, err)
	}
	return f, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, deleteSQL, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("%w: delete: %v", ErrPersistence, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected: %v", ErrPersistence, err)
	}
	return n > 0, nil
}
