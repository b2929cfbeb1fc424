package favorites

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a concurrency-safe in-memory Store. It mirrors the sqlite
// store's contract — the duplicate check and insert happen under one lock, the
// process-local equivalent of the database constraint — and is used by tests
// and by deployments that do not need durable favorites.
type MemoryStore struct {
	mu sync.RWMutex

	// key: owner id, value: that owner's favorites in insertion order
	rows map[string][]Favorite
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rows: make(map[string][]Favorite),
	}
}

func (m *MemoryStore) List(ctx context.Context, ownerID string) ([]Favorite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.rows[ownerID]
	out := make([]Favorite, len(src))
	copy(out, src)

	// Newest first; id breaks timestamp ties so repeated listings agree.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) Add(ctx context.Context, ownerID, cityName, country, lat, lon, nickname string) (Favorite, error) {
	if err := validateAdd(ownerID, cityName, country, lat, lon); err != nil {
		return Favorite{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.rows[ownerID] {
		if f.CityName == cityName && f.Country == country {
			return Favorite{}, fmt.Errorf("%w: %s, %s", ErrDuplicate, cityName, country)
		}
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
	m.rows[ownerID] = append(m.rows[ownerID], f)
	return f, nil
}

func (m *MemoryStore) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.rows[ownerID]
	for i, f := range rows {
		if f.ID == id {
			m.rows[ownerID] = append(rows[:i], rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
