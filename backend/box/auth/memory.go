package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps token records in process memory. Suitable for tests and
// short-lived tools; production deployments should use SQLiteStore.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	recs   []TokenRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Latest implements Store.
func (m *MemoryStore) Latest(_ context.Context, userKey string) (*TokenRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *TokenRecord
	for i := range m.recs {
		r := &m.recs[i]
		if r.UserKey != userKey {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) ||
			(r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
			latest = r
		}
	}
	if latest == nil {
		return nil, nil
	}

	cp := *latest
	return &cp, nil
}

// Insert implements Store.
func (m *MemoryStore) Insert(_ context.Context, rec *TokenRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.nextID
	m.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	m.recs = append(m.recs, *rec)

	return nil
}

// Update implements Store.
func (m *MemoryStore) Update(_ context.Context, rec *TokenRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recs {
		if m.recs[i].ID == rec.ID {
			if rec.UpdatedAt.IsZero() {
				rec.UpdatedAt = time.Now()
			}
			m.recs[i] = *rec
			return nil
		}
	}

	return errRecordNotFound
}
