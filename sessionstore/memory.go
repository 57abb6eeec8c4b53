package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps encoded records in a map, so callers never share state
// with the store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (m *MemoryStore) Create(_ context.Context, rec *Record) error {
	prepare(rec)
	b, err := encode(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = b
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	m.mu.Lock()
	b, ok := m.records[id]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrSessionNotFound, id)
	}
	return decode(b)
}

func (m *MemoryStore) Save(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(rec)
}

func (m *MemoryStore) save(rec *Record) error {
	if _, ok := m.records[rec.ID]; !ok {
		return fmt.Errorf("%w: '%s'", ErrSessionNotFound, rec.ID)
	}
	rec.UpdatedAt = time.Now().UTC()
	b, err := encode(rec)
	if err != nil {
		return err
	}
	m.records[rec.ID] = b
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("%w: '%s'", ErrSessionNotFound, id)
	}
	delete(m.records, id)
	return nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fn func(rec *Record) error) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrSessionNotFound, id)
	}
	rec, err := decode(b)
	if err != nil {
		return nil, err
	}
	if err := fn(rec); err != nil {
		return nil, err
	}
	if err := m.save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
