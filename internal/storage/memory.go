package storage

import (
	"context"
	"sync"
)

// MemoryStore is a non-durable SlotStore used in tests and throwaway runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryStore) Set(ctx context.Context, slot string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) SetMany(ctx context.Context, values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for slot, value := range values {
		m.slots[slot] = append([]byte(nil), value...)
	}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, slot)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
