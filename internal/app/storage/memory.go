package storage

import "sync"

// MemStore is an in-memory Store used by tests and as a fallback when no
// state directory is available. Safe for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		values: make(map[string]string),
	}
}

// Read returns the stored value for key and whether it was present.
func (m *MemStore) Read(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

// Write stores value for key.
func (m *MemStore) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete removes the value for key.
func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
