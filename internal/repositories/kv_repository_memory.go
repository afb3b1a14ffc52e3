package repositories

import (
	"context"
	"sync"
)

// MemoryKVRepository is an in-process KVRepository for tests and for running
// without a database.
type MemoryKVRepository struct {
	mu   sync.RWMutex
	data map[string][]byte

	ForceError error
}

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{data: make(map[string][]byte)}
}

func (m *MemoryKVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.ForceError != nil {
		return nil, false, m.ForceError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryKVRepository) Set(ctx context.Context, key string, value []byte) error {
	if m.ForceError != nil {
		return m.ForceError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}
