package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"edumarket/backend/engine"
)

// MemoryStore keeps values in process memory. It backs tests and the
// demo mode; contents do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte // user id -> key -> JSON
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]map[string][]byte{}}
}

func (m *MemoryStore) Get(_ context.Context, userID, key string, dest any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[userID][key]
	if !ok {
		return fmt.Errorf("%w: key %q", engine.ErrNotFound, key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrPersistenceCorrupt, key, err)
	}
	return nil
}

func (m *MemoryStore) Set(_ context.Context, userID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrValidation, key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[userID] == nil {
		m.data[userID] = map[string][]byte{}
	}
	m.data[userID][key] = raw
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[userID], key)
	return nil
}
