// Package kvstore provides ports.KeyValueStore backends for user preferences.
package kvstore

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements ports.KeyValueStore.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return value, nil
}

// Set implements ports.KeyValueStore.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Close implements ports.KeyValueStore.
func (s *MemoryStore) Close() error { return nil }

var _ ports.KeyValueStore = (*MemoryStore)(nil)
