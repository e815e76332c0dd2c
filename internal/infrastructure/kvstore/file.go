package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

const fileStoreVersion = "1.0"

// preferencesFile is the JSON document written by FileStore.
type preferencesFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists values to a JSON document between sessions.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// NewFileStore creates a FileStore and loads it from disk if present. A
// corrupt file starts the store empty instead of failing.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	// An unparsable document reads as empty; the next Set rewrites it.
	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.values = make(map[string]string)
		return nil
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

// Get implements ports.KeyValueStore. Values are read from the in-memory copy
// loaded at construction and updated by Set.
func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return value, nil
}

// Set implements ports.KeyValueStore and writes the file atomically.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// save must be called with mu held.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(preferencesFile{Version: fileStoreVersion, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Close implements ports.KeyValueStore.
func (s *FileStore) Close() error { return nil }

var _ ports.KeyValueStore = (*FileStore)(nil)
