package kvstore

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// Backend selects a KeyValueStore implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Backends lists every supported backend.
func Backends() []Backend {
	return []Backend{BackendMemory, BackendFile, BackendSQLite, BackendRedis}
}

// Settings chooses and locates a backend.
type Settings struct {
	Backend   Backend
	Path      string
	RedisAddr string
}

// Open constructs the store described by settings.
func Open(ctx context.Context, settings Settings) (ports.KeyValueStore, error) {
	switch settings.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(settings.Path)
	case BackendSQLite:
		return NewSQLiteStore(settings.Path)
	case BackendRedis:
		return DialRedis(ctx, settings.RedisAddr)
	default:
		return nil, fmt.Errorf("unsupported preferences backend %q", settings.Backend)
	}
}
