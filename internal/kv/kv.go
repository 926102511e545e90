// Package kv provides the key-value persistence used for the active city list.
//
// Backends are chosen from a DSN:
//
//	memory:                  in-process map
//	redis://host:6379/0      Redis
//	postgres://...           PostgreSQL
//	/path/to/worldclock.db   SQLite (anything else)
package kv

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// Store is a string key-value store. Set overwrites any previous value.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend identifies the storage backend behind a DSN.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// DetectBackend returns the backend for the DSN string.
func DetectBackend(dsn string) Backend {
	lower := strings.ToLower(dsn)
	switch {
	case lower == "memory:" || lower == "memory":
		return BackendMemory
	case strings.HasPrefix(lower, "redis://"), strings.HasPrefix(lower, "rediss://"):
		return BackendRedis
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// Open returns a Store for the given DSN.
func Open(dsn string) (Store, error) {
	switch DetectBackend(dsn) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return OpenRedis(dsn)
	default:
		return OpenSQL(dsn)
	}
}
