package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS kv (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const upsertSQL = `INSERT INTO kv (name, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

const selectSQL = `SELECT value FROM kv WHERE name = ?`

const timeFormat = "2006-01-02T15:04:05Z"

// SQL is a Store backed by SQLite or PostgreSQL.
type SQL struct {
	db      *sql.DB
	backend Backend
}

// OpenSQL opens the database for the DSN and creates the kv table.
// For SQLite, it appends WAL mode and busy timeout pragmas.
func OpenSQL(dsn string) (*SQL, error) {
	backend := DetectBackend(dsn)

	var (
		db  *sql.DB
		err error
	)
	switch backend {
	case BackendPostgres:
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
	default:
		backend = BackendSQLite
		db, err = sql.Open("sqlite", dsn+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Debug().Str("backend", string(backend)).Msg("kv store opened")
	return &SQL{db: db, backend: backend}, nil
}

// Backend returns the SQL backend in use.
func (s *SQL) Backend() Backend {
	return s.backend
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, Rebind(s.backend, selectSQL), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	ts := time.Now().UTC().Format(timeFormat)
	if _, err := s.db.ExecContext(ctx, Rebind(s.backend, upsertSQL), key, value, ts); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// Rebind rewrites a query with `?` placeholders to use `$1, $2, ...` for PostgreSQL.
// For SQLite, it returns the query unchanged.
func Rebind(backend Backend, query string) string {
	if backend != BackendPostgres {
		return query
	}

	var out strings.Builder
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(n))
			n++
		} else {
			out.WriteByte(query[i])
		}
	}
	return out.String()
}
