// Package sqlitestate persists signal values in an embedded SQLite database,
// for deployments that keep state on a shared volume where loose text files
// are easy to lose.
package sqlitestate

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS signals (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

type Option func(*Store)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = domain.DefaultConfig().State.SQLitePath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &domain.OpError{
				Op:   "state.mkdir",
				Kind: domain.KindState,
				Path: dir,
				Err:  err,
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "state.open",
			Kind: domain.KindState,
			Path: path,
			Err:  err,
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{
			Op:   "state.schema",
			Kind: domain.KindState,
			Path: path,
			Err:  err,
		}
	}

	s := &Store{
		db:   db,
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ ports.StateStore = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key domain.SignalKey) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM signals WHERE key = ?", string(key),
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &domain.OpError{
			Op:   "state.read",
			Kind: domain.KindState,
			Path: s.path,
			Err:  err,
		}
	}

	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key domain.SignalKey, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO signals (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		string(key), value, s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return &domain.OpError{
			Op:   "state.write",
			Kind: domain.KindState,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
