// Package store persists inspection snapshots to SQLite. The engine itself
// is stateless; the store is an external collaborator the CLI feeds with the
// engine's structured output, so classification runs can be kept and diffed
// across toolchain versions.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// dbtx is the statement surface shared by *sql.DB and *sql.Tx, so the same
// insert and query helpers run inside or outside a transaction.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store is the SQLite data access layer for snapshot persistence.
type Store struct {
	db *sql.DB
	q  dbtx
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db, q: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside a single transaction, handing it a Store whose
// statements all execute on that transaction. An error from fn rolls the
// transaction back; otherwise it is committed.
func (s *Store) WithTx(fn func(*Store) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Migrate creates all tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS snapshots (
  id              TEXT PRIMARY KEY,
  namespace       TEXT NOT NULL,
  created_at      TIMESTAMP,
  total           INTEGER
);

CREATE TABLE IF NOT EXISTS entries (
  id              INTEGER PRIMARY KEY,
  snapshot_id     TEXT NOT NULL REFERENCES snapshots(id),
  name            TEXT NOT NULL,
  category        TEXT NOT NULL,
  type_name       TEXT,
  module          TEXT,
  callable        BOOLEAN,
  doc             TEXT,
  protocol_method TEXT,
  repr            TEXT,
  note            TEXT,
  public_count    INTEGER,
  special_count   INTEGER
);

CREATE TABLE IF NOT EXISTS entry_methods (
  id              INTEGER PRIMARY KEY,
  entry_id        INTEGER NOT NULL REFERENCES entries(id),
  name            TEXT NOT NULL,
  kind            TEXT NOT NULL CHECK (kind IN ('public', 'special'))
);

CREATE TABLE IF NOT EXISTS entry_supertypes (
  id              INTEGER PRIMARY KEY,
  entry_id        INTEGER NOT NULL REFERENCES entries(id),
  position        INTEGER NOT NULL,
  name            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_snapshot ON entries(snapshot_id, category, name);
CREATE INDEX IF NOT EXISTS idx_entry_methods_entry ON entry_methods(entry_id);
CREATE INDEX IF NOT EXISTS idx_entry_supertypes_entry ON entry_supertypes(entry_id, position);
`
