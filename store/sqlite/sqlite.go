/*
Package sqlite provides the SQLite-backed record store.

PURPOSE:
  Production persistence for a single-building deployment. All four record
  collections share one flat table; the typed shape of each record lives in
  a JSON field column, which keeps the schema stable as checklist shapes
  evolve.

KEY TABLE:
  records:
    id           TEXT  record identity (uuid, assigned on append)
    collection   TEXT  complaints | cleaning | maintenance | security
    record_ts    TEXT  submission timestamp (date or RFC3339, sorts lexically)
    validated    INTEGER
    fields_json  TEXT  flat field map
    created_at   TEXT  insertion time with nanosecond precision, tie-break for listing

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's own locking.
  Concurrent patches resolve last-write-wins.

USAGE:
  store, err := sqlite.New("./facility.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For a larger deployment, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - record/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/digimons/facility-engine/record"
)

// Store implements record.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		record_ts TEXT NOT NULL,
		validated INTEGER NOT NULL DEFAULT 0,
		fields_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Listing hot path: per-collection, most recent first
	CREATE INDEX IF NOT EXISTS idx_records_collection_ts
		ON records(collection, record_ts DESC, created_at DESC);

	-- Recap queries filter on validation state
	CREATE INDEX IF NOT EXISTS idx_records_collection_validated
		ON records(collection, validated);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RECORD STORE (record.Store interface)
// =============================================================================

// List returns every record in the collection, most recent first. Ties on
// the record timestamp fall back to insertion order, newest first.
func (s *Store) List(ctx context.Context, c record.Collection) ([]record.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, record_ts, validated, fields_json
		FROM records
		WHERE collection = ?
		ORDER BY record_ts DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, string(c))
	if err != nil {
		return nil, &record.StoreError{Op: "list", Cause: err}
	}
	defer rows.Close()

	var envs []record.Envelope
	for rows.Next() {
		env, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	if err := rows.Err(); err != nil {
		return nil, &record.StoreError{Op: "list", Cause: err}
	}
	return envs, nil
}

// Append persists a new record under a fresh uuid.
func (s *Store) Append(ctx context.Context, c record.Collection, env record.Envelope) (record.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env.ID = uuid.NewString()
	fieldsJSON, err := json.Marshal(env.Fields)
	if err != nil {
		return record.Envelope{}, &record.StoreError{Op: "append", Cause: err}
	}

	query := `
		INSERT INTO records (id, collection, record_ts, validated, fields_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		env.ID,
		string(c),
		env.Timestamp,
		boolToInt(env.Validated),
		string(fieldsJSON),
		time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00"),
	)
	if err != nil {
		return record.Envelope{}, &record.StoreError{Op: "append", Cause: err}
	}
	return env, nil
}

// Patch merges fields into the stored record. The merge happens in Go
// rather than with json_patch so the reserved validation key is handled
// uniformly with the memory store.
func (s *Store) Patch(ctx context.Context, c record.Collection, id string, fields record.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT validated, fields_json FROM records WHERE collection = ? AND id = ?",
		string(c), id,
	)

	var validated int
	var fieldsJSON string
	err := row.Scan(&validated, &fieldsJSON)
	if err == sql.ErrNoRows {
		return &record.NotFoundError{Collection: c, ID: id}
	}
	if err != nil {
		return &record.StoreError{Op: "patch", Cause: err}
	}

	stored, err := parseFields(fieldsJSON)
	if err != nil {
		return &record.StoreError{Op: "patch", Cause: err}
	}
	for k, v := range fields {
		if k == record.FieldValidated {
			if b, ok := v.(bool); ok {
				validated = boolToInt(b)
			}
			continue
		}
		stored[k] = v
	}

	merged, err := json.Marshal(stored)
	if err != nil {
		return &record.StoreError{Op: "patch", Cause: err}
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE records SET validated = ?, fields_json = ? WHERE collection = ? AND id = ?",
		validated, string(merged), string(c), id,
	)
	if err != nil {
		return &record.StoreError{Op: "patch", Cause: err}
	}
	return nil
}

// Delete removes the record entirely.
func (s *Store) Delete(ctx context.Context, c record.Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE collection = ? AND id = ?",
		string(c), id,
	)
	if err != nil {
		return &record.StoreError{Op: "delete", Cause: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &record.StoreError{Op: "delete", Cause: err}
	}
	if affected == 0 {
		return &record.NotFoundError{Collection: c, ID: id}
	}
	return nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM records")
	if err != nil {
		return &record.StoreError{Op: "reset", Cause: err}
	}
	return nil
}

func scanRecord(rows *sql.Rows) (record.Envelope, error) {
	var env record.Envelope
	var validated int
	var fieldsJSON string

	if err := rows.Scan(&env.ID, &env.Timestamp, &validated, &fieldsJSON); err != nil {
		return env, &record.StoreError{Op: "scan", Cause: err}
	}

	env.Validated = validated != 0
	fields, err := parseFields(fieldsJSON)
	if err != nil {
		return env, &record.StoreError{Op: "scan", Cause: err}
	}
	env.Fields = fields
	return env, nil
}

// parseFields decodes with UseNumber so decimal amounts survive the round
// trip without float conversion.
func parseFields(raw string) (record.Fields, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	fields := record.Fields{}
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
