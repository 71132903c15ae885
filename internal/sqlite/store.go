// Package sqlite implements the embedded SQLite store behind Stockpile:
// the versioned schema migrator, the asset and product repositories, the
// tycoon progression row, and the dashboard aggregates.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "stockpile.db"

// summaryTTL bounds how stale a cached dashboard summary may get; any
// write through the store invalidates it immediately anyway.
const summaryTTL = 30 * time.Second

// Store wraps a single SQLite database file. All components share this
// one handle and rely on SQLite's own serialization for write safety;
// there is no lock manager above it.
type Store struct {
	db      *sql.DB
	log     zerolog.Logger
	builder sq.StatementBuilderType
	summary *cache.Cache
}

// Open creates the data directory if needed, opens (or creates) the
// database file, applies pragmas, and brings the schema up to the
// compiled target version. A migration failure closes the handle and is
// returned to the caller; the store must not be used in that case.
func Open(dataDir string, log zerolog.Logger) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Per-connection pragmas only stick with a single pooled connection.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying pragma: %w", err)
		}
	}

	s := &Store{
		db:      db,
		log:     log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		summary: cache.New(summaryTTL, time.Minute),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
