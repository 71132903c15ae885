package sqlite

import (
	"database/sql"
	"fmt"
)

// schemaVersion is the schema version this build expects. Bump it when
// appending a migration.
const schemaVersion = 3

// A migration brings a database known to be at version-1 up to version.
// Steps are fixed, hardcoded schema changes; they are never computed
// from data. Append only — released steps must not change.
type migration struct {
	version int
	name    string
	apply   func(*sql.Tx) error
}

var migrations = []migration{
	{1, "asset register and settings", migrateV1},
	{2, "products and sales ledger", migrateV2},
	{3, "tycoon progression", migrateV3},
}

// migrate brings the database file up to schemaVersion, applying each
// pending step exactly once in order. Every step runs in its own
// transaction together with its user_version bump, so an interrupted run
// leaves the database at the last fully-applied version and the next
// open resumes from there.
func (s *Store) migrate() error {
	current, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	if current >= schemaVersion {
		s.log.Debug().Int("version", current).Msg("schema up to date")
		return nil
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", m.version, err)
		}
		if err := m.apply(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d (%s): %w", m.version, m.name, err)
		}
		// user_version lives in the database header and is transactional:
		// the step and its watermark commit or roll back together.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d;", m.version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", m.version, err)
		}

		s.log.Info().Int("version", m.version).Str("step", m.name).Msg("applied schema migration")
	}

	return nil
}

// SchemaVersion reads the persisted user_version watermark. A fresh
// database reports 0.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	if err := s.db.QueryRow("PRAGMA user_version;").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading user_version: %w", err)
	}
	return v, nil
}

// migrateV1 creates the asset register and settings tables and seeds the
// demo fleet on an empty register.
func migrateV1(tx *sql.Tx) error {
	for _, ddl := range []string{createAssets, createSettings, idxAssetsStatus, idxAssetsCategory} {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	return seedDemoAssets(tx)
}

// migrateV2 adds the validation timestamp column and creates the product
// and transactions tables.
func migrateV2(tx *sql.Tx) error {
	for _, ddl := range []string{alterAssetsLastValidated, createProducts, createTransactions, idxTransactionsType} {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// migrateV3 creates the tycoon_stats table and seeds the singleton row.
func migrateV3(tx *sql.Tx) error {
	if _, err := tx.Exec(createTycoonStats); err != nil {
		return err
	}
	return seedTycoonStats(tx)
}

// seedDemoAssets inserts the starter fleet. Guarded by a row count so a
// repeated step (or a database that already has assets) is never
// double-seeded.
func seedDemoAssets(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM assets").Scan(&count); err != nil {
		return fmt.Errorf("counting assets: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := tx.Exec(`INSERT INTO assets (name, asset_tag, category, location, cost, status, purchase_date) VALUES
    ('Dell XPS 15', 'TAG-001', 'Laptops', 'Office 101', 1500.00, 'Active', datetime('now', '-30 days')),
    ('Herman Miller Chair', 'TAG-002', 'Furniture', 'Office 101', 800.00, 'Active', datetime('now', '-60 days')),
    ('Projector 4K', 'TAG-003', 'Electronics', 'Conf Room A', 1200.00, 'In Repair', datetime('now', '-10 days'));`)
	if err != nil {
		return fmt.Errorf("seeding demo assets: %w", err)
	}
	return nil
}

// seedTycoonStats inserts the singleton progression row with starting
// values, guarded by a row count.
func seedTycoonStats(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM tycoon_stats").Scan(&count); err != nil {
		return fmt.Errorf("counting tycoon_stats: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := tx.Exec(
		"INSERT INTO tycoon_stats (id, level, xp, total_revenue, satisfaction_rate, reputation_score, employees_count, days_active) VALUES (1, 1, 0, 0, 100, 50, 0, 1)",
	)
	if err != nil {
		return fmt.Errorf("seeding tycoon_stats: %w", err)
	}
	return nil
}
