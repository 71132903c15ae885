package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableNames(t *testing.T, db *sql.DB) map[string]bool {
	t.Helper()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	require.NoError(t, err)
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	return names
}

func TestMigrate_FreshDatabase(t *testing.T) {
	s := newTestStore(t)

	v, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, v)

	names := tableNames(t, s.db)
	for _, want := range []string{"assets", "settings", "products", "transactions", "tycoon_stats"} {
		assert.Truef(t, names[want], "table %s missing", want)
	}

	var assets int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&assets))
	assert.Equal(t, 3, assets, "demo fleet seeded once")

	st, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Level)
	assert.Zero(t, st.XP)
	assert.Zero(t, st.TotalRevenue)
}

// Running the migrator again on a fully migrated database must be a
// no-op: same version, no error, no duplicate seeds.
func TestMigrate_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.migrate())
	require.NoError(t, s.migrate())

	v, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, v)

	var assets, stats int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&assets))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tycoon_stats").Scan(&stats))
	assert.Equal(t, 3, assets)
	assert.Equal(t, 1, stats)
}

// A database stopped at an intermediate version resumes at the next
// step without re-running completed ones or re-seeding their data.
func TestMigrate_ResumesFromIntermediateVersion(t *testing.T) {
	dataDir := t.TempDir()

	// Hand-apply version 1 only, the way an older release would have
	// left the file.
	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	require.NoError(t, err)
	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, migrateV1(tx))
	_, err = tx.Exec("PRAGMA user_version = 1;")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// Mark one seeded asset so we can prove v1 did not re-run.
	_, err = db.Exec("UPDATE assets SET location = 'Archive' WHERE asset_tag = 'TAG-001'")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(dataDir, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	v, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, v)

	var assets int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&assets))
	assert.Equal(t, 3, assets, "v1 seed must not repeat")

	var location string
	require.NoError(t, s.db.QueryRow(
		"SELECT location FROM assets WHERE asset_tag = 'TAG-001'").Scan(&location))
	assert.Equal(t, "Archive", location, "existing data survives the upgrade")

	// The steps v2 and v3 did run.
	names := tableNames(t, s.db)
	assert.True(t, names["products"])
	assert.True(t, names["tycoon_stats"])
	_, err = s.LoadStats()
	assert.NoError(t, err)
}

func TestMigrate_ReopenPreservesData(t *testing.T) {
	dataDir := t.TempDir()

	s, err := Open(dataDir, zerolog.Nop())
	require.NoError(t, err)
	_, err = s.AddXP(2500)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(dataDir, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	st, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 1500, st.XP)

	var assets int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&assets))
	assert.Equal(t, 3, assets, "seed guard holds across reopens")
}
