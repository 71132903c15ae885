package sqlite

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpile-hq/stockpile/pkg/types"
)

// newTestStore opens a store on a fresh temp directory with logging
// disabled. The fully migrated schema includes the demo asset seed and
// the tycoon_stats singleton.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSettings_Roundtrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Setting("theme")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, s.SetSetting("theme", "neon"))
	v, err := s.Setting("theme")
	require.NoError(t, err)
	assert.Equal(t, "neon", v)

	// Upsert overwrites in place.
	require.NoError(t, s.SetSetting("theme", "glass"))
	v, err = s.Setting("theme")
	require.NoError(t, err)
	assert.Equal(t, "glass", v)
}

func TestDashboardSummary(t *testing.T) {
	s := newTestStore(t)

	sum, err := s.DashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Assets, "demo seed")
	assert.Equal(t, 0, sum.Products)
	assert.Zero(t, sum.TotalSales)
	assert.InDelta(t, 3500.0, sum.FleetValue, 1e-6)

	p := &types.Product{Name: "Neon Sign", Price: 250, Stock: 4}
	require.NoError(t, s.CreateProduct(p))
	_, err = s.Sell(p.ID, 2)
	require.NoError(t, err)

	// The sale invalidated the cached summary.
	sum, err = s.DashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Products)
	assert.InDelta(t, 500.0, sum.TotalSales, 1e-6)
}

func TestClose_Idempotent(t *testing.T) {
	s, err := Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
