package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpile-hq/stockpile/pkg/tycoon"
	"github.com/stockpile-hq/stockpile/pkg/types"
)

func TestLoadStats_SeededDefaults(t *testing.T) {
	s := newTestStore(t)

	st, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Level)
	assert.Zero(t, st.XP)
	assert.Zero(t, st.TotalRevenue)
	assert.Equal(t, 100, st.Satisfaction)
	assert.Equal(t, 50, st.Reputation)
	assert.Zero(t, st.Employees)
	assert.Equal(t, 1, st.DaysActive)
}

func TestAddXP(t *testing.T) {
	s := newTestStore(t)

	// 2500 XP from level 1: level 1 consumes 1000, the remaining 1500
	// fits under level 2's 2000 capacity.
	st, err := s.AddXP(2500)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 1500, st.XP)

	st, err = s.AddXP(600)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Level)
	assert.Equal(t, 100, st.XP)

	// Invariant holds after every grant.
	assert.GreaterOrEqual(t, st.XP, 0)
	assert.Less(t, st.XP, st.Level*tycoon.LevelUnit)
}

func TestAddXP_NegativeRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddXP(-1)
	assert.ErrorIs(t, err, types.ErrNegativeAmount)

	st, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Level)
	assert.Zero(t, st.XP, "state unchanged after rejected grant")
}

func TestAddRevenue(t *testing.T) {
	s := newTestStore(t)

	st, err := s.AddRevenue(750.25)
	require.NoError(t, err)
	assert.InDelta(t, 750.25, st.TotalRevenue, 1e-6)

	st, err = s.AddRevenue(249.75)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, st.TotalRevenue, 1e-6)

	// Crossing the 1000 threshold promotes the derived rank to tier 2.
	assert.Equal(t, 2, tycoon.RankFor(st.TotalRevenue).Tier)

	_, err = s.AddRevenue(-5)
	assert.ErrorIs(t, err, types.ErrNegativeAmount)
}

func TestSaveProfile(t *testing.T) {
	s := newTestStore(t)

	st, err := s.LoadStats()
	require.NoError(t, err)

	st.Satisfaction = 85
	st.Reputation = 70
	st.Employees = 12
	st.DaysActive = 30
	require.NoError(t, s.SaveProfile(st))

	got, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 85, got.Satisfaction)
	assert.Equal(t, 70, got.Reputation)
	assert.Equal(t, 12, got.Employees)
	assert.Equal(t, 30, got.DaysActive)
	assert.Equal(t, 1, got.Level, "profile save never touches progression")
}
