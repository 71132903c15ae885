package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/stockpile-hq/stockpile/pkg/tycoon"
	"github.com/stockpile-hq/stockpile/pkg/types"
)

// LoadStats reads the singleton progression row (id = 1), seeded by the
// schema migrator and never deleted.
func (s *Store) LoadStats() (*types.TycoonStats, error) {
	var st types.TycoonStats
	err := s.db.QueryRow(
		`SELECT level, xp, total_revenue, satisfaction_rate, reputation_score, employees_count, days_active
         FROM tycoon_stats WHERE id = 1`,
	).Scan(&st.Level, &st.XP, &st.TotalRevenue, &st.Satisfaction, &st.Reputation,
		&st.Employees, &st.DaysActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("loading tycoon stats: %w", err)
	}
	return &st, nil
}

// AddXP grants XP and rolls excess over into new levels. The read and
// the write happen inside one transaction so concurrent grants cannot
// lose an increment, and 0 <= xp < level*1000 holds on commit.
func (s *Store) AddXP(amount int) (*types.TycoonStats, error) {
	if amount < 0 {
		return nil, types.ErrNegativeAmount
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning xp grant: %w", err)
	}
	defer tx.Rollback()

	var level, xp int
	err = tx.QueryRow("SELECT level, xp FROM tycoon_stats WHERE id = 1").Scan(&level, &xp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("reading progression: %w", err)
	}

	level, xp = tycoon.ApplyXP(level, xp, amount)

	if _, err := tx.Exec(
		"UPDATE tycoon_stats SET level = ?, xp = ? WHERE id = 1", level, xp,
	); err != nil {
		return nil, fmt.Errorf("persisting progression: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing xp grant: %w", err)
	}

	s.log.Debug().Int("amount", amount).Int("level", level).Int("xp", xp).Msg("xp granted")
	return s.LoadStats()
}

// AddRevenue accumulates revenue as an in-place increment, so concurrent
// collections never lose an update. Revenue only ever increases; rank is
// derived from it on read, never stored.
func (s *Store) AddRevenue(amount float64) (*types.TycoonStats, error) {
	if amount < 0 {
		return nil, types.ErrNegativeAmount
	}

	res, err := s.db.Exec(
		"UPDATE tycoon_stats SET total_revenue = total_revenue + ? WHERE id = 1", amount,
	)
	if err != nil {
		return nil, fmt.Errorf("adding revenue: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, types.ErrNotFound
	}
	return s.LoadStats()
}

// SaveProfile persists the auxiliary stats columns. Level, XP, and
// revenue are deliberately excluded: those change only through AddXP and
// AddRevenue, which enforce their invariants.
func (s *Store) SaveProfile(st *types.TycoonStats) error {
	res, err := s.db.Exec(
		`UPDATE tycoon_stats SET satisfaction_rate = ?, reputation_score = ?,
         employees_count = ?, days_active = ? WHERE id = 1`,
		st.Satisfaction, st.Reputation, st.Employees, st.DaysActive,
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	return nil
}
