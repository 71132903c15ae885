package sqlite

import (
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/stockpile-hq/stockpile/pkg/types"
)

// summaryKey is the single cache slot for the dashboard aggregates.
const summaryKey = "dashboard-summary"

// Summary holds the dashboard aggregates: sales total, product and asset
// counts, and the fleet value excluding disposed assets.
type Summary struct {
	TotalSales float64 `json:"total_sales"`
	Products   int     `json:"products"`
	Assets     int     `json:"assets"`
	FleetValue float64 `json:"fleet_value"`
}

// DashboardSummary computes the dashboard aggregates, serving a cached
// copy when one is fresh. Writes through the store invalidate the cache.
func (s *Store) DashboardSummary() (*Summary, error) {
	if v, ok := s.summary.Get(summaryKey); ok {
		return v.(*Summary), nil
	}

	var sum Summary
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = ?", types.TxTypeSale,
	).Scan(&sum.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("summing sales: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&sum.Products); err != nil {
		return nil, fmt.Errorf("counting products: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&sum.Assets); err != nil {
		return nil, fmt.Errorf("counting assets: %w", err)
	}
	if sum.FleetValue, err = s.FleetValue(); err != nil {
		return nil, err
	}

	s.summary.Set(summaryKey, &sum, cache.DefaultExpiration)
	return &sum, nil
}

// invalidateSummary drops the cached dashboard aggregates after a write.
func (s *Store) invalidateSummary() {
	s.summary.Delete(summaryKey)
}
