package types

// TycoonStats is the singleton progression row (id = 1). Exactly one
// instance exists per installation, seeded by the schema migrator.
//
// XP is progress within the current level, not a cumulative total:
// 0 <= XP < Level*1000 holds after every mutation. TotalRevenue only
// ever increases.
type TycoonStats struct {
	Level        int     `json:"level"`
	XP           int     `json:"xp"`
	TotalRevenue float64 `json:"total_revenue"`
	Satisfaction int     `json:"satisfaction"`
	Reputation   int     `json:"reputation"`
	Employees    int     `json:"employees"`
	DaysActive   int     `json:"days_active"`
}
