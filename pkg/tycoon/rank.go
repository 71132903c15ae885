package tycoon

// RankInfo describes one cosmetic rank tier. Rank is derived purely from
// cumulative revenue and is independent of level.
type RankInfo struct {
	Name        string  `json:"name"`
	Tier        int     `json:"tier"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Threshold   float64 `json:"threshold"`
}

// Ranks lists all tiers in ascending threshold order.
var Ranks = []RankInfo{
	{Name: "Novice Entrepreneur", Tier: 1, Icon: "seed-outline", Description: "Starting the empire", Threshold: 0},
	{Name: "Growing Manager", Tier: 2, Icon: "trending-up-outline", Description: "Optimizing processes", Threshold: 1_000},
	{Name: "Executive Director", Tier: 3, Icon: "briefcase-outline", Description: "Corporate strategy", Threshold: 10_000},
	{Name: "Business Magnate", Tier: 4, Icon: "business-outline", Description: "Regional dominance", Threshold: 100_000},
	{Name: "Corporate Titan", Tier: 5, Icon: "globe-outline", Description: "Global influence", Threshold: 1_000_000},
	{Name: "Market Legend", Tier: 6, Icon: "trophy-outline", Description: "Legendary status", Threshold: 10_000_000},
}

// RankFor returns the highest rank whose threshold totalRevenue meets.
// Tier 1 is the floor for any non-negative revenue.
func RankFor(totalRevenue float64) RankInfo {
	rank := Ranks[0]
	for _, r := range Ranks[1:] {
		if totalRevenue < r.Threshold {
			break
		}
		rank = r
	}
	return rank
}
