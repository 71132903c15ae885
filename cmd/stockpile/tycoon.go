// Progression subcommands: stats, ranks, and the dashboard summary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockpile-hq/stockpile/pkg/tycoon"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show tycoon progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.LoadStats()
			if err != nil {
				return err
			}
			rank := tycoon.RankFor(st.TotalRevenue)

			if flagJSON {
				return printJSON(cmd, struct {
					Level        int             `json:"level"`
					XP           int             `json:"xp"`
					NextLevelXP  int             `json:"next_level_xp"`
					Progress     float64         `json:"progress"`
					TotalRevenue float64         `json:"total_revenue"`
					Rank         tycoon.RankInfo `json:"rank"`
					Satisfaction int             `json:"satisfaction"`
					Reputation   int             `json:"reputation"`
					Employees    int             `json:"employees"`
					DaysActive   int             `json:"days_active"`
				}{
					st.Level, st.XP, tycoon.NextLevelXP(st.Level),
					tycoon.Progress(st.Level, st.XP), st.TotalRevenue, rank,
					st.Satisfaction, st.Reputation, st.Employees, st.DaysActive,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Level %d  (%d / %d XP, %.1f%%)\n",
				st.Level, st.XP, tycoon.NextLevelXP(st.Level), tycoon.Progress(st.Level, st.XP))
			fmt.Fprintf(out, "Rank:         %s (tier %d) - %s\n", rank.Name, rank.Tier, rank.Description)
			fmt.Fprintf(out, "Revenue:      %.2f\n", st.TotalRevenue)
			fmt.Fprintf(out, "Satisfaction: %d%%\n", st.Satisfaction)
			fmt.Fprintf(out, "Reputation:   %d\n", st.Reputation)
			fmt.Fprintf(out, "Employees:    %d\n", st.Employees)
			fmt.Fprintf(out, "Days active:  %d\n", st.DaysActive)
			return nil
		},
	}
}

func newRanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "List all rank tiers and their revenue thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.LoadStats()
			if err != nil {
				return err
			}
			current := tycoon.RankFor(st.TotalRevenue)

			if flagJSON {
				return printJSON(cmd, tycoon.Ranks)
			}
			for _, r := range tycoon.Ranks {
				marker := " "
				if r.Tier == current.Tier {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %-20s from %12.0f  %s\n",
					marker, r.Tier, r.Name, r.Threshold, r.Description)
			}
			return nil
		},
	}
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the business dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := store.DashboardSummary()
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, sum)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total sales: %.2f\n", sum.TotalSales)
			fmt.Fprintf(out, "Products:    %d\n", sum.Products)
			fmt.Fprintf(out, "Assets:      %d\n", sum.Assets)
			fmt.Fprintf(out, "Fleet value: %.2f\n", sum.FleetValue)
			return nil
		},
	}
}
