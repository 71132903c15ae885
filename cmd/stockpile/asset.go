// Asset subcommands: register, list, inspect, update, delete, validate,
// and export capital assets.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stockpile-hq/stockpile/pkg/tycoon"
	"github.com/stockpile-hq/stockpile/pkg/types"
)

// XP awarded for inventory work, mirroring the in-app actions.
const (
	xpAssetRegistered = 50
	xpAssetsExported  = 25
)

func newAssetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage capital assets",
	}
	cmd.AddCommand(newAssetAddCmd())
	cmd.AddCommand(newAssetListCmd())
	cmd.AddCommand(newAssetShowCmd())
	cmd.AddCommand(newAssetUpdateCmd())
	cmd.AddCommand(newAssetDeleteCmd())
	cmd.AddCommand(newAssetValidateCmd())
	cmd.AddCommand(newAssetExportCmd())
	return cmd
}

func newAssetAddCmd() *cobra.Command {
	var a types.Asset
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.CreateAsset(&a); err != nil {
				return err
			}
			// Registration earns XP; a failed grant should not undo the
			// asset, so it only logs.
			if _, err := store.AddXP(xpAssetRegistered); err != nil {
				logger.Warn().Err(err).Msg("xp grant failed")
			}

			if flagJSON {
				return printJSON(cmd, a)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered asset %d (%s) +%d XP\n", a.ID, a.AssetTag, xpAssetRegistered)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&a.AssetTag, "tag", "", "unique asset tag (required)")
	cmd.Flags().StringVar(&a.Category, "category", "", "category (default: General)")
	cmd.Flags().StringVar(&a.Location, "location", "", "location (default: Unassigned)")
	cmd.Flags().StringVar(&a.SerialNumber, "serial", "", "serial number")
	cmd.Flags().Float64Var(&a.Cost, "cost", 0, "purchase cost")
	cmd.Flags().StringVar(&a.Status, "status", "", "status: Active, In Repair, Disposed")
	cmd.Flags().StringVar(&a.ImageURL, "image", "", "image URL")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("tag")
	return cmd
}

func newAssetListCmd() *cobra.Command {
	var filter types.AssetFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := store.ListAssets(filter)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, assets)
			}
			for _, a := range assets {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4d %-12s %-24s %-12s %-14s %10.2f  %s\n",
					a.ID, a.AssetTag, a.Name, a.Category, a.Location, a.Cost, a.Status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Status, "status", "", "filter by status")
	cmd.Flags().StringVar(&filter.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&filter.Search, "search", "", "substring match on name, tag, or serial")
	return cmd
}

func newAssetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an asset with its depreciated current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := store.GetAsset(id)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			value := tycoon.CurrentValue(a.Cost, a.PurchaseDate, now)

			if flagJSON {
				return printJSON(cmd, struct {
					*types.Asset
					CurrentValue float64 `json:"current_value"`
					AgeYears     float64 `json:"age_years"`
				}{a, value, tycoon.AgeYears(a.PurchaseDate, now)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Asset %d: %s (%s)\n", a.ID, a.Name, a.AssetTag)
			fmt.Fprintf(out, "  Category:      %s\n", a.Category)
			fmt.Fprintf(out, "  Location:      %s\n", a.Location)
			if a.SerialNumber != "" {
				fmt.Fprintf(out, "  Serial:        %s\n", a.SerialNumber)
			}
			fmt.Fprintf(out, "  Status:        %s\n", a.Status)
			fmt.Fprintf(out, "  Purchased:     %s\n", a.PurchaseDate.Format("2006-01-02"))
			fmt.Fprintf(out, "  Cost:          %.2f\n", a.Cost)
			fmt.Fprintf(out, "  Current value: %.2f\n", value)
			if a.LastValidated != nil {
				fmt.Fprintf(out, "  Validated:     %s\n", a.LastValidated.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newAssetUpdateCmd() *cobra.Command {
	var in types.Asset
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an asset (only the given flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := store.GetAsset(id)
			if err != nil {
				return err
			}

			apply := map[string]func(){
				"name":     func() { a.Name = in.Name },
				"tag":      func() { a.AssetTag = in.AssetTag },
				"category": func() { a.Category = in.Category },
				"location": func() { a.Location = in.Location },
				"serial":   func() { a.SerialNumber = in.SerialNumber },
				"cost":     func() { a.Cost = in.Cost },
				"status":   func() { a.Status = in.Status },
				"image":    func() { a.ImageURL = in.ImageURL },
			}
			for name, set := range apply {
				if cmd.Flags().Changed(name) {
					set()
				}
			}

			if err := store.UpdateAsset(a); err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, a)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated asset %d\n", a.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.AssetTag, "tag", "", "unique asset tag")
	cmd.Flags().StringVar(&in.Category, "category", "", "category")
	cmd.Flags().StringVar(&in.Location, "location", "", "location")
	cmd.Flags().StringVar(&in.SerialNumber, "serial", "", "serial number")
	cmd.Flags().Float64Var(&in.Cost, "cost", 0, "purchase cost")
	cmd.Flags().StringVar(&in.Status, "status", "", "status: Active, In Repair, Disposed")
	cmd.Flags().StringVar(&in.ImageURL, "image", "", "image URL")
	return cmd
}

func newAssetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteAsset(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted asset %d\n", id)
			return nil
		},
	}
}

func newAssetValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id>",
		Short: "Record a physical validation of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := store.MarkValidated(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Validated asset %d\n", id)
			return nil
		},
	}
}

func newAssetExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all asset records as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := store.ExportAssets()
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			if _, err := store.AddXP(xpAssetsExported); err != nil {
				logger.Warn().Err(err).Msg("xp grant failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	return cmd
}
