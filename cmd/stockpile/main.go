// Package main provides the stockpile CLI, a gamified asset and
// inventory tracker backed by an embedded SQLite database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stockpile-hq/stockpile/internal/paths"
	"github.com/stockpile-hq/stockpile/internal/sqlite"
	"github.com/stockpile-hq/stockpile/pkg/types"
)

// Exit codes: 1 for user errors (bad input, missing records), 2 for
// system errors (config, storage, migration).
const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// store is the shared database handle, opened by PersistentPreRunE and
// closed after the command finishes.
var (
	store  *sqlite.Store
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stockpile",
	Short: "A gamified asset and inventory tracker",
	Long: `Stockpile tracks capital assets and stocked products in an embedded
SQLite database and layers a tycoon progression (levels, XP, ranks)
on top of everyday inventory work.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeStore() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .stockpile)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newAssetCmd())
	rootCmd.AddCommand(newProductCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newRanksCmd())
	rootCmd.AddCommand(newDashboardCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps storage sentinels to the user-error exit code; anything
// else is a system failure.
func exitCode(err error) int {
	for _, sentinel := range []error{
		types.ErrNotFound, types.ErrDuplicateTag, types.ErrInvalidName,
		types.ErrInvalidStatus, types.ErrNegativeCost, types.ErrNegativePrice,
		types.ErrNegativeStock, types.ErrNegativeAmount, types.ErrInvalidQuantity,
		types.ErrInsufficientStock,
	} {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}

// openStore loads config, builds the logger, and opens the database,
// migrating it to the current schema. Skipped for commands that never
// touch storage.
func openStore(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = newLogger(cfg.LogLevel)

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err = sqlite.Open(dataDir, logger)
	if err != nil {
		// A failed migration must not fall through into normal
		// operation; later commands would hit missing tables.
		return fmt.Errorf("open storage: %w", err)
	}
	return nil
}

// closeStore releases the database handle.
func closeStore() error {
	if store != nil {
		return store.Close()
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize stockpile storage",
	Long:  "Create the configuration and data directories and migrate the database to the current schema.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The database is already opened and migrated by PersistentPreRunE.
		fmt.Fprintln(cmd.OutOrStdout(), "Stockpile initialized successfully")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "stockpile v0.1.0")
	},
}
