// Package cmd implements the flowstate CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"flowstate/internal/budget"
	"flowstate/internal/config"
	"flowstate/internal/store"

	"github.com/spf13/cobra"
)

// deriveCache memoizes budget derivation for commands that read the same
// snapshot more than once in a single invocation.
var deriveCache budget.Cached

var (
	flagDataDir string
	flagQuiet   bool
	flagDate    string
)

var rootCmd = &cobra.Command{
	Use:   "flowstate",
	Short: "Personal budgeting calculator",
	Long:  "Track spending against daily, weekly, and 4-week period targets.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress hints on stderr")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Compute budgets as of this date (YYYY-MM-DD)")
}

// openStore wires config, the snapshot database, and the record store.
// The returned closer flushes nothing; every mutation already persisted.
func openStore() (*store.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if cfg.General.Quiet {
		flagQuiet = true
	}

	db, err := store.OpenSnapshotDB(config.SnapshotPath(cfg))
	if err != nil {
		return nil, nil, err
	}
	st, err := store.New(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return st, func() { _ = db.Close() }, nil
}

// budgetNow resolves the --date override, defaulting to the wall clock.
func budgetNow() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", flagDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", flagDate, err)
	}
	return t, nil
}

// parseAmount validates a user-entered magnitude: numeric and strictly
// positive. Sign conventions are applied by the commands, never typed.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	return v, nil
}

func hint(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
