package cmd

import (
	"fmt"

	"flowstate/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Snapshot file:  %s\n", config.SnapshotPath(cfg))
	fmt.Printf("    Quiet:          %v\n", cfg.General.Quiet)
	fmt.Println()

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	snap := st.Snapshot()

	fmt.Println("  [Budget]")
	fmt.Printf("    Currency:     %s (%s)\n", snap.Currency, snap.Currency.Symbol())
	fmt.Printf("    Savings rate: %d%%\n", snap.SavingsRate)
	fmt.Printf("    Spend days:   %d per week\n", snap.SpendDays.Count())
	fmt.Println()

	fmt.Println("  Run `flowstate setup` to reconfigure.")
	return nil
}
