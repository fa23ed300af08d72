package cmd

import (
	"fmt"
	"strconv"

	"flowstate/internal/cli"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate [percent]",
	Short: "Show or set the savings rate",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if len(args) == 1 {
		rate, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("rate %q is not a number", args[0])
		}
		// The store clamps to [0, 100].
		if err := st.SetSavingsRate(rate); err != nil {
			return err
		}
	}

	now, err := budgetNow()
	if err != nil {
		return err
	}
	snap := st.Snapshot()
	v := deriveCache.Derive(snap, now)
	sym := snap.Currency.Symbol()

	fmt.Printf("\n  Savings rate: %d%%\n", snap.SavingsRate)
	fmt.Printf("  Target monthly savings: %s\n", cli.FormatMoney(sym, v.TargetMonthlySavings))
	fmt.Printf("  Spendable monthly budget: %s\n", cli.FormatMoney(sym, v.SpendableMonthlyBudget))
	return nil
}
