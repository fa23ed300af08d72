package cmd

import (
	"fmt"
	"time"

	"flowstate/internal/calendar"
	"flowstate/internal/cli"
	"flowstate/internal/model"

	"github.com/spf13/cobra"
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Bank or withdraw savings",
}

var savingsBankCmd = &cobra.Command{
	Use:   "bank <amount>",
	Short: "Bank an amount into savings",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return addSavings(args[0], false)
	},
}

var savingsWithdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Withdraw an amount from savings",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return addSavings(args[0], true)
	},
}

var savingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List savings ledger entries",
	RunE:  runSavingsList,
}

func init() {
	savingsCmd.AddCommand(savingsBankCmd, savingsWithdrawCmd, savingsListCmd)
	rootCmd.AddCommand(savingsCmd)
}

// addSavings records one ledger entry. Withdrawals are stored as negative
// amounts with the week start pinned to now's week.
func addSavings(arg string, withdraw bool) error {
	amount, err := parseAmount(arg)
	if err != nil {
		return err
	}
	if withdraw {
		amount = -amount
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	now := time.Now()
	entry, err := st.AddSavingsEntry(model.SavingsEntry{
		WeekStart: calendar.WeekStart(now),
		Amount:    amount,
		Date:      now,
	})
	if err != nil {
		return err
	}

	snap := st.Snapshot()
	sym := snap.Currency.Symbol()
	var total float64
	for _, e := range snap.Savings {
		total += e.Amount
	}

	verb := "Banked"
	if withdraw {
		verb = "Withdrew"
	}
	fmt.Printf("  %s %s. Total savings: %s\n", verb,
		cli.FormatMoney(sym, abs(entry.Amount)), cli.FormatMoney(sym, total))
	return nil
}

func runSavingsList(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	snap := st.Snapshot()
	if len(snap.Savings) == 0 {
		fmt.Println("\n  Nothing banked yet.")
		return nil
	}
	sym := snap.Currency.Symbol()

	var total float64
	rows := make([][]string, 0, len(snap.Savings))
	for _, e := range snap.Savings {
		total += e.Amount
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			"week of " + cli.FormatDate(e.WeekStart),
			cli.FormatSignedMoney(sym, e.Amount),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Week", "Amount"},
		Rows:    rows,
	}))
	fmt.Printf("  Total: %s\n", cli.FormatMoney(sym, total))
	return nil
}
