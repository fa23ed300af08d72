package cmd

import (
	"fmt"
	"time"

	"flowstate/internal/cli"
	"flowstate/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddNote     string
	flagAddDate     string
	flagAddIncome   bool
)

var addCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record an expense (or ad-hoc income with --income)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "other", "Category (food, transport, entertainment, shopping, health, utilities, other)")
	addCmd.Flags().StringVarP(&flagAddNote, "note", "m", "", "Note")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date the transaction happened (YYYY-MM-DD, default today)")
	addCmd.Flags().BoolVar(&flagAddIncome, "income", false, "Record as income (a gift, a refund)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	category, ok := model.ParseCategory(flagAddCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", flagAddCategory)
	}

	date := time.Now()
	if flagAddDate != "" {
		date, err = time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagAddDate, err)
		}
	}

	// Income is stored as a negative amount; the magnitude the user typed
	// is always positive.
	if flagAddIncome {
		amount = -amount
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	tx, err := st.AddTransaction(model.Transaction{
		Amount:   amount,
		Category: category,
		Note:     flagAddNote,
		Date:     date,
	})
	if err != nil {
		return err
	}

	snap := st.Snapshot()
	sym := snap.Currency.Symbol()
	if flagAddIncome {
		fmt.Printf("  Recorded income %s (%s)\n", cli.FormatMoney(sym, -tx.Amount), tx.ID[:8])
	} else {
		fmt.Printf("  Recorded %s on %s (%s)\n", cli.FormatMoney(sym, tx.Amount), tx.Category, tx.ID[:8])
	}
	return nil
}
