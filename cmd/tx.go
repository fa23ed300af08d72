package cmd

import (
	"fmt"
	"time"

	"flowstate/internal/calendar"
	"flowstate/internal/classify"
	"flowstate/internal/cli"
	"flowstate/internal/model"
	"flowstate/internal/store"

	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List this period's transactions",
	RunE:  runTxList,
}

var txRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxRm,
}

var (
	flagRestoreID       string
	flagRestoreAmount   float64
	flagRestoreCategory string
	flagRestoreNote     string
	flagRestoreDate     string
)

var txRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a deleted transaction (undo)",
	Long:  "Re-insert a deleted transaction by its original id. Restoring the same transaction twice has no effect.",
	RunE:  runTxRestore,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txFavCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle a transaction's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxFav,
}

var (
	flagEditAmount   string
	flagEditCategory string
	flagEditNote     string
	flagEditDate     string
)

func init() {
	txRestoreCmd.Flags().StringVar(&flagRestoreID, "id", "", "Original transaction id")
	txRestoreCmd.Flags().Float64Var(&flagRestoreAmount, "amount", 0, "Signed amount")
	txRestoreCmd.Flags().StringVar(&flagRestoreCategory, "category", "other", "Category")
	txRestoreCmd.Flags().StringVar(&flagRestoreNote, "note", "", "Note")
	txRestoreCmd.Flags().StringVar(&flagRestoreDate, "date", "", "Date (RFC3339)")
	_ = txRestoreCmd.MarkFlagRequired("id")
	_ = txRestoreCmd.MarkFlagRequired("date")

	txEditCmd.Flags().StringVar(&flagEditAmount, "amount", "", "New amount")
	txEditCmd.Flags().StringVar(&flagEditCategory, "category", "", "New category")
	txEditCmd.Flags().StringVar(&flagEditNote, "note", "", "New note")
	txEditCmd.Flags().StringVar(&flagEditDate, "date", "", "New date (YYYY-MM-DD)")

	txCmd.AddCommand(txListCmd, txRmCmd, txRestoreCmd, txEditCmd, txFavCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxList(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	now, err := budgetNow()
	if err != nil {
		return err
	}

	snap := st.Snapshot()
	sym := snap.Currency.Symbol()
	period := classify.Between(snap.Transactions, calendar.PeriodStart(now), calendar.PeriodEnd(now))
	if len(period) == 0 {
		fmt.Println("\n  No transactions this period.")
		return nil
	}

	rows := make([][]string, 0, len(period))
	for _, tx := range period {
		note := tx.Note
		if tx.IsFavorite {
			note = "* " + note
		}
		rows = append(rows, []string{
			tx.ID[:8],
			cli.FormatDate(tx.Date),
			string(tx.Category),
			note,
			cli.FormatMoney(sym, tx.Amount),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Category", "Note", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runTxRm(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	id, ok := resolveTransactionID(st.Snapshot().Transactions, args[0])
	if !ok {
		fmt.Printf("  No transaction matching %q.\n", args[0])
		return nil
	}

	undo, err := st.DeleteTransaction(id)
	if err != nil {
		return err
	}
	if undo == nil {
		fmt.Printf("  No transaction matching %q.\n", args[0])
		return nil
	}

	tx := undo.Transaction
	sym := st.Snapshot().Currency.Symbol()
	fmt.Printf("  Deleted %s (%s, %s)\n", cli.FormatMoney(sym, tx.Amount), tx.Category, cli.FormatDate(tx.Date))
	hint("  Undo with:\n    flowstate tx restore --id %s --amount %g --category %s --note %q --date %s\n",
		tx.ID, tx.Amount, tx.Category, tx.Note, tx.Date.Format(time.RFC3339))
	return nil
}

func runTxRestore(_ *cobra.Command, _ []string) error {
	category, ok := model.ParseCategory(flagRestoreCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", flagRestoreCategory)
	}
	date, err := time.Parse(time.RFC3339, flagRestoreDate)
	if err != nil {
		return fmt.Errorf("invalid --date %q: %w", flagRestoreDate, err)
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	err = st.RestoreTransaction(model.Transaction{
		ID:       flagRestoreID,
		Amount:   flagRestoreAmount,
		Category: category,
		Note:     flagRestoreNote,
		Date:     date.Local(),
	})
	if err != nil {
		return err
	}
	fmt.Println("  Restored.")
	return nil
}

func runTxEdit(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	id, ok := resolveTransactionID(st.Snapshot().Transactions, args[0])
	if !ok {
		fmt.Printf("  No transaction matching %q.\n", args[0])
		return nil
	}

	var patch store.TransactionPatch
	if flagEditAmount != "" {
		amount, err := parseAmount(flagEditAmount)
		if err != nil {
			return err
		}
		patch.Amount = &amount
	}
	if flagEditCategory != "" {
		category, ok := model.ParseCategory(flagEditCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", flagEditCategory)
		}
		patch.Category = &category
	}
	if flagEditNote != "" {
		patch.Note = &flagEditNote
	}
	if flagEditDate != "" {
		date, err := time.ParseInLocation("2006-01-02", flagEditDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagEditDate, err)
		}
		patch.Date = &date
	}

	if err := st.UpdateTransaction(id, patch); err != nil {
		return err
	}
	fmt.Println("  Updated.")
	return nil
}

func runTxFav(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	id, ok := resolveTransactionID(st.Snapshot().Transactions, args[0])
	if !ok {
		fmt.Printf("  No transaction matching %q.\n", args[0])
		return nil
	}
	if err := st.ToggleFavoriteTransaction(id); err != nil {
		return err
	}
	fmt.Println("  Toggled.")
	return nil
}

// resolveTransactionID accepts a full id or an unambiguous prefix.
func resolveTransactionID(txs []model.Transaction, arg string) (string, bool) {
	var match string
	for _, tx := range txs {
		if tx.ID == arg {
			return arg, true
		}
		if len(arg) >= 4 && len(tx.ID) >= len(arg) && tx.ID[:len(arg)] == arg {
			if match != "" {
				return "", false // ambiguous
			}
			match = tx.ID
		}
	}
	return match, match != ""
}
