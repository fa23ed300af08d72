package cmd

import (
	"fmt"
	"strings"

	"flowstate/internal/cli"
	"flowstate/internal/model"

	"github.com/spf13/cobra"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Manage quick-expense templates",
}

var quickAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Save a quick-expense template",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuickAdd,
}

var quickListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quick-expense templates",
	Args:  cobra.NoArgs,
	RunE:  runQuickList,
}

var quickUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Record a transaction from a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuickUse,
}

var quickFavCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle the favorite flag on a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuickFav,
}

var quickRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a quick-expense template",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuickRm,
}

var (
	flagQuickCategory string
	flagQuickNote     string
)

func init() {
	quickAddCmd.Flags().StringVarP(&flagQuickCategory, "category", "c", "other", "Expense category")
	quickAddCmd.Flags().StringVarP(&flagQuickNote, "note", "m", "", "Note attached to the template")
	quickCmd.AddCommand(quickAddCmd, quickListCmd, quickUseCmd, quickFavCmd, quickRmCmd)
	rootCmd.AddCommand(quickCmd)
}

func runQuickAdd(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	cat, ok := model.ParseCategory(flagQuickCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", flagQuickCategory)
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	qe, err := st.AddQuickExpense(model.QuickExpense{
		Amount:   amount,
		Category: cat,
		Note:     flagQuickNote,
	})
	if err != nil {
		return err
	}
	sym := st.Snapshot().Currency.Symbol()
	fmt.Printf("Saved template %s %s (%s)\n", qe.ID[:8], cli.FormatMoney(sym, qe.Amount), qe.Category)
	return nil
}

func runQuickList(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	snap := st.Snapshot()
	if len(snap.QuickExpenses) == 0 {
		hint("No quick expenses yet. Save one with `flowstate quick add <amount> -c <category>`.\n")
		return nil
	}

	sym := snap.Currency.Symbol()
	tbl := cli.Table{
		Title:   "QUICK EXPENSES",
		Headers: []string{"ID", "Category", "Note", "Uses", "Amount"},
	}
	for _, qe := range snap.QuickExpenses {
		note := qe.Note
		if qe.IsFavorite {
			note = strings.TrimSpace("* " + note)
		}
		tbl.Rows = append(tbl.Rows, []string{
			qe.ID[:8],
			string(qe.Category),
			note,
			fmt.Sprintf("%d", qe.UsageCount),
			cli.FormatMoney(sym, qe.Amount),
		})
	}
	fmt.Println(cli.RenderTable(tbl))
	return nil
}

func runQuickUse(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	qe, err := resolveQuickID(st.Snapshot().QuickExpenses, args[0])
	if err != nil {
		return err
	}

	now, err := budgetNow()
	if err != nil {
		return err
	}
	tx, err := st.AddTransaction(model.Transaction{
		Amount:   qe.Amount,
		Category: qe.Category,
		Note:     qe.Note,
		Date:     now,
	})
	if err != nil {
		return err
	}
	if err := st.UseQuickExpense(qe.ID); err != nil {
		return err
	}
	sym := st.Snapshot().Currency.Symbol()
	fmt.Printf("Recorded %s %s (%s) as %s\n",
		cli.FormatMoney(sym, tx.Amount), string(tx.Category), cli.FormatDate(now), tx.ID[:8])
	return nil
}

func runQuickFav(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	qe, err := resolveQuickID(st.Snapshot().QuickExpenses, args[0])
	if err != nil {
		return err
	}
	return st.ToggleFavoriteQuickExpense(qe.ID)
}

func runQuickRm(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	qe, err := resolveQuickID(st.Snapshot().QuickExpenses, args[0])
	if err != nil {
		return err
	}
	return st.DeleteQuickExpense(qe.ID)
}

// resolveQuickID matches a full id or an unambiguous prefix of at
// least four characters.
func resolveQuickID(items []model.QuickExpense, id string) (model.QuickExpense, error) {
	for _, qe := range items {
		if qe.ID == id {
			return qe, nil
		}
	}
	if len(id) >= 4 {
		var match *model.QuickExpense
		for i := range items {
			if strings.HasPrefix(items[i].ID, id) {
				if match != nil {
					return model.QuickExpense{}, fmt.Errorf("id prefix %q is ambiguous", id)
				}
				match = &items[i]
			}
		}
		if match != nil {
			return *match, nil
		}
	}
	return model.QuickExpense{}, fmt.Errorf("no quick expense matches %q", id)
}
