package cmd

import (
	"fmt"

	"flowstate/internal/cli"
	"flowstate/internal/model"
	"flowstate/internal/store"

	"github.com/spf13/cobra"
)

var recurringCmd = &cobra.Command{
	Use:     "recurring",
	Aliases: []string{"vault"},
	Short:   "Manage recurring income and fixed expenses",
}

var flagRecurringFreq string

func init() {
	recurringCmd.AddCommand(
		newRecurringGroup("income", "Recurring income",
			func(st *store.Store, item model.RecurringItem) (model.RecurringItem, error) {
				return st.AddRecurringIncome(item)
			},
			func(st *store.Store) []model.RecurringItem { return st.Snapshot().RecurringIncome },
			func(st *store.Store, id string) error { return st.DeleteRecurringIncome(id) },
			func(st *store.Store, id string, patch store.RecurringPatch) error {
				return st.UpdateRecurringIncome(id, patch)
			}),
		newRecurringGroup("expense", "Recurring fixed expenses",
			func(st *store.Store, item model.RecurringItem) (model.RecurringItem, error) {
				return st.AddRecurringExpense(item)
			},
			func(st *store.Store) []model.RecurringItem { return st.Snapshot().RecurringExpenses },
			func(st *store.Store, id string) error { return st.DeleteRecurringExpense(id) },
			func(st *store.Store, id string, patch store.RecurringPatch) error {
				return st.UpdateRecurringExpense(id, patch)
			}),
	)
	rootCmd.AddCommand(recurringCmd)
}

// newRecurringGroup builds the add/list/rm/edit subtree shared by the income
// and expense collections.
func newRecurringGroup(
	kind, short string,
	add func(*store.Store, model.RecurringItem) (model.RecurringItem, error),
	list func(*store.Store) []model.RecurringItem,
	remove func(*store.Store, string) error,
	update func(*store.Store, string, store.RecurringPatch) error,
) *cobra.Command {
	group := &cobra.Command{Use: kind, Short: short}

	addCmd := &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Add a recurring " + kind,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			freq, ok := model.ParseFrequency(flagRecurringFreq)
			if !ok {
				return fmt.Errorf("unknown frequency %q (daily, weekly, monthly)", flagRecurringFreq)
			}

			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			item, err := add(st, model.RecurringItem{Name: args[0], Amount: amount, Frequency: freq})
			if err != nil {
				return err
			}
			sym := st.Snapshot().Currency.Symbol()
			fmt.Printf("  Added %s: %s/%s (%s monthly)\n", item.Name,
				cli.FormatMoney(sym, item.Amount), freq,
				cli.FormatMoney(sym, item.MonthlyAmount()))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&flagRecurringFreq, "freq", "f", "monthly", "Frequency (daily, weekly, monthly)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recurring " + kind + " items",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			items := list(st)
			if len(items) == 0 {
				fmt.Printf("\n  No recurring %s yet.\n", kind)
				return nil
			}
			sym := st.Snapshot().Currency.Symbol()

			var total float64
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				total += item.MonthlyAmount()
				rows = append(rows, []string{
					item.ID[:8],
					item.Name,
					string(item.Frequency),
					cli.FormatMoney(sym, item.Amount),
					cli.FormatMoney(sym, item.MonthlyAmount()),
				})
			}
			fmt.Println()
			fmt.Print(cli.RenderTable(cli.Table{
				Headers: []string{"ID", "Name", "Freq", "Amount", "Monthly"},
				Rows:    rows,
			}))
			fmt.Printf("  Total: %s per month\n", cli.FormatMoney(sym, total))
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recurring " + kind,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			id, ok := resolveRecurringID(list(st), args[0])
			if !ok {
				fmt.Printf("  No recurring %s matching %q.\n", kind, args[0])
				return nil
			}
			if err := remove(st, id); err != nil {
				return err
			}
			fmt.Println("  Deleted.")
			return nil
		},
	}

	var editAmount, editName, editFreq string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recurring " + kind,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			id, ok := resolveRecurringID(list(st), args[0])
			if !ok {
				fmt.Printf("  No recurring %s matching %q.\n", kind, args[0])
				return nil
			}

			var patch store.RecurringPatch
			if editName != "" {
				patch.Name = &editName
			}
			if editAmount != "" {
				amount, err := parseAmount(editAmount)
				if err != nil {
					return err
				}
				patch.Amount = &amount
			}
			if editFreq != "" {
				freq, ok := model.ParseFrequency(editFreq)
				if !ok {
					return fmt.Errorf("unknown frequency %q", editFreq)
				}
				patch.Frequency = &freq
			}

			if err := update(st, id, patch); err != nil {
				return err
			}
			fmt.Println("  Updated.")
			return nil
		},
	}
	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editAmount, "amount", "", "New amount")
	editCmd.Flags().StringVar(&editFreq, "freq", "", "New frequency")

	group.AddCommand(addCmd, listCmd, rmCmd, editCmd)
	return group
}

func resolveRecurringID(items []model.RecurringItem, arg string) (string, bool) {
	var match string
	for _, item := range items {
		if item.ID == arg {
			return arg, true
		}
		if len(arg) >= 4 && len(item.ID) >= len(arg) && item.ID[:len(arg)] == arg {
			if match != "" {
				return "", false
			}
			match = item.ID
		}
	}
	return match, match != ""
}
