package cmd

import (
	"fmt"

	"flowstate/internal/cli"
	"flowstate/internal/model"

	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Close out months and review history",
}

var monthCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Archive the current month as a record",
	Args:  cobra.NoArgs,
	RunE:  runMonthClose,
}

var monthListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived monthly records",
	Args:  cobra.NoArgs,
	RunE:  runMonthList,
}

func init() {
	monthCmd.AddCommand(monthCloseCmd, monthListCmd)
	rootCmd.AddCommand(monthCmd)
}

func runMonthClose(_ *cobra.Command, _ []string) error {
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
	v := deriveCache.Derive(snap, now)

	month := now.Format("2006-01")
	for _, rec := range snap.MonthlyRecords {
		if rec.Month == month {
			return fmt.Errorf("month %s is already closed", month)
		}
	}

	rec, err := st.AddMonthlyRecord(model.MonthlyRecord{
		Month:            month,
		Income:           v.TotalMonthlyIncome + v.ThisMonthIncome,
		FixedExpenses:    v.TotalMonthlyExpenses,
		VariableExpenses: v.ThisMonthSpent,
		SavedAmount:      v.MonthlyRemaining,
		Date:             now,
	})
	if err != nil {
		return err
	}

	sym := snap.Currency.Symbol()
	fmt.Printf("Closed %s: spent %s of %s, %s left over\n",
		rec.Month,
		cli.FormatMoney(sym, rec.VariableExpenses),
		cli.FormatMoney(sym, v.EffectiveMonthlyBudget),
		cli.FormatMoney(sym, rec.SavedAmount))
	return nil
}

func runMonthList(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	snap := st.Snapshot()
	if len(snap.MonthlyRecords) == 0 {
		hint("No closed months yet. Archive one with `flowstate month close`.\n")
		return nil
	}

	sym := snap.Currency.Symbol()
	tbl := cli.Table{
		Title:   "MONTHLY HISTORY",
		Headers: []string{"Month", "Income", "Fixed", "Variable", "Left over"},
	}
	for _, rec := range snap.MonthlyRecords {
		tbl.Rows = append(tbl.Rows, []string{
			rec.Month,
			cli.FormatMoney(sym, rec.Income),
			cli.FormatMoney(sym, rec.FixedExpenses),
			cli.FormatMoney(sym, rec.VariableExpenses),
			cli.FormatSignedMoney(sym, rec.SavedAmount),
		})
	}
	fmt.Println(cli.RenderTable(tbl))
	return nil
}
