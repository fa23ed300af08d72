package cmd

import (
	"fmt"

	"flowstate/internal/budget"
	"flowstate/internal/cli"
	"flowstate/internal/model"

	"github.com/spf13/cobra"
)

var flagExplain bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Today, this week, and this period at a glance",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&flagExplain, "explain", false, "Show how the numbers are calculated")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
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
	if !snap.Onboarded && len(snap.RecurringIncome) == 0 {
		fmt.Println("\n  Welcome to flowstate!")
		fmt.Println("  Add your income and fixed expenses to start tracking.")
		fmt.Println()
		fmt.Println("  Run `flowstate setup` to get started.")
		return nil
	}

	v := deriveCache.Derive(snap, now)
	sym := snap.Currency.Symbol()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FLOWSTATE  %s  Week %d of 4", cli.FormatDate(now), v.CurrentWeek)))
	fmt.Println()

	if v.IsSpendDay {
		label := "You can spend today"
		if v.TodayRemaining < 0 {
			label = "Over for today"
		}
		fmt.Printf("  %s: %s\n", label,
			cli.Net(cli.FormatMoney(sym, abs(v.TodayRemaining)), v.TodayRemaining))
		fmt.Printf("  Spent today: %s of %s\n",
			cli.FormatMoney(sym, v.TodaySpent), cli.FormatMoney(sym, v.AdjustedDailyTarget))
	} else {
		fmt.Println("  Rest day - no spending planned.")
		if v.TodaySpent > 0 {
			fmt.Printf("  Spent today anyway: %s\n", cli.FormatMoney(sym, v.TodaySpent))
		}
	}
	fmt.Println()

	fmt.Printf("  Week:   %s left of %s  (%s spent, %s)\n",
		cli.Net(cli.FormatMoney(sym, v.WeeklyRemaining), v.WeeklyRemaining),
		cli.FormatMoney(sym, v.WeeklyBucket),
		cli.FormatMoney(sym, v.ThisWeekSpent),
		cli.FormatPercent(v.WeeklyProgress))
	fmt.Printf("  Period: %s left of %s  (%d days left in month)\n",
		cli.Net(cli.FormatMoney(sym, v.MonthlyRemaining), v.MonthlyRemaining),
		cli.FormatMoney(sym, v.EffectiveMonthlyBudget),
		v.DaysLeftInMonth)
	if v.PastWeekDebt > 0 {
		fmt.Printf("  Debt:   %s carried from past weeks (%s absorbed per week)\n",
			cli.Over(cli.FormatMoney(sym, v.PastWeekDebt)),
			cli.FormatMoney(sym, v.DebtPerWeek))
	}
	fmt.Println()

	rows := make([][]string, 0, 4)
	for _, w := range v.Weeks {
		net := "-"
		if w.Net != nil {
			net = cli.FormatSignedMoney(sym, *w.Net)
		}
		marker := ""
		if w.Status == budget.WeekCurrent {
			marker = " *"
		}
		rows = append(rows, []string{
			fmt.Sprintf("Week %d%s", w.Number, marker),
			cli.FormatDate(w.Start),
			cli.FormatMoney(sym, w.Spent),
			net,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week", "Starts", "Spent", "Net"},
		Rows:    rows,
	}))

	if flagExplain {
		printExplain(sym, v)
	}

	if len(v.PeriodByCategory) > 0 {
		fmt.Println()
		catRows := make([][]string, 0, len(v.PeriodByCategory))
		for _, cat := range categoriesInOrder(v) {
			catRows = append(catRows, []string{
				string(cat),
				cli.FormatMoney(sym, v.WeekByCategory[cat]),
				cli.FormatMoney(sym, v.PeriodByCategory[cat]),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By category",
			Headers: []string{"Category", "Week", "Period"},
			Rows:    catRows,
		}))
	}

	return nil
}

func printExplain(sym string, v budget.View) {
	fmt.Println()
	fmt.Println("  How it's calculated")
	fmt.Printf("    Recurring income         %s\n", cli.FormatMoney(sym, v.TotalMonthlyIncome))
	fmt.Printf("    - Fixed expenses         %s\n", cli.FormatMoney(sym, v.TotalMonthlyExpenses))
	fmt.Printf("    = Fixed net              %s\n", cli.FormatMoney(sym, v.FixedNet))
	if v.SavingsRate > 0 {
		fmt.Printf("    - Savings target (%d%%)   %s\n", v.SavingsRate, cli.FormatMoney(sym, v.TargetMonthlySavings))
	}
	fmt.Printf("    / 4 weeks                %s per week\n", cli.FormatMoney(sym, v.BaseWeeklyBucket))
	if v.DebtPerWeek > 0 {
		fmt.Printf("    - Debt share             %s\n", cli.FormatMoney(sym, v.DebtPerWeek))
		fmt.Printf("    = This week's bucket     %s\n", cli.FormatMoney(sym, v.WeeklyBucket))
	}
	fmt.Printf("    / %d spend days           %s per day\n", v.SpendDaysPerWeek, cli.FormatMoney(sym, v.BaseDailyTarget))
	fmt.Printf("    Adjusted for the week    %s today\n", cli.FormatMoney(sym, v.AdjustedDailyTarget))
}

// categoriesInOrder lists period categories in the fixed display order.
func categoriesInOrder(v budget.View) []model.Category {
	var out []model.Category
	for _, cat := range model.Categories() {
		if _, ok := v.PeriodByCategory[cat]; ok {
			out = append(out, cat)
		}
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
