package cmd

import (
	"fmt"
	"strings"
	"time"

	"flowstate/internal/cli"

	"github.com/spf13/cobra"
)

var spendDaysCmd = &cobra.Command{
	Use:   "spenddays [day]",
	Short: "Show the spend-day pattern, or toggle one day",
	Long:  "With no argument, shows which weekdays are planned spend days. With a day name (sun..sat), toggles it.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpendDays,
}

func init() {
	rootCmd.AddCommand(spendDaysCmd)
}

func runSpendDays(_ *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if len(args) == 1 {
		day, ok := parseWeekday(args[0])
		if !ok {
			return fmt.Errorf("unknown day %q (sun, mon, tue, wed, thu, fri, sat)", args[0])
		}
		if err := st.ToggleSpendDay(day); err != nil {
			return err
		}
	}

	days := st.Snapshot().SpendDays
	fmt.Print("\n  ")
	for d := time.Sunday; d <= time.Saturday; d++ {
		label := cli.FormatDayOfWeek(d)
		if days.On(d) {
			fmt.Printf("[%s] ", label)
		} else {
			fmt.Printf(" %s  ", cli.Muted(label))
		}
	}
	fmt.Printf("\n  %d spend days per week\n", days.Count())
	if days.Count() == 0 {
		hint("  With no spend days selected, daily targets are zero.\n")
	}
	return nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "sun", "sunday":
		return time.Sunday, true
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	}
	return 0, false
}
