package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"flowstate/internal/config"
	"flowstate/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	snap := st.Snapshot()

	fmt.Println()
	fmt.Println("  Welcome to flowstate!")
	fmt.Println()

	// 1. Monthly income
	fmt.Println("  1. Monthly income")
	fmt.Println("     Your main take-home pay. Add more streams later")
	fmt.Println("     with `flowstate recurring income add`.")
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line != "" {
		amount, err := parseAmount(line)
		if err != nil {
			return err
		}
		if _, err := st.AddRecurringIncome(model.RecurringItem{
			Name:      "Salary",
			Amount:    amount,
			Frequency: model.FrequencyMonthly,
		}); err != nil {
			return err
		}
	}
	fmt.Println()

	// 2. Fixed expenses
	fmt.Println("  2. Fixed monthly expenses")
	fmt.Println("     Rent, bills, subscriptions. One `name amount` per line,")
	fmt.Println("     blank line to finish.")
	for {
		fmt.Print("     > ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			fmt.Println("     Expected `name amount`, e.g. `rent 800`.")
			continue
		}
		amount, err := parseAmount(fields[len(fields)-1])
		if err != nil {
			fmt.Printf("     %v\n", err)
			continue
		}
		name := strings.Join(fields[:len(fields)-1], " ")
		if _, err := st.AddRecurringExpense(model.RecurringItem{
			Name:      name,
			Amount:    amount,
			Frequency: model.FrequencyMonthly,
		}); err != nil {
			return err
		}
	}
	fmt.Println()

	// 3. Savings rate
	fmt.Println("  3. Savings rate")
	fmt.Println("     Percent of leftover income set aside before budgeting.")
	fmt.Printf("     Current: %d%%\n", snap.SavingsRate)
	fmt.Print("     > ")
	line, _ = reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line != "" {
		rate, err := strconv.Atoi(strings.TrimSuffix(line, "%"))
		if err != nil {
			return fmt.Errorf("rate %q is not a number", line)
		}
		if err := st.SetSavingsRate(rate); err != nil {
			return err
		}
	}
	fmt.Println()

	// 4. Spend days
	fmt.Println("  4. Spend days")
	fmt.Println("     (1) Monday to Saturday [default]")
	fmt.Println("     (2) Every day")
	fmt.Println("     (3) Weekdays only")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	var days model.SpendDays
	switch choice {
	case "2":
		days = model.SpendDays{true, true, true, true, true, true, true}
	case "3":
		days = model.SpendDays{false, true, true, true, true, true, false}
	default:
		days = model.DefaultSpendDays()
	}
	if err := st.SetSpendDays(days); err != nil {
		return err
	}
	fmt.Println()

	// 5. Currency
	fmt.Println("  5. Currency")
	fmt.Println("     (1) PHP [default]")
	fmt.Println("     (2) USD")
	fmt.Println("     (3) EUR")
	fmt.Println("     (4) GBP")
	fmt.Println("     (5) JPY")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		err = st.SetCurrency(model.CurrencyUSD)
	case "3":
		err = st.SetCurrency(model.CurrencyEUR)
	case "4":
		err = st.SetCurrency(model.CurrencyGBP)
	case "5":
		err = st.SetCurrency(model.CurrencyJPY)
	default:
		err = st.SetCurrency(model.CurrencyPHP)
	}
	if err != nil {
		return err
	}

	if err := st.SetOnboarded(true); err != nil {
		return err
	}

	// Pin a --data-dir override so later runs find the same database.
	if flagDataDir != "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.General.DataDir = flagDataDir
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("  Saved data directory to %s\n", config.Path())
	}

	fmt.Println()
	fmt.Println("  All set. Run `flowstate` to see your budget.")
	fmt.Println("  Run `flowstate setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
