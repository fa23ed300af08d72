// Package model defines the domain types for flowstate budgeting data.
package model

import "time"

// Category classifies a transaction.
type Category string

// Transaction categories.
const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryUtilities     Category = "utilities"
	CategoryOther         Category = "other"
)

// Categories returns all transaction categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryEntertainment,
		CategoryShopping, CategoryHealth, CategoryUtilities, CategoryOther,
	}
}

// ParseCategory returns the category matching s, and whether it is valid.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Frequency is how often a recurring item repeats.
type Frequency string

// Recurring item frequencies.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency returns the frequency matching s, and whether it is valid.
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), true
	}
	return "", false
}

// Currency is a display currency. No conversion is ever applied.
type Currency string

// Supported display currencies.
const (
	CurrencyUSD Currency = "USD"
	CurrencyPHP Currency = "PHP"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyPHP:
		return "₱"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	case CurrencyJPY:
		return "¥"
	}
	return "$"
}

// ParseCurrency returns the currency matching s, and whether it is valid.
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyPHP, CurrencyEUR, CurrencyGBP, CurrencyJPY:
		return Currency(s), true
	}
	return "", false
}

// Transaction is a single spend or ad-hoc income entry.
// Amount is signed: positive = expense, negative = income (e.g., a gift).
type Transaction struct {
	ID         string
	Amount     float64
	Category   Category
	Note       string
	Date       time.Time
	IsFavorite bool
}

// RecurringItem is a recurring income or fixed-expense line.
type RecurringItem struct {
	ID        string
	Name      string
	Amount    float64
	Frequency Frequency
}

// MonthlyAmount normalizes the item to a monthly-equivalent amount.
// Daily items use a flat 30 days and weekly items a flat 4 weeks; the
// approximation is deliberate and everything downstream depends on it.
func (i RecurringItem) MonthlyAmount() float64 {
	switch i.Frequency {
	case FrequencyDaily:
		return i.Amount * 30
	case FrequencyWeekly:
		return i.Amount * 4
	default:
		return i.Amount
	}
}

// SavingsEntry is one banked (positive) or withdrawn (negative) amount.
type SavingsEntry struct {
	ID        string
	WeekStart time.Time
	Amount    float64
	Date      time.Time
}

// MonthlyRecord is an append-only snapshot of a closed-out period.
type MonthlyRecord struct {
	ID               string
	Month            string // YYYY-MM
	Income           float64
	FixedExpenses    float64
	VariableExpenses float64
	SavedAmount      float64
	Date             time.Time
}

// QuickExpense is a saved expense template for fast entry.
type QuickExpense struct {
	ID         string
	Amount     float64
	Category   Category
	Note       string
	UsageCount int
	IsFavorite bool
}

// SpendDays marks which weekdays the user plans to spend on,
// indexed by time.Weekday (Sunday = 0).
type SpendDays [7]bool

// DefaultSpendDays returns the default pattern: Monday through Saturday.
func DefaultSpendDays() SpendDays {
	return SpendDays{false, true, true, true, true, true, true}
}

// On reports whether d is a spend day.
func (s SpendDays) On(d time.Weekday) bool {
	return s[int(d)]
}

// Count returns how many spend days are selected per week.
func (s SpendDays) Count() int {
	n := 0
	for _, on := range s {
		if on {
			n++
		}
	}
	return n
}

// RemainingFrom counts spend days from d (inclusive) through Saturday.
func (s SpendDays) RemainingFrom(d time.Weekday) int {
	n := 0
	for day := int(d); day <= int(time.Saturday); day++ {
		if s[day] {
			n++
		}
	}
	return n
}

// PassedBefore counts spend days from Sunday up to but excluding d.
func (s SpendDays) PassedBefore(d time.Weekday) int {
	n := 0
	for day := 0; day < int(d); day++ {
		if s[day] {
			n++
		}
	}
	return n
}

// Snapshot is the full flat record store state. The store mutates it; the
// budget engine only ever reads a copy.
type Snapshot struct {
	Transactions      []Transaction
	RecurringIncome   []RecurringItem
	RecurringExpenses []RecurringItem
	Savings           []SavingsEntry
	MonthlyRecords    []MonthlyRecord
	QuickExpenses     []QuickExpense

	SpendDays   SpendDays
	SavingsRate int // 0-100
	Currency    Currency
	Onboarded   bool
}

// DefaultSnapshot returns the initial state used on first run and after a
// full reset.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		SpendDays:   DefaultSpendDays(),
		SavingsRate: 0,
		Currency:    CurrencyPHP,
		Onboarded:   false,
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.RecurringIncome = append([]RecurringItem(nil), s.RecurringIncome...)
	out.RecurringExpenses = append([]RecurringItem(nil), s.RecurringExpenses...)
	out.Savings = append([]SavingsEntry(nil), s.Savings...)
	out.MonthlyRecords = append([]MonthlyRecord(nil), s.MonthlyRecords...)
	out.QuickExpenses = append([]QuickExpense(nil), s.QuickExpenses...)
	return out
}
