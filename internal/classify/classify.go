// Package classify holds the pure predicates and sums the budget engine uses
// to partition transactions by time window and sign.
package classify

import (
	"time"

	"flowstate/internal/calendar"
	"flowstate/internal/model"
)

// IsExpense reports whether tx is an expense (positive amount).
func IsExpense(tx model.Transaction) bool {
	return tx.Amount > 0
}

// IsIncome reports whether tx is an ad-hoc income entry (negative amount).
func IsIncome(tx model.Transaction) bool {
	return tx.Amount < 0
}

// InWindow reports whether tx falls within [start, end).
func InWindow(tx model.Transaction, start, end time.Time) bool {
	return !tx.Date.Before(start) && tx.Date.Before(end)
}

// IsToday reports whether tx is dated on the same calendar day as now.
func IsToday(tx model.Transaction, now time.Time) bool {
	return calendar.SameDay(tx.Date, now)
}

// Filter returns the transactions for which keep returns true.
func Filter(txs []model.Transaction, keep func(model.Transaction) bool) []model.Transaction {
	var result []model.Transaction
	for _, tx := range txs {
		if keep(tx) {
			result = append(result, tx)
		}
	}
	return result
}

// Between returns the transactions dated within [start, end).
func Between(txs []model.Transaction, start, end time.Time) []model.Transaction {
	return Filter(txs, func(tx model.Transaction) bool {
		return InWindow(tx, start, end)
	})
}

// OnDay returns the transactions dated on the same calendar day as now.
func OnDay(txs []model.Transaction, now time.Time) []model.Transaction {
	return Filter(txs, func(tx model.Transaction) bool {
		return IsToday(tx, now)
	})
}

// Sum returns the signed total of all amounts.
func Sum(txs []model.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		total += tx.Amount
	}
	return total
}

// ExpenseSum returns the total of positive amounts only.
func ExpenseSum(txs []model.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if IsExpense(tx) {
			total += tx.Amount
		}
	}
	return total
}

// IncomeSum returns the total magnitude of negative amounts. Expense and
// income sums are never netted by addition; netting is always an explicit
// subtraction done by the engine.
func IncomeSum(txs []model.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if IsIncome(tx) {
			total += -tx.Amount
		}
	}
	return total
}
