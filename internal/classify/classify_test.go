package classify

import (
	"testing"
	"time"

	"flowstate/internal/model"
)

func tx(amount float64, day string) model.Transaction {
	d, _ := time.ParseInLocation("2006-01-02", day, time.Local)
	return model.Transaction{ID: day, Amount: amount, Category: model.CategoryOther, Date: d}
}

func TestSignPredicates(t *testing.T) {
	if !IsExpense(tx(25, "2025-06-10")) {
		t.Fatal("positive amount should be an expense")
	}
	if !IsIncome(tx(-100, "2025-06-10")) {
		t.Fatal("negative amount should be income")
	}
	zero := tx(0, "2025-06-10")
	if IsExpense(zero) || IsIncome(zero) {
		t.Fatal("zero amount is neither expense nor income")
	}
}

func TestInWindowHalfOpen(t *testing.T) {
	start, _ := time.ParseInLocation("2006-01-02", "2025-06-08", time.Local)
	end := start.AddDate(0, 0, 7)

	if !InWindow(tx(10, "2025-06-08"), start, end) {
		t.Fatal("transaction at start should be inside")
	}
	if InWindow(tx(10, "2025-06-15"), start, end) {
		t.Fatal("transaction exactly at end should be outside")
	}
	if InWindow(tx(10, "2025-06-07"), start, end) {
		t.Fatal("transaction before start should be outside")
	}
}

func TestSums(t *testing.T) {
	txs := []model.Transaction{
		tx(100, "2025-06-09"),
		tx(50, "2025-06-10"),
		tx(-200, "2025-06-10"), // gift recorded as negative
	}

	if got := ExpenseSum(txs); got != 150 {
		t.Fatalf("ExpenseSum = %.2f, want 150", got)
	}
	if got := IncomeSum(txs); got != 200 {
		t.Fatalf("IncomeSum = %.2f, want 200", got)
	}
	if got := Sum(txs); got != -50 {
		t.Fatalf("Sum = %.2f, want -50", got)
	}
}

func TestOnDay(t *testing.T) {
	now, _ := time.ParseInLocation("2006-01-02 15:04", "2025-06-10 18:30", time.Local)
	txs := []model.Transaction{
		tx(10, "2025-06-09"),
		tx(20, "2025-06-10"),
		tx(30, "2025-06-11"),
	}
	today := OnDay(txs, now)
	if len(today) != 1 || today[0].Amount != 20 {
		t.Fatalf("OnDay returned %v, want the single 2025-06-10 transaction", today)
	}
}
