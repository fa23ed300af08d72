package store

import (
	"testing"
	"time"

	"flowstate/internal/model"
)

type recordingPersistence struct {
	saves int
	last  model.Snapshot
}

func (r *recordingPersistence) Load() (*model.Snapshot, error) { return nil, nil }
func (r *recordingPersistence) Save(snap model.Snapshot) error {
	r.saves++
	r.last = snap.Clone()
	return nil
}

func newStore(t *testing.T) (*Store, *recordingPersistence) {
	t.Helper()
	p := &recordingPersistence{}
	s, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, p
}

func txOn(t *testing.T, day string, amount float64) model.Transaction {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", day, err)
	}
	return model.Transaction{Amount: amount, Category: model.CategoryFood, Date: d}
}

func TestAddTransactionPrependsAndPersists(t *testing.T) {
	s, p := newStore(t)

	first, err := s.AddTransaction(txOn(t, "2025-06-09", 10))
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	second, err := s.AddTransaction(txOn(t, "2025-06-10", 20))
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("ids not unique: %q vs %q", first.ID, second.ID)
	}

	snap := s.Snapshot()
	if len(snap.Transactions) != 2 || snap.Transactions[0].ID != second.ID {
		t.Fatal("newest transaction should be first")
	}
	if p.saves != 2 {
		t.Fatalf("persisted %d times, want 2", p.saves)
	}
}

func TestUpdateTransactionPartialMerge(t *testing.T) {
	s, _ := newStore(t)
	tx, _ := s.AddTransaction(txOn(t, "2025-06-10", 20))

	amount := 35.0
	note := "coffee"
	if err := s.UpdateTransaction(tx.ID, TransactionPatch{Amount: &amount, Note: &note}); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}

	got := s.Snapshot().Transactions[0]
	if got.Amount != 35 || got.Note != "coffee" {
		t.Fatalf("merged transaction = %+v", got)
	}
	if got.Category != model.CategoryFood {
		t.Fatal("unpatched field changed")
	}

	// Missing id: silent no-op.
	if err := s.UpdateTransaction("missing", TransactionPatch{Amount: &amount}); err != nil {
		t.Fatalf("update of missing id should be a no-op, got %v", err)
	}
}

func TestDeleteReturnsUndoCommand(t *testing.T) {
	s, _ := newStore(t)
	tx, _ := s.AddTransaction(txOn(t, "2025-06-10", 20))

	undo, err := s.DeleteTransaction(tx.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if undo == nil || undo.Transaction.ID != tx.ID {
		t.Fatalf("undo command = %+v, want the deleted transaction", undo)
	}
	if len(s.Snapshot().Transactions) != 0 {
		t.Fatal("transaction not removed")
	}

	// Absent id yields no command and no error.
	undo, err = s.DeleteTransaction(tx.ID)
	if undo != nil || err != nil {
		t.Fatalf("second delete = %+v, %v, want nil, nil", undo, err)
	}
}

func TestRestoreTransactionIdempotent(t *testing.T) {
	s, _ := newStore(t)
	older, _ := s.AddTransaction(txOn(t, "2025-06-08", 5))
	newer, _ := s.AddTransaction(txOn(t, "2025-06-12", 7))

	undo, _ := s.DeleteTransaction(older.ID)

	if err := s.RestoreTransaction(undo.Transaction); err != nil {
		t.Fatalf("RestoreTransaction: %v", err)
	}
	if err := s.RestoreTransaction(undo.Transaction); err != nil {
		t.Fatalf("second RestoreTransaction: %v", err)
	}

	txs := s.Snapshot().Transactions
	if len(txs) != 2 {
		t.Fatalf("restore duplicated: %d transactions, want 2", len(txs))
	}
	// Re-sorted descending by date after restore.
	if txs[0].ID != newer.ID || txs[1].ID != older.ID {
		t.Fatalf("order after restore: %s, %s", txs[0].ID, txs[1].ID)
	}
}

func TestRecurringLifecycle(t *testing.T) {
	s, _ := newStore(t)

	inc, err := s.AddRecurringIncome(model.RecurringItem{Name: "Salary", Amount: 3000, Frequency: model.FrequencyMonthly})
	if err != nil {
		t.Fatalf("AddRecurringIncome: %v", err)
	}
	exp, _ := s.AddRecurringExpense(model.RecurringItem{Name: "Rent", Amount: 900, Frequency: model.FrequencyMonthly})

	amount := 950.0
	if err := s.UpdateRecurringExpense(exp.ID, RecurringPatch{Amount: &amount}); err != nil {
		t.Fatalf("UpdateRecurringExpense: %v", err)
	}
	if got := s.Snapshot().RecurringExpenses[0].Amount; got != 950 {
		t.Fatalf("updated amount = %.0f, want 950", got)
	}

	if err := s.DeleteRecurringIncome(inc.ID); err != nil {
		t.Fatalf("DeleteRecurringIncome: %v", err)
	}
	if len(s.Snapshot().RecurringIncome) != 0 {
		t.Fatal("income not removed")
	}

	// Appended in insertion order.
	s.AddRecurringExpense(model.RecurringItem{Name: "Internet", Amount: 50, Frequency: model.FrequencyMonthly})
	exps := s.Snapshot().RecurringExpenses
	if exps[0].Name != "Rent" || exps[1].Name != "Internet" {
		t.Fatalf("expense order: %s, %s", exps[0].Name, exps[1].Name)
	}
}

func TestSavingsAndMonthlyRecordsPrepend(t *testing.T) {
	s, _ := newStore(t)

	s.AddSavingsEntry(model.SavingsEntry{Amount: 100, Date: time.Now()})
	s.AddSavingsEntry(model.SavingsEntry{Amount: -40, Date: time.Now()})
	sav := s.Snapshot().Savings
	if len(sav) != 2 || sav[0].Amount != -40 {
		t.Fatalf("savings order wrong: %+v", sav)
	}

	s.AddMonthlyRecord(model.MonthlyRecord{Month: "2025-05", Income: 3000})
	s.AddMonthlyRecord(model.MonthlyRecord{Month: "2025-06", Income: 3100})
	recs := s.Snapshot().MonthlyRecords
	if recs[0].Month != "2025-06" {
		t.Fatalf("newest record should be first, got %s", recs[0].Month)
	}
}

func TestQuickExpenses(t *testing.T) {
	s, _ := newStore(t)

	qe, err := s.AddQuickExpense(model.QuickExpense{Amount: 120, Category: model.CategoryFood, Note: "lunch"})
	if err != nil {
		t.Fatalf("AddQuickExpense: %v", err)
	}
	s.UseQuickExpense(qe.ID)
	s.UseQuickExpense(qe.ID)
	s.ToggleFavoriteQuickExpense(qe.ID)

	got := s.Snapshot().QuickExpenses[0]
	if got.UsageCount != 2 || !got.IsFavorite {
		t.Fatalf("quick expense = %+v", got)
	}

	s.DeleteQuickExpense(qe.ID)
	if len(s.Snapshot().QuickExpenses) != 0 {
		t.Fatal("quick expense not removed")
	}
}

func TestScalarSetters(t *testing.T) {
	s, _ := newStore(t)

	s.ToggleSpendDay(time.Sunday)
	if !s.Snapshot().SpendDays.On(time.Sunday) {
		t.Fatal("toggle did not enable Sunday")
	}

	s.SetSavingsRate(150)
	if got := s.Snapshot().SavingsRate; got != 100 {
		t.Fatalf("rate clamped to %d, want 100", got)
	}
	s.SetSavingsRate(-5)
	if got := s.Snapshot().SavingsRate; got != 0 {
		t.Fatalf("rate clamped to %d, want 0", got)
	}

	s.SetCurrency(model.CurrencyEUR)
	s.SetOnboarded(true)
	snap := s.Snapshot()
	if snap.Currency != model.CurrencyEUR || !snap.Onboarded {
		t.Fatalf("scalars = %+v", snap)
	}
}

func TestResetAll(t *testing.T) {
	s, p := newStore(t)
	s.AddTransaction(txOn(t, "2025-06-10", 20))
	s.AddRecurringIncome(model.RecurringItem{Name: "Salary", Amount: 3000, Frequency: model.FrequencyMonthly})
	s.SetSavingsRate(30)
	s.SetOnboarded(true)

	if err := s.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Transactions) != 0 || len(snap.RecurringIncome) != 0 {
		t.Fatal("collections not emptied")
	}
	if snap.SavingsRate != 0 || snap.Onboarded {
		t.Fatal("scalars not reset")
	}
	if snap.SpendDays != model.DefaultSpendDays() {
		t.Fatal("spend days not reset to Mon-Sat")
	}
	if p.last.SavingsRate != 0 {
		t.Fatal("reset not persisted")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newStore(t)
	s.AddTransaction(txOn(t, "2025-06-10", 20))

	snap := s.Snapshot()
	snap.Transactions[0].Amount = 999

	if s.Snapshot().Transactions[0].Amount != 20 {
		t.Fatal("snapshot mutation leaked into the store")
	}
}
