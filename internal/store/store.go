// Package store holds the canonical in-memory record collections and writes
// every change through an injected persistence port.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"flowstate/internal/model"
)

// Persistence loads and saves the full flat snapshot. Implementations own
// durability; the store only promises to call Save after every mutation.
type Persistence interface {
	Load() (*model.Snapshot, error)
	Save(model.Snapshot) error
}

// Store owns the mutable snapshot. Mutations are serialized by a mutex and
// reads hand out deep copies, so derivations always see a consistent state.
type Store struct {
	mu   sync.Mutex
	snap model.Snapshot
	p    Persistence
}

// New builds a store around the persistence port, loading the previously
// saved snapshot if one exists. A nil port gives a purely in-memory store.
func New(p Persistence) (*Store, error) {
	s := &Store{snap: model.DefaultSnapshot(), p: p}
	if p != nil {
		loaded, err := p.Load()
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		if loaded != nil {
			s.snap = *loaded
		}
	}
	return s, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// persist must be called with the lock held. The in-memory mutation stands
// even when the save fails; the error surfaces to the caller.
func (s *Store) persist() error {
	if s.p == nil {
		return nil
	}
	if err := s.p.Save(s.snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

// UndoDelete is the compensating command for a transaction delete. Applying
// it restores the deleted transaction.
type UndoDelete struct {
	Transaction model.Transaction
}

// AddTransaction assigns a fresh id and prepends tx (newest first). The
// store performs no amount validation; sign conventions are the boundary's
// responsibility.
func (s *Store) AddTransaction(tx model.Transaction) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = newID()
	s.snap.Transactions = append([]model.Transaction{tx}, s.snap.Transactions...)
	return tx, s.persist()
}

// TransactionPatch holds the optional fields of a partial update.
type TransactionPatch struct {
	Amount   *float64
	Category *model.Category
	Note     *string
	Date     *time.Time
}

// UpdateTransaction merges patch into the matching transaction. A missing id
// is a silent no-op.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID != id {
			continue
		}
		tx := &s.snap.Transactions[i]
		if patch.Amount != nil {
			tx.Amount = *patch.Amount
		}
		if patch.Category != nil {
			tx.Category = *patch.Category
		}
		if patch.Note != nil {
			tx.Note = *patch.Note
		}
		if patch.Date != nil {
			tx.Date = *patch.Date
		}
		return s.persist()
	}
	return nil
}

// DeleteTransaction removes the matching transaction and returns the
// compensating command for undo. Returns nil when the id is absent.
func (s *Store) DeleteTransaction(id string) (*UndoDelete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.snap.Transactions {
		if tx.ID != id {
			continue
		}
		s.snap.Transactions = append(s.snap.Transactions[:i], s.snap.Transactions[i+1:]...)
		return &UndoDelete{Transaction: tx}, s.persist()
	}
	return nil, nil
}

// RestoreTransaction re-inserts a previously deleted transaction, keeping
// its original id. Idempotent: if the id already exists the store is left
// unchanged. The collection is re-sorted newest first after insertion.
func (s *Store) RestoreTransaction(tx model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.snap.Transactions {
		if existing.ID == tx.ID {
			return nil
		}
	}
	s.snap.Transactions = append(s.snap.Transactions, tx)
	sort.SliceStable(s.snap.Transactions, func(i, j int) bool {
		return s.snap.Transactions[i].Date.After(s.snap.Transactions[j].Date)
	})
	return s.persist()
}

// ToggleFavoriteTransaction flips the favorite flag on the matching
// transaction. Missing id is a no-op.
func (s *Store) ToggleFavoriteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID == id {
			s.snap.Transactions[i].IsFavorite = !s.snap.Transactions[i].IsFavorite
			return s.persist()
		}
	}
	return nil
}

// RecurringPatch holds the optional fields of a recurring item update.
type RecurringPatch struct {
	Name      *string
	Amount    *float64
	Frequency *model.Frequency
}

// AddRecurringIncome appends item with a fresh id.
func (s *Store) AddRecurringIncome(item model.RecurringItem) (model.RecurringItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.snap.RecurringIncome = append(s.snap.RecurringIncome, item)
	return item, s.persist()
}

// UpdateRecurringIncome merges patch into the matching item.
func (s *Store) UpdateRecurringIncome(id string, patch RecurringPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	applyRecurringPatch(s.snap.RecurringIncome, id, patch)
	return s.persist()
}

// DeleteRecurringIncome removes the matching item; no-op if absent.
func (s *Store) DeleteRecurringIncome(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RecurringIncome = removeRecurring(s.snap.RecurringIncome, id)
	return s.persist()
}

// AddRecurringExpense appends item with a fresh id.
func (s *Store) AddRecurringExpense(item model.RecurringItem) (model.RecurringItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.snap.RecurringExpenses = append(s.snap.RecurringExpenses, item)
	return item, s.persist()
}

// UpdateRecurringExpense merges patch into the matching item.
func (s *Store) UpdateRecurringExpense(id string, patch RecurringPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	applyRecurringPatch(s.snap.RecurringExpenses, id, patch)
	return s.persist()
}

// DeleteRecurringExpense removes the matching item; no-op if absent.
func (s *Store) DeleteRecurringExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RecurringExpenses = removeRecurring(s.snap.RecurringExpenses, id)
	return s.persist()
}

func applyRecurringPatch(items []model.RecurringItem, id string, patch RecurringPatch) {
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Amount != nil {
			items[i].Amount = *patch.Amount
		}
		if patch.Frequency != nil {
			items[i].Frequency = *patch.Frequency
		}
		return
	}
}

func removeRecurring(items []model.RecurringItem, id string) []model.RecurringItem {
	for i, item := range items {
		if item.ID == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// AddSavingsEntry prepends entry with a fresh id. Withdrawals are negative
// amounts; the caller sets WeekStart.
func (s *Store) AddSavingsEntry(entry model.SavingsEntry) (model.SavingsEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = newID()
	s.snap.Savings = append([]model.SavingsEntry{entry}, s.snap.Savings...)
	return entry, s.persist()
}

// AddMonthlyRecord prepends a closed-period record. Records are append-only
// and never mutated afterwards.
func (s *Store) AddMonthlyRecord(rec model.MonthlyRecord) (model.MonthlyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = newID()
	s.snap.MonthlyRecords = append([]model.MonthlyRecord{rec}, s.snap.MonthlyRecords...)
	return rec, s.persist()
}

// AddQuickExpense prepends a quick-expense template with a fresh id.
func (s *Store) AddQuickExpense(qe model.QuickExpense) (model.QuickExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qe.ID = newID()
	qe.UsageCount = 0
	s.snap.QuickExpenses = append([]model.QuickExpense{qe}, s.snap.QuickExpenses...)
	return qe, s.persist()
}

// UseQuickExpense bumps the usage counter of the matching template.
func (s *Store) UseQuickExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.QuickExpenses {
		if s.snap.QuickExpenses[i].ID == id {
			s.snap.QuickExpenses[i].UsageCount++
			return s.persist()
		}
	}
	return nil
}

// ToggleFavoriteQuickExpense flips the favorite flag; no-op if absent.
func (s *Store) ToggleFavoriteQuickExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.QuickExpenses {
		if s.snap.QuickExpenses[i].ID == id {
			s.snap.QuickExpenses[i].IsFavorite = !s.snap.QuickExpenses[i].IsFavorite
			return s.persist()
		}
	}
	return nil
}

// DeleteQuickExpense removes the matching template; no-op if absent.
func (s *Store) DeleteQuickExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, qe := range s.snap.QuickExpenses {
		if qe.ID == id {
			s.snap.QuickExpenses = append(s.snap.QuickExpenses[:i], s.snap.QuickExpenses[i+1:]...)
			break
		}
	}
	return s.persist()
}

// ToggleSpendDay flips one weekday in the spend-day pattern.
func (s *Store) ToggleSpendDay(day time.Weekday) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SpendDays[int(day)] = !s.snap.SpendDays[int(day)]
	return s.persist()
}

// SetSpendDays replaces the whole pattern.
func (s *Store) SetSpendDays(days model.SpendDays) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SpendDays = days
	return s.persist()
}

// SetSavingsRate stores the rate clamped to [0, 100].
func (s *Store) SetSavingsRate(rate int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	s.snap.SavingsRate = rate
	return s.persist()
}

// SetCurrency stores the display currency.
func (s *Store) SetCurrency(c model.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Currency = c
	return s.persist()
}

// SetOnboarded stores the onboarding-complete flag.
func (s *Store) SetOnboarded(done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Onboarded = done
	return s.persist()
}

// ResetAll atomically replaces every collection and scalar with its default.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = model.DefaultSnapshot()
	return s.persist()
}
