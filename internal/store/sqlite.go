package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"flowstate/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SnapshotDB is the SQLite-backed implementation of the Persistence port.
// The snapshot is written by whole-object replacement inside one database
// transaction.
type SnapshotDB struct {
	db *sql.DB
}

// OpenSnapshotDB opens or creates the snapshot database at the given path.
func OpenSnapshotDB(dbPath string) (*SnapshotDB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &SnapshotDB{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the snapshot database.
func (s *SnapshotDB) Close() error {
	return s.db.Close()
}

// migrate brings the on-disk schema version up to schemaVersion. Databases
// written by a newer build are refused rather than silently rewritten.
func (s *SnapshotDB) migrate() error {
	version := 0
	if v, ok, err := s.setting("schema_version"); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	} else if ok {
		version, _ = strconv.Atoi(v)
	}

	if version > schemaVersion {
		return fmt.Errorf("snapshot db has schema version %d, this build supports up to %d", version, schemaVersion)
	}

	// Migration steps slot in here as the schema evolves; v0 is a fresh db.
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES ('schema_version', ?)`,
		strconv.Itoa(schemaVersion))
	if err != nil {
		return fmt.Errorf("writing schema version: %w", err)
	}
	return nil
}

func (s *SnapshotDB) setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Load reads the persisted snapshot. Returns nil for a database no snapshot
// was ever saved to.
func (s *SnapshotDB) Load() (*model.Snapshot, error) {
	saved, ok, err := s.setting("currency")
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if !ok {
		return nil, nil
	}

	snap := model.DefaultSnapshot()
	if c, valid := model.ParseCurrency(saved); valid {
		snap.Currency = c
	}
	if v, ok, err := s.setting("savings_rate"); err != nil {
		return nil, err
	} else if ok {
		snap.SavingsRate, _ = strconv.Atoi(v)
	}
	if v, ok, err := s.setting("spend_days"); err != nil {
		return nil, err
	} else if ok {
		snap.SpendDays = decodeSpendDays(v)
	}
	if v, ok, err := s.setting("onboarded"); err != nil {
		return nil, err
	} else if ok {
		snap.Onboarded = v == "1"
	}

	if err := s.loadTransactions(&snap); err != nil {
		return nil, err
	}
	if err := s.loadRecurring(&snap); err != nil {
		return nil, err
	}
	if err := s.loadSavings(&snap); err != nil {
		return nil, err
	}
	if err := s.loadMonthlyRecords(&snap); err != nil {
		return nil, err
	}
	if err := s.loadQuickExpenses(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *SnapshotDB) loadTransactions(snap *model.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, amount, category, note, date, is_favorite
		FROM transactions ORDER BY position`)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var tx model.Transaction
		var dateStr, category string
		var fav int
		if err := rows.Scan(&tx.ID, &tx.Amount, &category, &tx.Note, &dateStr, &fav); err != nil {
			return err
		}
		tx.Category = model.Category(category)
		tx.Date = parseTime(dateStr)
		tx.IsFavorite = fav != 0
		snap.Transactions = append(snap.Transactions, tx)
	}
	return rows.Err()
}

func (s *SnapshotDB) loadRecurring(snap *model.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, kind, name, amount, frequency
		FROM recurring ORDER BY position`)
	if err != nil {
		return fmt.Errorf("loading recurring items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var item model.RecurringItem
		var kind, freq string
		if err := rows.Scan(&item.ID, &kind, &item.Name, &item.Amount, &freq); err != nil {
			return err
		}
		item.Frequency = model.Frequency(freq)
		if kind == "income" {
			snap.RecurringIncome = append(snap.RecurringIncome, item)
		} else {
			snap.RecurringExpenses = append(snap.RecurringExpenses, item)
		}
	}
	return rows.Err()
}

func (s *SnapshotDB) loadSavings(snap *model.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, week_start, amount, date
		FROM savings ORDER BY position`)
	if err != nil {
		return fmt.Errorf("loading savings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var entry model.SavingsEntry
		var weekStart, dateStr string
		if err := rows.Scan(&entry.ID, &weekStart, &entry.Amount, &dateStr); err != nil {
			return err
		}
		entry.WeekStart = parseTime(weekStart)
		entry.Date = parseTime(dateStr)
		snap.Savings = append(snap.Savings, entry)
	}
	return rows.Err()
}

func (s *SnapshotDB) loadMonthlyRecords(snap *model.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, month, income, fixed_expenses, variable_expenses, saved_amount, date
		FROM monthly_records ORDER BY position`)
	if err != nil {
		return fmt.Errorf("loading monthly records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var rec model.MonthlyRecord
		var dateStr string
		if err := rows.Scan(&rec.ID, &rec.Month, &rec.Income, &rec.FixedExpenses,
			&rec.VariableExpenses, &rec.SavedAmount, &dateStr); err != nil {
			return err
		}
		rec.Date = parseTime(dateStr)
		snap.MonthlyRecords = append(snap.MonthlyRecords, rec)
	}
	return rows.Err()
}

func (s *SnapshotDB) loadQuickExpenses(snap *model.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, amount, category, note, usage_count, is_favorite
		FROM quick_expenses ORDER BY position`)
	if err != nil {
		return fmt.Errorf("loading quick expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var qe model.QuickExpense
		var category string
		var fav int
		if err := rows.Scan(&qe.ID, &qe.Amount, &category, &qe.Note, &qe.UsageCount, &fav); err != nil {
			return err
		}
		qe.Category = model.Category(category)
		qe.IsFavorite = fav != 0
		snap.QuickExpenses = append(snap.QuickExpenses, qe)
	}
	return rows.Err()
}

// Save replaces the whole persisted snapshot in one transaction.
func (s *SnapshotDB) Save(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"transactions", "recurring", "savings", "monthly_records", "quick_expenses"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, t := range snap.Transactions {
		_, err := tx.Exec(`INSERT INTO transactions (id, position, amount, category, note, date, is_favorite)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Amount, string(t.Category), t.Note, formatTime(t.Date), boolInt(t.IsFavorite))
		if err != nil {
			return fmt.Errorf("saving transaction: %w", err)
		}
	}

	for i, item := range snap.RecurringIncome {
		if err := insertRecurring(tx, item, "income", i); err != nil {
			return err
		}
	}
	for i, item := range snap.RecurringExpenses {
		if err := insertRecurring(tx, item, "expense", i); err != nil {
			return err
		}
	}

	for i, entry := range snap.Savings {
		_, err := tx.Exec(`INSERT INTO savings (id, position, week_start, amount, date)
			VALUES (?, ?, ?, ?, ?)`,
			entry.ID, i, formatTime(entry.WeekStart), entry.Amount, formatTime(entry.Date))
		if err != nil {
			return fmt.Errorf("saving savings entry: %w", err)
		}
	}

	for i, rec := range snap.MonthlyRecords {
		_, err := tx.Exec(`INSERT INTO monthly_records
			(id, position, month, income, fixed_expenses, variable_expenses, saved_amount, date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, i, rec.Month, rec.Income, rec.FixedExpenses, rec.VariableExpenses,
			rec.SavedAmount, formatTime(rec.Date))
		if err != nil {
			return fmt.Errorf("saving monthly record: %w", err)
		}
	}

	for i, qe := range snap.QuickExpenses {
		_, err := tx.Exec(`INSERT INTO quick_expenses (id, position, amount, category, note, usage_count, is_favorite)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			qe.ID, i, qe.Amount, string(qe.Category), qe.Note, qe.UsageCount, boolInt(qe.IsFavorite))
		if err != nil {
			return fmt.Errorf("saving quick expense: %w", err)
		}
	}

	settings := map[string]string{
		"currency":     string(snap.Currency),
		"savings_rate": strconv.Itoa(snap.SavingsRate),
		"spend_days":   encodeSpendDays(snap.SpendDays),
		"onboarded":    boolStr(snap.Onboarded),
	}
	for key, value := range settings {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("saving setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func insertRecurring(tx *sql.Tx, item model.RecurringItem, kind string, position int) error {
	_, err := tx.Exec(`INSERT INTO recurring (id, kind, position, name, amount, frequency)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, kind, position, item.Name, item.Amount, string(item.Frequency))
	if err != nil {
		return fmt.Errorf("saving recurring %s: %w", kind, err)
	}
	return nil
}

// encodeSpendDays packs the pattern as a 7-char mask, Sunday first.
func encodeSpendDays(days model.SpendDays) string {
	mask := make([]byte, 7)
	for i, on := range days {
		if on {
			mask[i] = '1'
		} else {
			mask[i] = '0'
		}
	}
	return string(mask)
}

func decodeSpendDays(mask string) model.SpendDays {
	if len(mask) != 7 {
		return model.DefaultSpendDays()
	}
	var days model.SpendDays
	for i := 0; i < 7; i++ {
		days[i] = mask[i] == '1'
	}
	return days
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t.Local()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
