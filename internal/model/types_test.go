package model

import (
	"testing"
	"time"
)

func TestMonthlyAmount(t *testing.T) {
	cases := []struct {
		freq   Frequency
		amount float64
		want   float64
	}{
		{FrequencyDaily, 10, 300},
		{FrequencyWeekly, 100, 400},
		{FrequencyMonthly, 2500, 2500},
	}
	for _, c := range cases {
		item := RecurringItem{Amount: c.amount, Frequency: c.freq}
		if got := item.MonthlyAmount(); got != c.want {
			t.Errorf("MonthlyAmount(%s, %.0f) = %.2f, want %.2f", c.freq, c.amount, got, c.want)
		}
	}

	// Missing frequency falls back to monthly.
	item := RecurringItem{Amount: 800}
	if got := item.MonthlyAmount(); got != 800 {
		t.Fatalf("MonthlyAmount with empty frequency = %.2f, want 800", got)
	}
}

func TestSpendDaysCounts(t *testing.T) {
	days := DefaultSpendDays()
	if got := days.Count(); got != 6 {
		t.Fatalf("default Count = %d, want 6 (Mon-Sat)", got)
	}
	if days.On(time.Sunday) {
		t.Fatal("Sunday is a spend day by default")
	}

	// From Thursday: Thu, Fri, Sat.
	if got := days.RemainingFrom(time.Thursday); got != 3 {
		t.Fatalf("RemainingFrom(Thursday) = %d, want 3", got)
	}
	// Before Thursday: Mon, Tue, Wed (Sunday off).
	if got := days.PassedBefore(time.Thursday); got != 3 {
		t.Fatalf("PassedBefore(Thursday) = %d, want 3", got)
	}

	var none SpendDays
	if none.Count() != 0 || none.RemainingFrom(time.Sunday) != 0 {
		t.Fatal("empty SpendDays should count zero everywhere")
	}
}

func TestParseHelpers(t *testing.T) {
	if c, ok := ParseCategory("transport"); !ok || c != CategoryTransport {
		t.Fatalf("ParseCategory(transport) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("gambling"); ok {
		t.Fatal("ParseCategory accepted an unknown category")
	}
	if f, ok := ParseFrequency("weekly"); !ok || f != FrequencyWeekly {
		t.Fatalf("ParseFrequency(weekly) = %v, %v", f, ok)
	}
	if cur, ok := ParseCurrency("EUR"); !ok || cur.Symbol() != "€" {
		t.Fatalf("ParseCurrency(EUR) = %v, %v", cur, ok)
	}
}

func TestSnapshotClone(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Transactions = []Transaction{{ID: "a", Amount: 10, Category: CategoryFood}}

	clone := snap.Clone()
	clone.Transactions[0].Amount = 99
	clone.Transactions = append(clone.Transactions, Transaction{ID: "b"})

	if snap.Transactions[0].Amount != 10 {
		t.Fatal("clone mutation leaked into the original")
	}
	if len(snap.Transactions) != 1 {
		t.Fatal("clone append changed the original length")
	}
}
