package calendar

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestWeekStart(t *testing.T) {
	// 2025-06-18 is a Wednesday; its week starts Sunday 2025-06-15.
	got := WeekStart(date(t, "2025-06-18").Add(15 * time.Hour))
	want := date(t, "2025-06-15")
	if !got.Equal(want) {
		t.Fatalf("WeekStart = %v, want %v", got, want)
	}

	// A Sunday is its own week start.
	if got := WeekStart(date(t, "2025-06-15")); !got.Equal(want) {
		t.Fatalf("WeekStart(Sunday) = %v, want %v", got, want)
	}
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(date(t, "2025-06-18"))
	if !got.Equal(date(t, "2025-06-01")) {
		t.Fatalf("MonthStart = %v, want 2025-06-01", got)
	}
}

func TestDaysRemainingInMonth(t *testing.T) {
	cases := []struct {
		day  string
		want int
	}{
		{"2025-06-18", 12}, // June has 30 days
		{"2025-06-30", 0},
		{"2025-02-01", 27}, // non-leap February
		{"2024-02-01", 28}, // leap February
	}
	for _, c := range cases {
		if got := DaysRemainingInMonth(date(t, c.day)); got != c.want {
			t.Errorf("DaysRemainingInMonth(%s) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestDaysElapsedInWeek(t *testing.T) {
	if got := DaysElapsedInWeek(date(t, "2025-06-15")); got != 1 { // Sunday
		t.Fatalf("Sunday elapsed = %d, want 1", got)
	}
	if got := DaysElapsedInWeek(date(t, "2025-06-21")); got != 7 { // Saturday
		t.Fatalf("Saturday elapsed = %d, want 7", got)
	}
}

func TestPeriodStart(t *testing.T) {
	// June 2025: the 1st is a Sunday, so the period starts on it.
	if got := PeriodStart(date(t, "2025-06-20")); !got.Equal(date(t, "2025-06-01")) {
		t.Fatalf("PeriodStart(June) = %v, want 2025-06-01", got)
	}
	// July 2025: the 1st is a Tuesday; period starts Sunday June 29.
	if got := PeriodStart(date(t, "2025-07-15")); !got.Equal(date(t, "2025-06-29")) {
		t.Fatalf("PeriodStart(July) = %v, want 2025-06-29", got)
	}
	if got := PeriodEnd(date(t, "2025-07-15")); !got.Equal(date(t, "2025-07-27")) {
		t.Fatalf("PeriodEnd(July) = %v, want 2025-07-27", got)
	}
}

func TestWeekNumberInMonth(t *testing.T) {
	cases := []struct {
		day  string
		want int
	}{
		{"2025-06-01", 1},
		{"2025-06-07", 1},
		{"2025-06-08", 2},
		{"2025-06-15", 3},
		{"2025-06-22", 4},
		{"2025-06-28", 4}, // end of bucket 4
		{"2025-06-30", 4}, // past the 28-day window, clamped
	}
	for _, c := range cases {
		if got := WeekNumberInMonth(date(t, c.day)); got != c.want {
			t.Errorf("WeekNumberInMonth(%s) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestWeekBoundsHalfOpen(t *testing.T) {
	now := date(t, "2025-06-10")
	start, end := WeekBounds(now, 1)
	if !start.Equal(date(t, "2025-06-01")) || !end.Equal(date(t, "2025-06-08")) {
		t.Fatalf("WeekBounds(1) = [%v, %v)", start, end)
	}

	// An instant exactly at end belongs to week 2.
	if got := WeekNumberInMonth(end); got != 2 {
		t.Fatalf("week at boundary = %d, want 2", got)
	}

	start2, _ := WeekBounds(now, 2)
	if !start2.Equal(end) {
		t.Fatalf("week 2 start %v != week 1 end %v", start2, end)
	}
}

func TestSameDay(t *testing.T) {
	a := date(t, "2025-06-10").Add(2 * time.Hour)
	b := date(t, "2025-06-10").Add(23 * time.Hour)
	if !SameDay(a, b) {
		t.Fatal("SameDay = false for same calendar day")
	}
	if SameDay(a, date(t, "2025-06-11")) {
		t.Fatal("SameDay = true across days")
	}
}
