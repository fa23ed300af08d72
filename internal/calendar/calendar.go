// Package calendar provides the date arithmetic the budget engine is built
// on. Weeks run Sunday through Saturday. The budget period is a fixed 28-day
// window starting on the Sunday on or before the 1st of the month; it is not
// the calendar month, and the mismatch is intentional so the monthly budget
// always splits into exactly 4 weekly buckets.
//
// All range checks are half-open [start, end): an instant exactly on a
// boundary belongs to the later window.
package calendar

import "time"

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Sunday of t's week at midnight.
func WeekStart(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, -int(t.Weekday()))
}

// MonthStart returns the 1st of t's month at midnight.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysRemainingInMonth returns how many days are left after today.
func DaysRemainingInMonth(t time.Time) int {
	lastDay := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return lastDay - t.Day()
}

// DaysElapsedInWeek returns 1-7, counting Sunday as 1.
func DaysElapsedInWeek(t time.Time) int {
	return int(t.Weekday()) + 1
}

// PeriodStart returns the start of the budget period containing t's month:
// the Sunday on or before the 1st.
func PeriodStart(t time.Time) time.Time {
	return WeekStart(MonthStart(t))
}

// PeriodEnd returns PeriodStart + 28 days.
func PeriodEnd(t time.Time) time.Time {
	return PeriodStart(t).AddDate(0, 0, 28)
}

// WeekNumberInMonth returns which of the 4 weekly buckets t falls in,
// clamped to [1, 4].
func WeekNumberInMonth(t time.Time) int {
	start := PeriodStart(t)
	day := Midnight(t)
	for w := 1; w < 4; w++ {
		if day.Before(start.AddDate(0, 0, 7*w)) {
			return w
		}
	}
	return 4
}

// WeekBounds returns the half-open [start, end) window of bucket weekNum
// (1-4) within the budget period containing t.
func WeekBounds(t time.Time, weekNum int) (start, end time.Time) {
	ps := PeriodStart(t)
	return ps.AddDate(0, 0, (weekNum-1)*7), ps.AddDate(0, 0, weekNum*7)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
