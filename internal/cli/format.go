// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"time"
)

// FormatMoney formats an amount with the currency symbol, tightening the
// precision as values grow. e.g., "₱71.43", "₱450", "₱2,000"
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(symbol, -amount)
	}
	if amount >= 1000 {
		return symbol + formatThousands(int64(math.Round(amount)))
	}
	if amount >= 100 {
		return fmt.Sprintf("%s%.0f", symbol, amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// FormatSignedMoney always includes a sign, for deltas and nets.
func FormatSignedMoney(symbol string, amount float64) string {
	if amount >= 0 {
		return "+" + FormatMoney(symbol, amount)
	}
	return "-" + FormatMoney(symbol, -amount)
}

func formatThousands(n int64) string {
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatThousands(n/1000), n%1000)
}

// FormatPercent formats a 0-100 float as a percentage string.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatDate formats a date for display. e.g., "Tue Jun 10"
func FormatDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday.
func FormatDayOfWeek(d time.Weekday) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if d >= 0 && int(d) < 7 {
		return days[d]
	}
	return "???"
}
