// Package budget derives spending targets from the record store snapshot.
//
// The derivation is a pure recomputation keyed only by (snapshot, now): there
// is no stored cursor and no rollover event. The "current week" advances by
// itself as wall-clock time crosses week boundaries. Overspend from closed
// weeks of the period is carried forward as debt and amortized evenly across
// the current and remaining weeks.
package budget

import (
	"time"

	"flowstate/internal/calendar"
	"flowstate/internal/classify"
	"flowstate/internal/model"
)

// WeekStatus marks where a weekly bucket sits relative to now.
type WeekStatus string

// Week statuses.
const (
	WeekPast    WeekStatus = "past"
	WeekCurrent WeekStatus = "current"
	WeekFuture  WeekStatus = "future"
)

// Week is one of the 4 weekly buckets in the budget period.
type Week struct {
	Number int
	Start  time.Time
	End    time.Time
	Status WeekStatus
	Spent  float64
	// Net is bucket minus spend: the base bucket for past weeks, the
	// debt-adjusted bucket for the current week. Nil for future weeks,
	// which have no meaningful net yet.
	Net *float64
}

// View is the full set of derived budget figures for one instant.
type View struct {
	// Monthly recurring totals.
	TotalMonthlyIncome   float64
	TotalMonthlyExpenses float64
	FixedNet             float64

	// Savings split.
	SavingsRate            int
	SpendableMonthlyBudget float64
	TargetMonthlySavings   float64

	// Weekly cascade.
	BaseWeeklyBucket float64
	CurrentWeek      int
	PastWeekDebt     float64
	DebtPerWeek      float64
	WeeklyBucket     float64
	ThisWeekSpent    float64
	WeeklyRemaining  float64
	WeeklyBuffer     float64
	WeeklyProgress   float64

	// Daily targets.
	BaseDailyTarget     float64
	AdjustedDailyTarget float64
	TodaySpent          float64
	TodayRemaining      float64
	IsSpendDay          bool
	SpendDaysPerWeek    int
	RemainingSpendDays  int

	// Period aggregates, over the 28-day budget period.
	ThisMonthSpent         float64
	ThisMonthIncome        float64
	EffectiveMonthlyBudget float64
	MonthlyRemaining       float64

	// Calendar context.
	DaysElapsed     int
	DaysLeftInWeek  int
	DaysLeftInMonth int

	Weeks            [4]Week
	WeekByCategory   map[model.Category]float64
	PeriodByCategory map[model.Category]float64

	TotalSavings float64
	HasSetup     bool
}

// Derive computes every budget figure for the given snapshot and instant.
// It is total: degenerate configurations (no income, no spend days) produce
// zeros, never errors or NaN.
func Derive(snap model.Snapshot, now time.Time) View {
	var v View

	// Monthly-equivalent recurring totals.
	for _, item := range snap.RecurringIncome {
		v.TotalMonthlyIncome += item.MonthlyAmount()
	}
	for _, item := range snap.RecurringExpenses {
		v.TotalMonthlyExpenses += item.MonthlyAmount()
	}
	v.FixedNet = v.TotalMonthlyIncome - v.TotalMonthlyExpenses

	// Savings split. Applies arithmetically even when FixedNet <= 0.
	v.SavingsRate = snap.SavingsRate
	rate := float64(snap.SavingsRate) / 100
	v.SpendableMonthlyBudget = v.FixedNet * (1 - rate)
	v.TargetMonthlySavings = v.FixedNet * rate

	// The period always splits into exactly 4 weekly buckets.
	v.BaseWeeklyBucket = v.SpendableMonthlyBudget / 4
	v.CurrentWeek = calendar.WeekNumberInMonth(now)

	// Debt from closed weeks: only overspend carries forward. Underspent
	// weeks do not bank credit here; surplus lives in the savings ledger.
	for w := 1; w < v.CurrentWeek; w++ {
		start, end := calendar.WeekBounds(now, w)
		spent := classify.ExpenseSum(classify.Between(snap.Transactions, start, end))
		if over := spent - v.BaseWeeklyBucket; over > 0 {
			v.PastWeekDebt += over
		}
	}

	// Amortize across the current and remaining weeks of the period.
	weeksRemaining := 5 - v.CurrentWeek
	if weeksRemaining < 1 {
		weeksRemaining = 1
	}
	v.DebtPerWeek = v.PastWeekDebt / float64(weeksRemaining)

	v.WeeklyBucket = v.BaseWeeklyBucket - v.DebtPerWeek
	if v.WeeklyBucket < 0 {
		v.WeeklyBucket = 0
	}

	weekStart, weekEnd := calendar.WeekBounds(now, v.CurrentWeek)
	thisWeek := classify.Between(snap.Transactions, weekStart, weekEnd)
	v.ThisWeekSpent = classify.ExpenseSum(thisWeek)
	v.WeeklyRemaining = v.WeeklyBucket - v.ThisWeekSpent

	// Daily targets, guarded against empty spend-day configurations.
	v.SpendDaysPerWeek = snap.SpendDays.Count()
	if v.SpendDaysPerWeek >= 1 {
		v.BaseDailyTarget = v.WeeklyBucket / float64(v.SpendDaysPerWeek)
	}
	v.RemainingSpendDays = snap.SpendDays.RemainingFrom(now.Weekday())
	v.IsSpendDay = snap.SpendDays.On(now.Weekday())

	today := classify.OnDay(snap.Transactions, now)
	v.TodaySpent = classify.ExpenseSum(today)

	// Adding today's spend back before dividing re-includes it in the pool
	// spread over the remaining days, today included; what is left to spend
	// today comes from subtracting today's spend again.
	if v.RemainingSpendDays > 0 {
		v.AdjustedDailyTarget = (v.WeeklyRemaining + v.TodaySpent) / float64(v.RemainingSpendDays)
		if v.AdjustedDailyTarget < 0 {
			v.AdjustedDailyTarget = 0
		}
	} else {
		v.AdjustedDailyTarget = v.BaseDailyTarget
	}
	v.TodayRemaining = v.AdjustedDailyTarget - v.TodaySpent

	// Buffer: how far ahead of plan the week was coming into today.
	expectedByNow := v.BaseDailyTarget * float64(snap.SpendDays.PassedBefore(now.Weekday()))
	v.WeeklyBuffer = expectedByNow - (v.ThisWeekSpent - v.TodaySpent)

	if v.WeeklyBucket > 0 {
		v.WeeklyProgress = v.ThisWeekSpent / v.WeeklyBucket * 100
	}

	// Period aggregates key off the 28-day window, not the calendar month.
	periodStart, periodEnd := calendar.PeriodStart(now), calendar.PeriodEnd(now)
	period := classify.Between(snap.Transactions, periodStart, periodEnd)
	v.ThisMonthSpent = classify.ExpenseSum(period)
	v.ThisMonthIncome = classify.IncomeSum(period)
	v.EffectiveMonthlyBudget = v.FixedNet + v.ThisMonthIncome
	v.MonthlyRemaining = v.EffectiveMonthlyBudget - v.ThisMonthSpent

	v.DaysElapsed = calendar.DaysElapsedInWeek(now)
	v.DaysLeftInWeek = 7 - v.DaysElapsed + 1
	v.DaysLeftInMonth = calendar.DaysRemainingInMonth(now)

	for w := 1; w <= 4; w++ {
		start, end := calendar.WeekBounds(now, w)
		week := Week{
			Number: w,
			Start:  start,
			End:    end,
			Spent:  classify.ExpenseSum(classify.Between(snap.Transactions, start, end)),
		}
		switch {
		case w < v.CurrentWeek:
			week.Status = WeekPast
			net := v.BaseWeeklyBucket - week.Spent
			week.Net = &net
		case w == v.CurrentWeek:
			week.Status = WeekCurrent
			net := v.WeeklyBucket - week.Spent
			week.Net = &net
		default:
			week.Status = WeekFuture
		}
		v.Weeks[w-1] = week
	}

	v.WeekByCategory = byCategory(thisWeek)
	v.PeriodByCategory = byCategory(period)

	for _, entry := range snap.Savings {
		v.TotalSavings += entry.Amount
	}
	v.HasSetup = len(snap.RecurringIncome) > 0

	return v
}

// byCategory groups signed amounts per category; income entries reduce their
// category total.
func byCategory(txs []model.Transaction) map[model.Category]float64 {
	totals := make(map[model.Category]float64)
	for _, tx := range txs {
		totals[tx.Category] += tx.Amount
	}
	return totals
}
