package budget

import (
	"testing"
	"time"
)

func TestCachedRecomputesOnSnapshotChange(t *testing.T) {
	var c Cached
	snap := steadySnapshot()
	now := day(t, "2025-06-10")

	v1 := c.Derive(snap, now)
	approx(t, "FixedNet", v1.FixedNet, 2000)

	// Same snapshot, same day: cached value.
	v2 := c.Derive(snap, now.Add(3*time.Hour))
	approx(t, "FixedNet", v2.FixedNet, 2000)

	// Mutated snapshot invalidates implicitly via the hash.
	snap.SavingsRate = 50
	v3 := c.Derive(snap, now)
	approx(t, "SpendableMonthlyBudget", v3.SpendableMonthlyBudget, 1000)
}

func TestCachedRecomputesOnDayChange(t *testing.T) {
	var c Cached
	snap := steadySnapshot()

	v1 := c.Derive(snap, day(t, "2025-06-10"))
	if v1.CurrentWeek != 2 {
		t.Fatalf("CurrentWeek = %d, want 2", v1.CurrentWeek)
	}

	// Crossing a week boundary moves the current-week pointer with no
	// explicit rollover event.
	v2 := c.Derive(snap, day(t, "2025-06-16"))
	if v2.CurrentWeek != 3 {
		t.Fatalf("CurrentWeek after boundary = %d, want 3", v2.CurrentWeek)
	}
}

func TestCachedInvalidate(t *testing.T) {
	var c Cached
	snap := steadySnapshot()
	now := day(t, "2025-06-10")

	_ = c.Derive(snap, now)
	c.Invalidate()
	v := c.Derive(snap, now)
	approx(t, "FixedNet", v.FixedNet, 2000)
}
