package rewards_test

import (
	"testing"
	"time"

	"tanam/rewards"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeStreak(t *testing.T) {
	t.Parallel()

	ref := day("2024-03-10")
	active := map[time.Time]bool{
		day("2024-03-10"): true,
		day("2024-03-09"): true,
		day("2024-03-08"): true,
		// gap at 03-07
		day("2024-03-06"): true,
	}
	if got := rewards.ComputeStreak(active, ref); got != 3 {
		t.Errorf("ComputeStreak() = %d, want 3", got)
	}
}

func TestComputeStreakNoActivityToday(t *testing.T) {
	t.Parallel()

	active := map[time.Time]bool{day("2024-03-09"): true}
	if got := rewards.ComputeStreak(active, day("2024-03-10")); got != 0 {
		t.Errorf("ComputeStreak() = %d, want 0 when the reference day is inactive", got)
	}
}

func TestComputeStreakDiscardsTimeOfDay(t *testing.T) {
	t.Parallel()

	active := map[time.Time]bool{day("2024-03-10"): true}
	ref := time.Date(2024, 3, 10, 23, 45, 12, 0, time.UTC)
	if got := rewards.ComputeStreak(active, ref); got != 1 {
		t.Errorf("ComputeStreak() = %d, want 1", got)
	}
}

func TestAdvanceStreak(t *testing.T) {
	t.Parallel()

	// First ever activity starts a streak of 1.
	last, current := rewards.AdvanceStreak(nil, 0, day("2024-03-01"))
	if current != 1 || !last.Equal(day("2024-03-01")) {
		t.Fatalf("first event: last = %v, current = %d", last, current)
	}

	// Same day is a no-op.
	last, current = rewards.AdvanceStreak(&last, current, day("2024-03-01"))
	if current != 1 {
		t.Errorf("same day: current = %d, want 1", current)
	}

	// Next day extends.
	last, current = rewards.AdvanceStreak(&last, current, day("2024-03-02"))
	if current != 2 || !last.Equal(day("2024-03-02")) {
		t.Errorf("next day: last = %v, current = %d", last, current)
	}

	// Backfilled event never moves the streak.
	last, current = rewards.AdvanceStreak(&last, current, day("2024-02-20"))
	if current != 2 || !last.Equal(day("2024-03-02")) {
		t.Errorf("backfill: last = %v, current = %d", last, current)
	}

	// A gap resets to 1.
	last, current = rewards.AdvanceStreak(&last, current, day("2024-03-05"))
	if current != 1 || !last.Equal(day("2024-03-05")) {
		t.Errorf("gap: last = %v, current = %d", last, current)
	}
}
