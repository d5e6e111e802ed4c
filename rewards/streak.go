package rewards

import "time"

// DateOnly discards the time of day, keeping a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreak walks backward from ref and counts consecutive active days.
// A ref day without activity means the streak is already broken: 0.
// This is the rebuild path over the distinct-date ledger; day-to-day updates
// go through AdvanceStreak instead.
func ComputeStreak(activeDates map[time.Time]bool, ref time.Time) int {
	day := DateOnly(ref)
	streak := 0
	for activeDates[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// AdvanceStreak folds one new activity day into (lastActive, current) in O(1):
// same day is a no-op, the following day extends, a gap resets to 1. Events
// dated before lastActive (backfills) never move the streak; rebuild from the
// ledger with ComputeStreak if that ever matters.
func AdvanceStreak(lastActive *time.Time, current int, event time.Time) (time.Time, int) {
	day := DateOnly(event)
	if lastActive == nil {
		return day, 1
	}

	last := DateOnly(*lastActive)
	switch {
	case day.Equal(last):
		return last, current
	case day.Equal(last.AddDate(0, 0, 1)):
		return day, current + 1
	case day.Before(last):
		return last, current
	default:
		return day, 1
	}
}
