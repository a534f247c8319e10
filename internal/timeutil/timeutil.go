// Package timeutil provides the shared civil-date and minute-of-day helpers
// used by the scheduling engine. All scheduling arithmetic works on dates
// normalized to midnight UTC and on minutes counted from midnight, so the
// engine never depends on wall-clock time zones or DST transitions.
package timeutil

import (
	"fmt"
	"time"
)

// MinutesPerDay is the number of scheduling minutes in a civil day.
const MinutesPerDay = 24 * 60

// DateOf normalizes a time to its civil date: midnight UTC on the same
// year/month/day. All dates stored by the engine go through this.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the civil date n days after (or before, for negative n)
// the given time's date.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of whole civil days from one date to
// another. The result is negative when "to" precedes "from".
func DaysBetween(from, to time.Time) int {
	f := DateOf(from)
	t := DateOf(to)
	return int(t.Sub(f).Hours() / 24)
}

// SameDate reports whether two times fall on the same civil date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// DateKey formats a date as YYYY-MM-DD for use as a map key.
func DateKey(t time.Time) string {
	return DateOf(t).Format(time.DateOnly)
}

// MinuteClock formats a minute-of-day value as an HH:MM clock string.
func MinuteClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseClock converts an HH:MM clock string into a minute-of-day value.
// Accepts 24:00 so interval ends may name end-of-day.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", clock, err)
	}
	minute := h*60 + m
	if h < 0 || m < 0 || m > 59 || minute > MinutesPerDay {
		return 0, fmt.Errorf("clock string %q out of range", clock)
	}
	return minute, nil
}
