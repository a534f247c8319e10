package domain

import (
	"fmt"
	"time"

	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// TimeInterval is a contiguous span of time within a single day, expressed
// as minutes counted from midnight. The end minute is exclusive.
type TimeInterval struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

// NewTimeInterval creates a TimeInterval from HH:MM clock strings.
// Returns an error if either clock is malformed or end does not follow start.
func NewTimeInterval(start, end string) (TimeInterval, error) {
	s, err := timeutil.ParseClock(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := timeutil.ParseClock(end)
	if err != nil {
		return TimeInterval{}, err
	}
	iv := TimeInterval{StartMinute: s, EndMinute: e}
	if err := iv.Validate(); err != nil {
		return TimeInterval{}, err
	}
	return iv, nil
}

// Validate checks the interval invariants: the span lies within one day
// and the end minute is strictly after the start minute.
func (iv TimeInterval) Validate() error {
	if iv.StartMinute < 0 || iv.EndMinute > timeutil.MinutesPerDay {
		return ErrIntervalOutOfDay
	}
	if iv.EndMinute <= iv.StartMinute {
		return ErrInvalidInterval
	}
	return nil
}

// Minutes returns the duration of the interval in minutes.
func (iv TimeInterval) Minutes() int {
	return iv.EndMinute - iv.StartMinute
}

// Overlaps reports whether two intervals share at least one minute.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.StartMinute < other.EndMinute && other.StartMinute < iv.EndMinute
}

// ContainsInterval reports whether the other interval lies entirely
// within this one.
func (iv TimeInterval) ContainsInterval(other TimeInterval) bool {
	return other.StartMinute >= iv.StartMinute && other.EndMinute <= iv.EndMinute
}

// String renders the interval as an HH:MM-HH:MM range.
func (iv TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", timeutil.MinuteClock(iv.StartMinute), timeutil.MinuteClock(iv.EndMinute))
}

// WeeklyAvailability maps each weekday to its free time intervals.
// Intervals per day must be chronologically ordered and non-overlapping.
type WeeklyAvailability map[time.Weekday][]TimeInterval

// Validate checks every interval and the per-day ordering invariant.
func (w WeeklyAvailability) Validate() error {
	for day, intervals := range w {
		for i, iv := range intervals {
			if err := iv.Validate(); err != nil {
				return fmt.Errorf("availability for %s: interval %s: %w", day, iv, err)
			}
			if i > 0 && intervals[i-1].EndMinute > iv.StartMinute {
				return fmt.Errorf("availability for %s: %w", day, ErrOverlappingIntervals)
			}
		}
	}
	return nil
}

// MinutesOn returns the total free minutes declared for a weekday.
func (w WeeklyAvailability) MinutesOn(day time.Weekday) int {
	total := 0
	for _, iv := range w[day] {
		total += iv.Minutes()
	}
	return total
}
