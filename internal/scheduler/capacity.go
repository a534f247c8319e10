package scheduler

import (
	"sort"
	"time"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// capacityLedger tracks the minutes already consumed on each calendar date
// by committed assignments, calendar blocks, and placements made earlier in
// the current pass. It is local to one scheduling call.
type capacityLedger struct {
	consumed map[string][]domain.TimeInterval
}

// newCapacityLedger seeds a ledger with existing assignments and calendar
// blocks. An all-day block consumes its entire date.
func newCapacityLedger(
	existing []domain.ScheduledAssignment,
	blocks []domain.CalendarBlock,
) *capacityLedger {
	ledger := &capacityLedger{
		consumed: make(map[string][]domain.TimeInterval),
	}

	for i := range existing {
		ledger.consume(existing[i].Date, existing[i].Interval)
	}

	for i := range blocks {
		ledger.consume(blocks[i].Date, blocks[i].BlockedInterval())
	}

	return ledger
}

// consume marks an interval on a date as taken.
func (l *capacityLedger) consume(date time.Time, iv domain.TimeInterval) {
	key := timeutil.DateKey(date)
	l.consumed[key] = append(l.consumed[key], iv)
}

// earliestFit finds the earliest sub-interval of the given span on the
// given date that holds the requested minutes without touching anything
// already consumed. Reports false when the span has no such gap.
func (l *capacityLedger) earliestFit(
	date time.Time,
	within domain.TimeInterval,
	minutes int,
) (domain.TimeInterval, bool) {
	taken := l.overlapping(date, within)

	start := within.StartMinute
	for _, iv := range taken {
		if start+minutes <= iv.StartMinute {
			break
		}
		if iv.EndMinute > start {
			start = iv.EndMinute
		}
	}

	if start+minutes > within.EndMinute {
		return domain.TimeInterval{}, false
	}

	return domain.TimeInterval{StartMinute: start, EndMinute: start + minutes}, true
}

// overlapping returns the consumed intervals on a date that overlap the
// given span, sorted by start minute.
func (l *capacityLedger) overlapping(
	date time.Time,
	within domain.TimeInterval,
) []domain.TimeInterval {
	var out []domain.TimeInterval
	for _, iv := range l.consumed[timeutil.DateKey(date)] {
		if iv.Overlaps(within) {
			out = append(out, iv)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartMinute < out[j].StartMinute
	})

	return out
}
