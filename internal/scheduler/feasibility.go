package scheduler

import (
	"errors"
	"time"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// ErrDeadlineZero is returned when Analyze is called without a deadline.
var ErrDeadlineZero = errors.New("deadline cannot be zero")

// FeasibilityReport summarizes aggregate capacity versus demand up to a
// deadline. It is advisory: the slot finder makes the actual per-item
// placement decisions.
type FeasibilityReport struct {
	Feasible         bool     `json:"feasible"`
	RequiredMinutes  int      `json:"required_minutes"`
	AvailableMinutes int      `json:"available_minutes"`
	ShortfallMinutes int      `json:"shortfall_minutes"`
	Suggestions      []string `json:"suggestions,omitempty"`
}

// Analyze compares the total resolved duration of all non-completed items
// against the availability minutes between the day after today and the
// deadline, inclusive. It never mutates anything and is safe to call
// before or after a scheduling pass.
//
// defaultMinutes resolves items lacking an override and estimate; zero
// falls back to DefaultDurationMinutes.
func Analyze(
	items []domain.WorkItem,
	availability domain.WeeklyAvailability,
	today time.Time,
	deadline time.Time,
	defaultMinutes int,
) (*FeasibilityReport, error) {
	if deadline.IsZero() {
		return nil, ErrDeadlineZero
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultDurationMinutes
	}

	report := &FeasibilityReport{}

	maxItemMinutes := 0
	pendingCount := 0
	for i := range items {
		if items[i].Completed {
			continue
		}
		minutes := items[i].ResolvedMinutes(defaultMinutes)
		report.RequiredMinutes += minutes
		pendingCount++
		if minutes > maxItemMinutes {
			maxItemMinutes = minutes
		}
	}

	end := timeutil.DateOf(deadline)
	for date := timeutil.AddDays(today, 1); !date.After(end); date = timeutil.AddDays(date, 1) {
		report.AvailableMinutes += availability.MinutesOn(date.Weekday())
	}

	if report.RequiredMinutes > report.AvailableMinutes {
		report.Feasible = false
		report.ShortfallMinutes = report.RequiredMinutes - report.AvailableMinutes
		report.Suggestions = shortfallSuggestions(report, pendingCount, maxItemMinutes)
	} else {
		report.Feasible = true
	}

	return report, nil
}

// shortfallSuggestions derives deterministic advice from the shortfall
// magnitude and the shape of the pending work.
func shortfallSuggestions(report *FeasibilityReport, pendingCount, maxItemMinutes int) []string {
	suggestions := []string{
		"increase your available time before the deadline",
	}

	// A shortfall larger than half the capacity will not be closed by
	// trimming alone.
	if report.AvailableMinutes == 0 || report.ShortfallMinutes > report.AvailableMinutes/2 {
		suggestions = append(suggestions, "extend the deadline")
	}

	if maxItemMinutes >= 90 {
		suggestions = append(suggestions, "split large items into shorter sessions")
	}

	if pendingCount > 10 {
		suggestions = append(suggestions, "reduce the number of items due by this deadline")
	}

	return suggestions
}
