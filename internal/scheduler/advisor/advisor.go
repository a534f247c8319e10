// Package advisor proposes a replacement slot for a single work item that
// has become overdue or conflicted. It enumerates every non-conflicting
// candidate slot in a bounded horizon, scores them with configurable
// weights, and returns the best as a proposal; committing it is the
// caller's decision.
package advisor

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/scheduler"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// Validation errors
var (
	// ErrNilItem is returned when no work item is supplied.
	ErrNilItem = errors.New("work item cannot be nil")

	// ErrItemCompleted is returned when the item is already completed;
	// completed items are never rescheduled.
	ErrItemCompleted = errors.New("completed items cannot be rescheduled")

	// ErrTodayZero is returned when the options carry no reference date.
	ErrTodayZero = errors.New("today cannot be zero")

	// ErrUnknownBand is returned for an undefined time band.
	ErrUnknownBand = errors.New("unknown time band")
)

// ReasonCode classifies why a reschedule proposal failed.
type ReasonCode string

const (
	// ReasonNoAvailableSlots means the horizon holds no conflict-free slot
	// large enough for the item.
	ReasonNoAvailableSlots ReasonCode = "NO_AVAILABLE_SLOTS"

	// ReasonSystemError means an unexpected internal fault was caught at
	// the component boundary.
	ReasonSystemError ReasonCode = "SYSTEM_ERROR"
)

// Options controls a reschedule search.
type Options struct {
	// Today anchors day counting and deadline proximity.
	Today time.Time

	// HorizonDays bounds the candidate search, capped by
	// scheduler.MaxHorizonDays.
	HorizonDays int

	// PreferredBand earns matching candidates a bonus. Empty means any.
	PreferredBand TimeBand

	// WeightUrgency includes deadline proximity in the item's priority.
	WeightUrgency bool

	// WeightDifficulty includes the difficulty marker in the priority.
	WeightDifficulty bool

	// DefaultDurationMinutes resolves items without override or estimate.
	DefaultDurationMinutes int

	// Weights override the scoring constants; zero fields keep defaults.
	Weights Weights
}

// Validate rejects nonsensical options before any search begins.
func (o *Options) Validate() error {
	if o.Today.IsZero() {
		return ErrTodayZero
	}

	if o.HorizonDays < 1 || o.HorizonDays > scheduler.MaxHorizonDays {
		return scheduler.ErrHorizonRange
	}

	if !o.PreferredBand.Valid() {
		return ErrUnknownBand
	}

	return nil
}

// Result is a reschedule proposal. It is advisory only: nothing has been
// committed when it returns.
type Result struct {
	Success     bool                        `json:"success"`
	NewSlot     *domain.ScheduledAssignment `json:"new_slot,omitempty"`
	Score       float64                     `json:"score,omitempty"`
	Explanation string                      `json:"explanation"`
	Suggestions []string                    `json:"suggestions,omitempty"`
	ReasonCode  ReasonCode                  `json:"reason_code,omitempty"`
}

// candidate is one scoreable (date, interval) pair.
type candidate struct {
	date          time.Time
	interval      domain.TimeInterval
	daysFromToday int
}

// Reschedule finds the best replacement slot for a single item. Candidates
// are generated earliest-first and scored; ties keep the first generated
// candidate, so identical inputs always propose the same slot.
//
// Validation failures return an error. A horizon without candidates and
// any unexpected internal fault are reported inside the Result instead -
// this function never panics past its boundary.
func Reschedule(
	item *domain.WorkItem,
	existing []domain.ScheduledAssignment,
	availability domain.WeeklyAvailability,
	blocks []domain.CalendarBlock,
	opts Options,
) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = &Result{
				Success:     false,
				ReasonCode:  ReasonSystemError,
				Explanation: fmt.Sprintf("internal fault while searching for a slot: %v", r),
				Suggestions: []string{"retry the reschedule in a moment"},
			}
			err = nil
		}
	}()

	if item == nil {
		return nil, ErrNilItem
	}
	if item.Completed {
		return nil, ErrItemCompleted
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	weights := opts.Weights.normalized()
	minutes := item.ResolvedMinutes(resolveDefault(opts.DefaultDurationMinutes))
	priority := taskPriority(item, opts.Today, opts)

	best, found := searchFn(item, existing, availability, blocks, opts, weights, minutes, priority)
	if !found {
		return noSlotResult(minutes, opts.HorizonDays), nil
	}

	slot := &domain.ScheduledAssignment{
		ID:             uuid.New(),
		WorkItemID:     item.ID,
		Date:           best.candidate.date,
		Interval:       best.candidate.interval,
		GrantedMinutes: best.candidate.interval.Minutes(),
		Order:          item.Order,
	}

	return &Result{
		Success: true,
		NewSlot: slot,
		Score:   best.score,
		Explanation: fmt.Sprintf(
			"best available slot is %s on %s (%d candidates considered)",
			slot.Interval,
			slot.Date.Format(time.DateOnly),
			best.considered,
		),
	}, nil
}

// searchFn indirects the candidate search so tests can exercise the
// boundary recovery.
var searchFn = bestCandidate

// scoredCandidate pairs a candidate with its score and bookkeeping.
type scoredCandidate struct {
	candidate  candidate
	score      float64
	considered int
}

// bestCandidate enumerates and scores every conflict-free slot in the
// horizon. Strictly-greater comparison keeps the earliest of tied slots.
func bestCandidate(
	item *domain.WorkItem,
	existing []domain.ScheduledAssignment,
	availability domain.WeeklyAvailability,
	blocks []domain.CalendarBlock,
	opts Options,
	weights Weights,
	minutes int,
	priority float64,
) (scoredCandidate, bool) {
	taken := make(map[string][]domain.TimeInterval)
	for i := range existing {
		key := timeutil.DateKey(existing[i].Date)
		taken[key] = append(taken[key], existing[i].Interval)
	}
	for i := range blocks {
		key := timeutil.DateKey(blocks[i].Date)
		taken[key] = append(taken[key], blocks[i].BlockedInterval())
	}

	var best scoredCandidate
	found := false
	considered := 0

	for day := 0; day < opts.HorizonDays; day++ {
		date := timeutil.AddDays(opts.Today, day)
		busy := taken[timeutil.DateKey(date)]

		for _, window := range availability[date.Weekday()] {
			fit, ok := earliestGap(window, busy, minutes)
			if !ok {
				continue
			}

			c := candidate{date: date, interval: fit, daysFromToday: day}
			considered++

			score := scoreCandidate(c, priority, opts.PreferredBand, weights)
			if !found || score > best.score {
				best = scoredCandidate{candidate: c, score: score}
				found = true
			}
		}
	}

	best.considered = considered
	return best, found
}

// earliestGap finds the earliest sub-interval of the window holding the
// requested minutes clear of every busy interval.
func earliestGap(
	window domain.TimeInterval,
	busy []domain.TimeInterval,
	minutes int,
) (domain.TimeInterval, bool) {
	start := window.StartMinute

	// Busy intervals may arrive unsorted; sweep until the start minute
	// settles instead of sorting a copy.
	for moved := true; moved; {
		moved = false
		for _, iv := range busy {
			if iv.StartMinute < start+minutes && iv.EndMinute > start {
				start = iv.EndMinute
				moved = true
			}
		}
	}

	if start+minutes > window.EndMinute {
		return domain.TimeInterval{}, false
	}

	return domain.TimeInterval{StartMinute: start, EndMinute: start + minutes}, true
}

// noSlotResult builds the capacity-failure result with actionable advice.
func noSlotResult(minutes, horizonDays int) *Result {
	return &Result{
		Success:    false,
		ReasonCode: ReasonNoAvailableSlots,
		Explanation: fmt.Sprintf(
			"no conflict-free slot of %d minutes found within %d days",
			minutes, horizonDays,
		),
		Suggestions: []string{
			"shorten the item's duration",
			"add availability to your weekly schedule",
			"split the item into smaller pieces",
			"extend the search horizon or the deadline",
		},
	}
}

func resolveDefault(minutes int) int {
	if minutes > 0 {
		return minutes
	}
	return scheduler.DefaultDurationMinutes
}
