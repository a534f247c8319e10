package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// UnscheduledItem reports a work item the pass could not place, with a
// human-readable reason. Items are never silently dropped.
type UnscheduledItem struct {
	ItemID uuid.UUID `json:"item_id"`
	Title  string    `json:"title"`
	Reason string    `json:"reason"`
}

// Result is the outcome of one scheduling pass. A pass always returns a
// Result; capacity shortfalls surface here as data, never as call errors.
type Result struct {
	Scheduled   []domain.ScheduledAssignment `json:"scheduled"`
	Unscheduled []UnscheduledItem            `json:"unscheduled"`
}

// Schedule places the given work items into the weekly availability,
// walking forward day by day from the effective start date up to the
// horizon. Completed items are skipped. Items are processed in ascending
// sequence order; equal orders keep their original relative position.
// Minutes already taken by existing assignments and calendar blocks are
// never granted twice, and placements made earlier in the pass consume
// capacity for later items.
//
// Only validation failures produce an error. An item that fits nowhere in
// the horizon is reported in Result.Unscheduled instead.
func Schedule(
	items []domain.WorkItem,
	availability domain.WeeklyAvailability,
	existing []domain.ScheduledAssignment,
	blocks []domain.CalendarBlock,
	opts Options,
) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}
	for i := range blocks {
		if err := blocks[i].Validate(); err != nil {
			return nil, fmt.Errorf("calendar block %d: %w", i, err)
		}
	}

	// Sequence order, stable for equal orders.
	ordered := make([]domain.WorkItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	ledger := newCapacityLedger(existing, blocks)
	startDate := timeutil.AddDays(opts.StartDate, opts.Urgency.StartOffsetDays())

	result := &Result{}
	for i := range ordered {
		item := &ordered[i]
		if item.Completed {
			continue
		}

		minutes := item.ResolvedMinutes(opts.defaultMinutes())

		assignment, ok := placeItem(item, minutes, availability, ledger, startDate, opts.HorizonDays)
		if !ok {
			result.Unscheduled = append(result.Unscheduled, UnscheduledItem{
				ItemID: item.ID,
				Title:  item.Title,
				Reason: fmt.Sprintf("no free span of %d minutes within %d days", minutes, opts.HorizonDays),
			})
			continue
		}

		ledger.consume(assignment.Date, assignment.Interval)
		result.Scheduled = append(result.Scheduled, *assignment)
	}

	return result, nil
}

// placeItem walks the horizon for a single item and claims the first
// sufficiently large gap: earliest day, earliest availability interval,
// earliest free point within it.
func placeItem(
	item *domain.WorkItem,
	minutes int,
	availability domain.WeeklyAvailability,
	ledger *capacityLedger,
	startDate time.Time,
	horizonDays int,
) (*domain.ScheduledAssignment, bool) {
	for day := 0; day < horizonDays; day++ {
		date := timeutil.AddDays(startDate, day)

		for _, window := range availability[date.Weekday()] {
			fit, ok := ledger.earliestFit(date, window, minutes)
			if !ok {
				continue
			}

			return &domain.ScheduledAssignment{
				ID:             uuid.New(),
				WorkItemID:     item.ID,
				Date:           date,
				Interval:       fit,
				GrantedMinutes: fit.Minutes(),
				Order:          item.Order,
			}, true
		}
	}

	return nil, false
}
