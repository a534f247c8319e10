package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// Assignment and calendar-block validation errors
var (
	// ErrAssignmentIDEmpty is returned when an assignment ID is empty or nil.
	ErrAssignmentIDEmpty = errors.New("assignment ID cannot be empty")

	// ErrAssignmentItemEmpty is returned when an assignment's work item ID
	// is empty or nil.
	ErrAssignmentItemEmpty = errors.New("assignment work item ID cannot be empty")

	// ErrAssignmentDateZero is returned when an assignment has no date.
	ErrAssignmentDateZero = errors.New("assignment date cannot be zero")

	// ErrGrantedMismatch is returned when the granted minutes do not match
	// the assignment's interval span.
	ErrGrantedMismatch = errors.New("granted minutes must equal the interval span")

	// ErrBlockDateZero is returned when a calendar block has no date.
	ErrBlockDateZero = errors.New("calendar block date cannot be zero")
)

// ScheduledAssignment is a committed placement of a work item into a
// specific date and interval. The interval always lies inside one declared
// availability interval for that weekday.
type ScheduledAssignment struct {
	ID             uuid.UUID    `json:"id"`
	WorkItemID     uuid.UUID    `json:"work_item_id"`
	Date           time.Time    `json:"date"`
	Interval       TimeInterval `json:"interval"`
	GrantedMinutes int          `json:"granted_minutes"`
	Order          int          `json:"order"`
}

// NewScheduledAssignment creates an assignment with a fresh ID for the
// given item, date and interval. The date is normalized to its civil date.
func NewScheduledAssignment(
	itemID uuid.UUID,
	date time.Time,
	interval TimeInterval,
	order int,
) (*ScheduledAssignment, error) {
	a := &ScheduledAssignment{
		ID:             uuid.New(),
		WorkItemID:     itemID,
		Date:           timeutil.DateOf(date),
		Interval:       interval,
		GrantedMinutes: interval.Minutes(),
		Order:          order,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the ScheduledAssignment has valid data.
func (a *ScheduledAssignment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAssignmentIDEmpty
	}

	if a.WorkItemID == uuid.Nil {
		return ErrAssignmentItemEmpty
	}

	if a.Date.IsZero() {
		return ErrAssignmentDateZero
	}

	if err := a.Interval.Validate(); err != nil {
		return err
	}

	if a.GrantedMinutes != a.Interval.Minutes() {
		return ErrGrantedMismatch
	}

	return nil
}

// CalendarBlock is an externally fixed commitment that consumes
// availability on a date but is never itself rescheduled. An all-day block
// consumes the entire day regardless of its interval.
type CalendarBlock struct {
	ID       uuid.UUID    `json:"id"`
	Title    string       `json:"title,omitempty"`
	Date     time.Time    `json:"date"`
	AllDay   bool         `json:"all_day"`
	Interval TimeInterval `json:"interval"`
}

// Validate checks if the CalendarBlock has valid data. Timed blocks must
// carry a valid interval; all-day blocks may leave it zero.
func (b *CalendarBlock) Validate() error {
	if b.Date.IsZero() {
		return ErrBlockDateZero
	}

	if !b.AllDay {
		return b.Interval.Validate()
	}

	return nil
}

// BlockedInterval returns the span the block consumes: the whole day for
// all-day blocks, otherwise the block's own interval.
func (b *CalendarBlock) BlockedInterval() TimeInterval {
	if b.AllDay {
		return TimeInterval{StartMinute: 0, EndMinute: timeutil.MinutesPerDay}
	}
	return b.Interval
}
