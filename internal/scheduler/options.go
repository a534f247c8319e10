package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// Option validation errors
var (
	// ErrStartDateZero is returned when the options carry no start date.
	ErrStartDateZero = errors.New("start date cannot be zero")

	// ErrHorizonRange is returned when the day horizon is not positive or
	// exceeds MaxHorizonDays.
	ErrHorizonRange = fmt.Errorf("horizon must be between 1 and %d days", MaxHorizonDays)

	// ErrUnknownUrgency is returned when the urgency policy is not one of
	// the defined values.
	ErrUnknownUrgency = errors.New("unknown urgency policy")
)

// MaxHorizonDays caps the day-walk so a single scheduling pass always
// terminates in bounded time. Callers choose a horizon per call; they never
// get to remove the ceiling.
const MaxHorizonDays = 60

// DefaultDurationMinutes is used for items that carry neither a user
// override nor an upstream estimate.
const DefaultDurationMinutes = 30

// UrgencyPolicy decides how soon scheduling may begin relative to the
// requested start date.
type UrgencyPolicy string

// The defined urgency policies.
const (
	// UrgencyEmergency permits placements on the start date itself.
	UrgencyEmergency UrgencyPolicy = "emergency"

	// UrgencyGeneral begins the day after the start date, keeping the
	// current day from being overloaded with late additions.
	UrgencyGeneral UrgencyPolicy = "general"

	// UrgencyLongTerm begins two days after the start date, leaving the
	// near term free for more urgent work.
	UrgencyLongTerm UrgencyPolicy = "long_term"
)

// StartOffsetDays returns how many days after the requested start date the
// first eligible scheduling day lies.
func (p UrgencyPolicy) StartOffsetDays() int {
	switch p {
	case UrgencyEmergency:
		return 0
	case UrgencyLongTerm:
		return 2
	default:
		return 1
	}
}

// Valid reports whether the policy is one of the defined values. The empty
// string is accepted and treated as UrgencyGeneral.
func (p UrgencyPolicy) Valid() bool {
	switch p {
	case "", UrgencyEmergency, UrgencyGeneral, UrgencyLongTerm:
		return true
	default:
		return false
	}
}

// Options controls a scheduling pass.
type Options struct {
	// StartDate anchors the day-walk; the urgency policy decides the
	// offset to the first eligible day.
	StartDate time.Time

	// HorizonDays bounds how many days are searched per item.
	HorizonDays int

	// Urgency defaults to UrgencyGeneral when empty.
	Urgency UrgencyPolicy

	// DefaultDurationMinutes resolves items lacking both an override and
	// an estimate; zero falls back to DefaultDurationMinutes.
	DefaultDurationMinutes int
}

// Validate rejects nonsensical options before any search begins.
func (o *Options) Validate() error {
	if o.StartDate.IsZero() {
		return ErrStartDateZero
	}

	if o.HorizonDays < 1 || o.HorizonDays > MaxHorizonDays {
		return ErrHorizonRange
	}

	if !o.Urgency.Valid() {
		return ErrUnknownUrgency
	}

	return nil
}

// defaultMinutes returns the configured fallback duration.
func (o *Options) defaultMinutes() int {
	if o.DefaultDurationMinutes > 0 {
		return o.DefaultDurationMinutes
	}
	return DefaultDurationMinutes
}
