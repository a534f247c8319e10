package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewRecord validation errors
var (
	// ErrRecordItemEmpty is returned when a review record's item ID is
	// empty or nil.
	ErrRecordItemEmpty = errors.New("review record item ID cannot be empty")

	// ErrRecordEaseFactorLow is returned when an ease factor drops below
	// the algorithm's floor of 1.3.
	ErrRecordEaseFactorLow = errors.New("ease factor must be at least 1.3")

	// ErrRecordIntervalRange is returned when a review interval falls
	// outside 1-365 days.
	ErrRecordIntervalRange = errors.New("review interval must be between 1 and 365 days")

	// ErrRecordRepetitionsNegative is returned when the repetition count is
	// negative.
	ErrRecordRepetitionsNegative = errors.New("repetitions cannot be negative")
)

// Review quality grade bounds. A grade below 3 counts as failed recall.
const (
	MinQuality = 0
	MaxQuality = 5
)

// ValidQuality reports whether a quality grade is within 0-5.
func ValidQuality(quality int) bool {
	return quality >= MinQuality && quality <= MaxQuality
}

// ReviewRecord tracks spaced-repetition state for one completed work item.
// It is created on the item's first review, mutated only through the srs
// service (which returns new copies), and never deleted while the item
// exists.
type ReviewRecord struct {
	ItemID       uuid.UUID `json:"item_id"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	NextDueDate  time.Time `json:"next_due_date"`
	LastQuality  *int      `json:"last_quality,omitempty"`
	// TemplateCounter drives the default round-robin review-template
	// selection so synthesized review tasks cycle deterministically.
	TemplateCounter int `json:"template_counter"`
}

// Validate checks if the ReviewRecord has valid data.
// Returns an error if any field fails validation.
func (r *ReviewRecord) Validate() error {
	if r.ItemID == uuid.Nil {
		return ErrRecordItemEmpty
	}

	if r.EaseFactor < 1.3 {
		return ErrRecordEaseFactorLow
	}

	if r.IntervalDays < 1 || r.IntervalDays > 365 {
		return ErrRecordIntervalRange
	}

	if r.Repetitions < 0 {
		return ErrRecordRepetitionsNegative
	}

	if r.LastQuality != nil && !ValidQuality(*r.LastQuality) {
		return ErrInvalidQuality
	}

	return nil
}
