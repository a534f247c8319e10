package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// WorkItem-specific validation errors
var (
	// ErrItemIDEmpty is returned when a work item ID is empty or nil.
	ErrItemIDEmpty = errors.New("work item ID cannot be empty")

	// ErrItemTitleEmpty is returned when a work item's title is empty.
	ErrItemTitleEmpty = errors.New("work item title cannot be empty")

	// ErrItemDurationInvalid is returned when a duration override or
	// estimate is zero or negative.
	ErrItemDurationInvalid = errors.New("work item duration must be positive")

	// ErrItemDifficultyInvalid is returned when a difficulty marker is not
	// one of the defined values.
	ErrItemDifficultyInvalid = errors.New("invalid work item difficulty")
)

// Difficulty marks how demanding a work item is expected to be. It feeds
// the reschedule scoring heuristic and nothing else in the engine.
type Difficulty string

// Possible difficulty values. An empty difficulty is treated as medium.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the difficulty is one of the defined values.
// The empty string is accepted as "unspecified".
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// WorkItem is a schedulable unit of work. The upstream planner supplies
// title, estimate, difficulty and sequence order as advisory data; an
// explicit user override always beats the planner's estimate.
type WorkItem struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       int        `json:"order"`
	// OverrideMinutes is the user's explicit duration, taking precedence
	// over EstimatedMinutes when both are set.
	OverrideMinutes  *int       `json:"override_minutes,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
	Difficulty       Difficulty `json:"difficulty,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Completed        bool       `json:"completed"`
	// IsReview marks tasks synthesized by the review scheduler. Such tasks
	// are never themselves put back through spaced repetition.
	IsReview bool `json:"is_review"`
}

// NewWorkItem creates a work item with a fresh ID and the given title and
// sequence order. Returns an error if validation fails.
func NewWorkItem(title string, order int) (*WorkItem, error) {
	item := &WorkItem{
		ID:    uuid.New(),
		Title: title,
		Order: order,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the WorkItem has valid data.
// Returns an error if any field fails validation.
func (i *WorkItem) Validate() error {
	if i.ID == uuid.Nil {
		return ErrItemIDEmpty
	}

	if i.Title == "" {
		return ErrItemTitleEmpty
	}

	if i.OverrideMinutes != nil && *i.OverrideMinutes <= 0 {
		return ErrItemDurationInvalid
	}

	if i.EstimatedMinutes != nil && *i.EstimatedMinutes <= 0 {
		return ErrItemDurationInvalid
	}

	if !i.Difficulty.Valid() {
		return ErrItemDifficultyInvalid
	}

	return nil
}

// ResolvedMinutes resolves the item's duration: explicit user override
// first, then the upstream estimate, then the supplied default.
func (i *WorkItem) ResolvedMinutes(defaultMinutes int) int {
	if i.OverrideMinutes != nil {
		return *i.OverrideMinutes
	}
	if i.EstimatedMinutes != nil {
		return *i.EstimatedMinutes
	}
	return defaultMinutes
}
