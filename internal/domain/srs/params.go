// Package srs implements the spaced-repetition review scheduler: an SM-2
// style state machine over per-item review records, plus selection and
// synthesis of the review tasks that put due items back on the schedule.
package srs

// Params defines all configurable parameters for the review scheduler.
type Params struct {
	// Core limits
	MinEaseFactor   float64
	InitialEase     float64
	MinIntervalDays int
	MaxIntervalDays int

	// Fixed early-repetition intervals
	FirstIntervalDays  int
	SecondIntervalDays int

	// Review-task synthesis
	ReviewDurationFactor float64
	MinReviewMinutes     int

	// Cap on the share of completed items surfaced as due in one pass
	DueCapPercent int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values leave the corresponding default untouched.
type ParamsConfig struct {
	MinEaseFactor   float64
	InitialEase     float64
	MinIntervalDays int
	MaxIntervalDays int

	FirstIntervalDays  int
	SecondIntervalDays int

	ReviewDurationFactor float64
	MinReviewMinutes     int

	DueCapPercent int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:   1.3,
		InitialEase:     2.5,
		MinIntervalDays: 1,
		MaxIntervalDays: 365,

		// First successful repetition repeats the next day, the second
		// jumps to six days; only later repetitions grow by ease factor.
		FirstIntervalDays:  1,
		SecondIntervalDays: 6,

		// Review tasks take roughly a third of the original duration,
		// but never less than a quarter hour.
		ReviewDurationFactor: 0.3,
		MinReviewMinutes:     15,

		// At most ~a third of completed items become reviews per pass.
		DueCapPercent: 30,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.InitialEase > 0 {
		params.InitialEase = config.InitialEase
	}
	if config.MinIntervalDays > 0 {
		params.MinIntervalDays = config.MinIntervalDays
	}
	if config.MaxIntervalDays > 0 {
		params.MaxIntervalDays = config.MaxIntervalDays
	}

	if config.FirstIntervalDays > 0 {
		params.FirstIntervalDays = config.FirstIntervalDays
	}
	if config.SecondIntervalDays > 0 {
		params.SecondIntervalDays = config.SecondIntervalDays
	}

	if config.ReviewDurationFactor > 0 {
		params.ReviewDurationFactor = config.ReviewDurationFactor
	}
	if config.MinReviewMinutes > 0 {
		params.MinReviewMinutes = config.MinReviewMinutes
	}

	if config.DueCapPercent > 0 {
		params.DueCapPercent = config.DueCapPercent
	}

	return params
}
