package config

import (
	"github.com/masddffee/FocusFlow-app-sub005/internal/domain/srs"
	"github.com/masddffee/FocusFlow-app-sub005/internal/scheduler/advisor"
)

// Config holds all engine configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Advisor   AdvisorConfig   `mapstructure:"advisor"`
	Review    ReviewConfig    `mapstructure:"review"`
}

// LoggingConfig contains the structured-logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SchedulerConfig contains the slot-finder settings.
type SchedulerConfig struct {
	// DefaultDurationMinutes resolves items carrying neither a user
	// override nor an upstream estimate.
	DefaultDurationMinutes int `mapstructure:"default_duration_minutes" validate:"required,gt=0"`

	// HorizonDays is the default day horizon for scheduling passes.
	HorizonDays int `mapstructure:"horizon_days" validate:"required,gt=0,lte=60"`
}

// AdvisorConfig contains the reschedule scoring weights. They are policy
// constants, kept in configuration so they can be tuned without touching
// the search itself.
type AdvisorConfig struct {
	BaseScore          float64 `mapstructure:"base_score" validate:"required,gt=0"`
	PerDayPenalty      float64 `mapstructure:"per_day_penalty" validate:"required,gt=0"`
	PreferredBandBonus float64 `mapstructure:"preferred_band_bonus" validate:"required,gt=0"`
	OffHoursPenalty    float64 `mapstructure:"off_hours_penalty" validate:"required,gt=0"`
	PriorityWeight     float64 `mapstructure:"priority_weight" validate:"required,gt=0"`
	DayStartHour       int     `mapstructure:"day_start_hour" validate:"gte=0,lt=24"`
	DayEndHour         int     `mapstructure:"day_end_hour" validate:"required,gt=0,lte=24"`
}

// Weights converts the configuration into advisor scoring weights.
func (c AdvisorConfig) Weights() advisor.Weights {
	return advisor.Weights{
		Base:               c.BaseScore,
		PerDayPenalty:      c.PerDayPenalty,
		PreferredBandBonus: c.PreferredBandBonus,
		OffHoursPenalty:    c.OffHoursPenalty,
		PriorityWeight:     c.PriorityWeight,
		DayStartHour:       c.DayStartHour,
		DayEndHour:         c.DayEndHour,
	}
}

// ReviewConfig contains the spaced-repetition settings.
type ReviewConfig struct {
	MinEaseFactor        float64 `mapstructure:"min_ease_factor" validate:"required,gt=1"`
	InitialEase          float64 `mapstructure:"initial_ease" validate:"required,gt=1"`
	MinIntervalDays      int     `mapstructure:"min_interval_days" validate:"required,gte=1"`
	MaxIntervalDays      int     `mapstructure:"max_interval_days" validate:"required,gte=1,lte=3650"`
	FirstIntervalDays    int     `mapstructure:"first_interval_days" validate:"required,gte=1"`
	SecondIntervalDays   int     `mapstructure:"second_interval_days" validate:"required,gte=1"`
	ReviewDurationFactor float64 `mapstructure:"review_duration_factor" validate:"required,gt=0,lte=1"`
	MinReviewMinutes     int     `mapstructure:"min_review_minutes" validate:"required,gt=0"`
	DueCapPercent        int     `mapstructure:"due_cap_percent" validate:"required,gte=1,lte=100"`
}

// Params converts the configuration into review-scheduler parameters.
func (c ReviewConfig) Params() *srs.Params {
	return srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:        c.MinEaseFactor,
		InitialEase:          c.InitialEase,
		MinIntervalDays:      c.MinIntervalDays,
		MaxIntervalDays:      c.MaxIntervalDays,
		FirstIntervalDays:    c.FirstIntervalDays,
		SecondIntervalDays:   c.SecondIntervalDays,
		ReviewDurationFactor: c.ReviewDurationFactor,
		MinReviewMinutes:     c.MinReviewMinutes,
		DueCapPercent:        c.DueCapPercent,
	})
}
