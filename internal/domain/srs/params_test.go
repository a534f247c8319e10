package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()

	assert.Equal(t, 1.3, params.MinEaseFactor)
	assert.Equal(t, 2.5, params.InitialEase)
	assert.Equal(t, 1, params.MinIntervalDays)
	assert.Equal(t, 365, params.MaxIntervalDays)
	assert.Equal(t, 1, params.FirstIntervalDays)
	assert.Equal(t, 6, params.SecondIntervalDays)
	assert.Equal(t, 0.3, params.ReviewDurationFactor)
	assert.Equal(t, 15, params.MinReviewMinutes)
	assert.Equal(t, 30, params.DueCapPercent)
}

func TestNewParamsOverrides(t *testing.T) {
	t.Parallel()

	params := NewParams(ParamsConfig{
		MinEaseFactor:      1.5,
		SecondIntervalDays: 4,
		DueCapPercent:      50,
	})

	assert.Equal(t, 1.5, params.MinEaseFactor)
	assert.Equal(t, 4, params.SecondIntervalDays)
	assert.Equal(t, 50, params.DueCapPercent)

	// Untouched fields keep their defaults.
	assert.Equal(t, 2.5, params.InitialEase)
	assert.Equal(t, 365, params.MaxIntervalDays)
	assert.Equal(t, 15, params.MinReviewMinutes)
}

func TestNewParamsZeroConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewDefaultParams(), NewParams(ParamsConfig{}))
}
