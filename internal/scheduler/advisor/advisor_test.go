package advisor

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/scheduler"
)

// 2026-01-04 is a Sunday.
var today = time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)

func overdueItem(minutes int) *domain.WorkItem {
	return &domain.WorkItem{
		ID:               uuid.New(),
		Title:            "overdue task",
		Order:            1,
		EstimatedMinutes: &minutes,
	}
}

func defaultOptions() Options {
	return Options{
		Today:       today,
		HorizonDays: 14,
	}
}

func TestReschedulePrefersSoonerSlot(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		time.Monday:  {{StartMinute: 9 * 60, EndMinute: 12 * 60}},
		time.Tuesday: {{StartMinute: 19 * 60, EndMinute: 21 * 60}},
	}

	result, err := Reschedule(overdueItem(60), nil, avail, nil, defaultOptions())
	require.NoError(t, err)

	require.True(t, result.Success)
	require.NotNil(t, result.NewSlot)
	// Monday is one day out (score 95) and beats Tuesday (90).
	assert.Equal(t, today.AddDate(0, 0, 1), result.NewSlot.Date)
	assert.Equal(t, domain.TimeInterval{StartMinute: 540, EndMinute: 600}, result.NewSlot.Interval)
	assert.InDelta(t, 95, result.Score, 1e-9)
	assert.Contains(t, result.Explanation, "2026-01-05")
}

func TestReschedulePreferredBandWins(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		time.Monday:  {{StartMinute: 9 * 60, EndMinute: 12 * 60}},
		time.Tuesday: {{StartMinute: 19 * 60, EndMinute: 21 * 60}},
	}

	opts := defaultOptions()
	opts.PreferredBand = BandEvening

	result, err := Reschedule(overdueItem(60), nil, avail, nil, opts)
	require.NoError(t, err)

	require.True(t, result.Success)
	// The evening bonus lifts Tuesday 19:00 (90+20) over Monday (95).
	assert.Equal(t, today.AddDate(0, 0, 2), result.NewSlot.Date)
	assert.Equal(t, 19*60, result.NewSlot.Interval.StartMinute)
	assert.InDelta(t, 110, result.Score, 1e-9)
}

func TestRescheduleOffHoursPenalty(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		// Early Monday start is antisocial; Tuesday evening is not.
		time.Monday:  {{StartMinute: 6 * 60, EndMinute: 8 * 60}},
		time.Tuesday: {{StartMinute: 19 * 60, EndMinute: 21 * 60}},
	}

	result, err := Reschedule(overdueItem(60), nil, avail, nil, defaultOptions())
	require.NoError(t, err)

	require.True(t, result.Success)
	// Monday scores 100-5-30 = 65; Tuesday scores 100-10 = 90.
	assert.Equal(t, today.AddDate(0, 0, 2), result.NewSlot.Date)
	assert.InDelta(t, 90, result.Score, 1e-9)
}

func TestRescheduleTieKeepsEarliestCandidate(t *testing.T) {
	t.Parallel()

	// Two Monday windows with identical scoring profiles.
	avail := domain.WeeklyAvailability{
		time.Monday: {
			{StartMinute: 9 * 60, EndMinute: 10 * 60},
			{StartMinute: 10 * 60, EndMinute: 11 * 60},
		},
	}

	result, err := Reschedule(overdueItem(60), nil, avail, nil, defaultOptions())
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, 9*60, result.NewSlot.Interval.StartMinute)
}

func TestReschedulePriorityContribution(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		time.Monday: {{StartMinute: 9 * 60, EndMinute: 12 * 60}},
	}

	item := overdueItem(60)
	item.Difficulty = domain.DifficultyHard
	due := today.AddDate(0, 0, 2)
	item.DueDate = &due

	opts := defaultOptions()
	opts.WeightUrgency = true
	opts.WeightDifficulty = true

	result, err := Reschedule(item, nil, avail, nil, opts)
	require.NoError(t, err)

	require.True(t, result.Success)
	// Hard difficulty adds 30; a deadline two days out adds 40.
	// Score = 100 - 5 + 0.1*70 = 102.
	assert.InDelta(t, 102, result.Score, 1e-9)
}

func TestRescheduleAvoidsConflicts(t *testing.T) {
	t.Parallel()

	monday := today.AddDate(0, 0, 1)
	avail := domain.WeeklyAvailability{
		time.Monday: {{StartMinute: 9 * 60, EndMinute: 11 * 60}},
	}
	existing := []domain.ScheduledAssignment{
		{
			ID:             uuid.New(),
			WorkItemID:     uuid.New(),
			Date:           monday,
			Interval:       domain.TimeInterval{StartMinute: 540, EndMinute: 600},
			GrantedMinutes: 60,
		},
	}
	blocks := []domain.CalendarBlock{
		{ID: uuid.New(), Date: monday, Interval: domain.TimeInterval{StartMinute: 630, EndMinute: 660}},
	}

	// 60 minutes no longer fits on the first Monday (free: 10:00-10:30
	// and none after the block), so the proposal lands a week later.
	result, err := Reschedule(overdueItem(60), existing, avail, blocks, defaultOptions())
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, monday.AddDate(0, 0, 7), result.NewSlot.Date)

	// A 30-minute item still fits into the remaining Monday gap.
	result, err = Reschedule(overdueItem(30), existing, avail, blocks, defaultOptions())
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, monday, result.NewSlot.Date)
	assert.Equal(t, domain.TimeInterval{StartMinute: 600, EndMinute: 630}, result.NewSlot.Interval)
}

func TestRescheduleNoAvailableSlots(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		time.Monday: {{StartMinute: 9 * 60, EndMinute: 9*60 + 30}},
	}

	result, err := Reschedule(overdueItem(120), nil, avail, nil, defaultOptions())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Nil(t, result.NewSlot)
	assert.Equal(t, ReasonNoAvailableSlots, result.ReasonCode)
	assert.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Explanation, "120 minutes")
}

func TestRescheduleValidation(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		time.Monday: {{StartMinute: 540, EndMinute: 720}},
	}

	_, err := Reschedule(nil, nil, avail, nil, defaultOptions())
	assert.ErrorIs(t, err, ErrNilItem)

	done := overdueItem(60)
	done.Completed = true
	_, err = Reschedule(done, nil, avail, nil, defaultOptions())
	assert.ErrorIs(t, err, ErrItemCompleted)

	opts := defaultOptions()
	opts.Today = time.Time{}
	_, err = Reschedule(overdueItem(60), nil, avail, nil, opts)
	assert.ErrorIs(t, err, ErrTodayZero)

	opts = defaultOptions()
	opts.HorizonDays = scheduler.MaxHorizonDays + 10
	_, err = Reschedule(overdueItem(60), nil, avail, nil, opts)
	assert.ErrorIs(t, err, scheduler.ErrHorizonRange)

	opts = defaultOptions()
	opts.PreferredBand = "midnight"
	_, err = Reschedule(overdueItem(60), nil, avail, nil, opts)
	assert.ErrorIs(t, err, ErrUnknownBand)
}

func TestRescheduleDeterministic(t *testing.T) {
	t.Parallel()

	avail := domain.WeeklyAvailability{
		time.Monday:   {{StartMinute: 540, EndMinute: 720}},
		time.Thursday: {{StartMinute: 840, EndMinute: 1020}},
	}
	item := overdueItem(45)

	first, err := Reschedule(item, nil, avail, nil, defaultOptions())
	require.NoError(t, err)
	second, err := Reschedule(item, nil, avail, nil, defaultOptions())
	require.NoError(t, err)

	require.True(t, first.Success)
	assert.Equal(t, first.NewSlot.Date, second.NewSlot.Date)
	assert.Equal(t, first.NewSlot.Interval, second.NewSlot.Interval)
	assert.Equal(t, first.Score, second.Score)
}

func TestRescheduleRecoversFromInternalFault(t *testing.T) {
	// Not parallel: swaps the package-level search function.
	orig := searchFn
	defer func() { searchFn = orig }()

	searchFn = func(
		*domain.WorkItem,
		[]domain.ScheduledAssignment,
		domain.WeeklyAvailability,
		[]domain.CalendarBlock,
		Options,
		Weights,
		int,
		float64,
	) (scoredCandidate, bool) {
		panic("slot search corrupted")
	}

	avail := domain.WeeklyAvailability{
		time.Monday: {{StartMinute: 540, EndMinute: 720}},
	}

	result, err := Reschedule(overdueItem(60), nil, avail, nil, defaultOptions())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, ReasonSystemError, result.ReasonCode)
	assert.Contains(t, result.Explanation, "slot search corrupted")
	assert.NotEmpty(t, result.Suggestions)
}
