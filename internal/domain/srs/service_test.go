package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
)

func completedItem(title string, order int) domain.WorkItem {
	return domain.WorkItem{
		ID:        uuid.New(),
		Title:     title,
		Order:     order,
		Completed: true,
	}
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	today := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

	record := NewRecord(itemID, today)

	assert.Equal(t, itemID, record.ItemID)
	assert.Equal(t, 2.5, record.EaseFactor)
	assert.Equal(t, 1, record.IntervalDays)
	assert.Equal(t, 0, record.Repetitions)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), record.NextDueDate)
	require.NoError(t, record.Validate())
}

func TestInitialRecordUsesServiceParams(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	today := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	svc := NewServiceWithParams(NewParams(ParamsConfig{
		InitialEase:     3.0,
		MinIntervalDays: 2,
	}))

	record := svc.InitialRecord(itemID, today)

	assert.Equal(t, itemID, record.ItemID)
	assert.Equal(t, 3.0, record.EaseFactor)
	assert.Equal(t, 2, record.IntervalDays)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), record.NextDueDate)
	require.NoError(t, record.Validate())
}

func TestRecordReviewValidation(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	today := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.RecordReview(nil, 4, today)
	assert.ErrorIs(t, err, ErrNilRecord)

	record := NewRecord(uuid.New(), today)
	_, err = svc.RecordReview(record, 6, today)
	assert.ErrorIs(t, err, ErrInvalidQuality)

	_, err = svc.RecordReview(record, -1, today)
	assert.ErrorIs(t, err, ErrInvalidQuality)

	next, err := svc.RecordReview(record, 4, today)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Repetitions)
}

func TestIsDue(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	dueRecord := &domain.ReviewRecord{
		ItemID:       uuid.New(),
		EaseFactor:   2.5,
		IntervalDays: 1,
		NextDueDate:  today.AddDate(0, 0, -1),
	}
	futureRecord := &domain.ReviewRecord{
		ItemID:       uuid.New(),
		EaseFactor:   2.5,
		IntervalDays: 6,
		NextDueDate:  today.AddDate(0, 0, 3),
	}

	done := completedItem("algebra", 1)
	pending := domain.WorkItem{ID: uuid.New(), Title: "calculus", Order: 2}
	review := domain.WorkItem{ID: uuid.New(), Title: "Recall: algebra", Completed: true, IsReview: true}

	testCases := []struct {
		name     string
		item     *domain.WorkItem
		record   *domain.ReviewRecord
		expected bool
	}{
		{name: "completed item past due", item: &done, record: dueRecord, expected: true},
		{name: "due exactly today", item: &done, record: &domain.ReviewRecord{ItemID: done.ID, EaseFactor: 2.5, IntervalDays: 1, NextDueDate: today}, expected: true},
		{name: "not yet due", item: &done, record: futureRecord, expected: false},
		{name: "incomplete item never due", item: &pending, record: dueRecord, expected: false},
		{name: "review task never due", item: &review, record: dueRecord, expected: false},
		{name: "nil record", item: &done, record: nil, expected: false},
		{name: "nil item", item: nil, record: dueRecord, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, svc.IsDue(tc.item, tc.record, today))
		})
	}
}

func TestSelectDue(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Ten completed items, all overdue.
	var items []domain.WorkItem
	records := make(map[uuid.UUID]*domain.ReviewRecord)
	for i := 0; i < 10; i++ {
		item := completedItem("topic", i)
		items = append(items, item)
		records[item.ID] = &domain.ReviewRecord{
			ItemID:       item.ID,
			EaseFactor:   2.5,
			IntervalDays: 1,
			NextDueDate:  today.AddDate(0, 0, -1),
		}
	}

	// 30% of 10 completed items caps the pass at 3 reviews.
	due := svc.SelectDue(items, records, today, 30)
	require.Len(t, due, 3)

	// Original ordering is preserved.
	assert.Equal(t, items[0].ID, due[0].ID)
	assert.Equal(t, items[1].ID, due[1].ID)
	assert.Equal(t, items[2].ID, due[2].ID)

	// A tiny cap still yields at least one due item.
	due = svc.SelectDue(items[:2], records, today, 10)
	assert.Len(t, due, 1)

	// Nothing due yields nil.
	future := map[uuid.UUID]*domain.ReviewRecord{}
	for id, r := range records {
		cp := *r
		cp.NextDueDate = today.AddDate(0, 0, 5)
		future[id] = &cp
	}
	assert.Nil(t, svc.SelectDue(items, future, today, 30))

	// Zero cap percent falls back to the configured default.
	due = svc.SelectDue(items, records, today, 0)
	assert.Len(t, due, 3)
}

func TestSynthesizeReviewTask(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	item := completedItem("Binary search trees", 4)
	est := 120
	item.EstimatedMinutes = &est
	record := &domain.ReviewRecord{
		ItemID:       item.ID,
		EaseFactor:   2.5,
		IntervalDays: 6,
		Repetitions:  2,
		NextDueDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	task, newRecord, err := svc.SynthesizeReviewTask(&item, record)
	require.NoError(t, err)

	assert.Equal(t, "Recall: Binary search trees", task.Title)
	assert.Contains(t, task.Description, "Binary search trees")
	assert.True(t, task.IsReview)
	assert.False(t, task.Completed)
	assert.Equal(t, item.Order, task.Order)
	require.NotNil(t, task.EstimatedMinutes)
	// 30% of 120 minutes.
	assert.Equal(t, 36, *task.EstimatedMinutes)

	// Template counter advanced; source record untouched.
	assert.Equal(t, 1, newRecord.TemplateCounter)
	assert.Equal(t, 0, record.TemplateCounter)
}

func TestSynthesizeReviewTaskMinimumDuration(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	item := completedItem("Flash vocabulary", 1)
	est := 20
	item.EstimatedMinutes = &est
	record := NewRecord(item.ID, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	task, _, err := svc.SynthesizeReviewTask(&item, record)
	require.NoError(t, err)

	// floor(20 * 0.3) = 6 is lifted to the 15-minute minimum.
	assert.Equal(t, 15, *task.EstimatedMinutes)
}

func TestSynthesizeReviewTaskTemplateRotation(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	item := completedItem("Graph theory", 1)
	record := NewRecord(item.ID, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	var titles []string
	for i := 0; i < 5; i++ {
		task, next, err := svc.SynthesizeReviewTask(&item, record)
		require.NoError(t, err)
		titles = append(titles, task.Title)
		record = next
	}

	assert.Equal(t, []string{
		"Recall: Graph theory",
		"Practice: Graph theory",
		"Apply: Graph theory",
		"Connect: Graph theory",
		"Recall: Graph theory", // cycle wraps
	}, titles)
}

func TestSynthesizeReviewTaskFixedSelector(t *testing.T) {
	t.Parallel()

	svc := NewServiceWithSelector(NewDefaultParams(), FixedSelector(TemplateSynthesis))
	item := completedItem("Sorting algorithms", 2)
	record := NewRecord(item.ID, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	task, _, err := svc.SynthesizeReviewTask(&item, record)
	require.NoError(t, err)
	assert.Equal(t, "Connect: Sorting algorithms", task.Title)
}

func TestSynthesizeReviewTaskRejections(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	record := NewRecord(uuid.New(), time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	pending := domain.WorkItem{ID: uuid.New(), Title: "unfinished"}
	_, _, err := svc.SynthesizeReviewTask(&pending, record)
	assert.ErrorIs(t, err, ErrItemNotDone)

	review := domain.WorkItem{ID: uuid.New(), Title: "Recall: x", Completed: true, IsReview: true}
	_, _, err = svc.SynthesizeReviewTask(&review, record)
	assert.ErrorIs(t, err, ErrReviewOfReview)

	item := completedItem("ok", 1)
	_, _, err = svc.SynthesizeReviewTask(&item, nil)
	assert.ErrorIs(t, err, ErrNilRecord)

	_, _, err = svc.SynthesizeReviewTask(nil, record)
	assert.ErrorIs(t, err, ErrNilItem)
}
