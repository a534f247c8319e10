package srs

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// PassingQuality is the lowest review grade that counts as successful
// recall. Grades below it reset the repetition schedule.
const PassingQuality = 3

// Common errors
var (
	ErrNilRecord      = errors.New("review record cannot be nil")
	ErrNilItem        = errors.New("work item cannot be nil")
	ErrInvalidQuality = errors.New("review quality must be between 0 and 5")
	ErrItemNotDone    = errors.New("only completed items enter spaced repetition")
	ErrReviewOfReview = errors.New("review tasks are not themselves reviewed")
)

// Service defines the interface for spaced-repetition operations.
type Service interface {
	// RecordReview computes a new record from a review grade (0-5).
	RecordReview(
		record *domain.ReviewRecord,
		quality int,
		today time.Time,
	) (*domain.ReviewRecord, error)

	// IsDue reports whether the item's next review date has arrived.
	IsDue(item *domain.WorkItem, record *domain.ReviewRecord, today time.Time) bool

	// SelectDue picks the due items for one review pass, capped to a share
	// of the completed item count. capPercent <= 0 uses the configured default.
	SelectDue(
		items []domain.WorkItem,
		records map[uuid.UUID]*domain.ReviewRecord,
		today time.Time,
		capPercent int,
	) []domain.WorkItem

	// SynthesizeReviewTask derives a review task for a due item. The
	// returned record carries the advanced template counter; the caller
	// persists it in place of the input record.
	SynthesizeReviewTask(
		item *domain.WorkItem,
		record *domain.ReviewRecord,
	) (*domain.WorkItem, *domain.ReviewRecord, error)

	// InitialRecord creates the first review record for a completed item
	// using this scheduler's configured parameters.
	InitialRecord(itemID uuid.UUID, today time.Time) *domain.ReviewRecord
}

// NewRecord creates the initial review record for a completed item with
// the default parameters: default ease factor, a one-day interval, and a
// first review tomorrow. Schedulers with custom parameters create records
// through Service.InitialRecord instead.
func NewRecord(itemID uuid.UUID, today time.Time) *domain.ReviewRecord {
	return initialRecord(itemID, today, NewDefaultParams())
}

func initialRecord(itemID uuid.UUID, today time.Time, params *Params) *domain.ReviewRecord {
	return &domain.ReviewRecord{
		ItemID:       itemID,
		EaseFactor:   params.InitialEase,
		IntervalDays: params.MinIntervalDays,
		Repetitions:  0,
		NextDueDate:  timeutil.AddDays(today, 1),
	}
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params   *Params
	selector TemplateSelector
}

// NewDefaultService creates a review scheduler with default parameters and
// round-robin template selection.
func NewDefaultService() Service {
	return &defaultService{
		params:   NewDefaultParams(),
		selector: RoundRobinSelector,
	}
}

// NewServiceWithParams creates a review scheduler with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params:   params,
		selector: RoundRobinSelector,
	}
}

// NewServiceWithSelector creates a review scheduler with a custom template
// selection function, e.g. a fixed selector in tests.
func NewServiceWithSelector(params *Params, selector TemplateSelector) Service {
	if selector == nil {
		selector = RoundRobinSelector
	}
	return &defaultService{
		params:   params,
		selector: selector,
	}
}

// RecordReview implements the Service interface.
func (s *defaultService) RecordReview(
	record *domain.ReviewRecord,
	quality int,
	today time.Time,
) (*domain.ReviewRecord, error) {
	if record == nil {
		return nil, ErrNilRecord
	}

	if !domain.ValidQuality(quality) {
		return nil, ErrInvalidQuality
	}

	return calculateNextRecord(record, quality, today, s.params), nil
}

// IsDue implements the Service interface. Incomplete items and synthesized
// review tasks are never due, regardless of the record's date.
func (s *defaultService) IsDue(
	item *domain.WorkItem,
	record *domain.ReviewRecord,
	today time.Time,
) bool {
	if item == nil || record == nil {
		return false
	}

	if !item.Completed || item.IsReview {
		return false
	}

	return !record.NextDueDate.After(timeutil.DateOf(today))
}

// SelectDue implements the Service interface. The cap is
// floor(completedCount * capPercent / 100), with a floor of one whenever
// anything is due so progress is never silently stalled. Original item
// order is preserved.
func (s *defaultService) SelectDue(
	items []domain.WorkItem,
	records map[uuid.UUID]*domain.ReviewRecord,
	today time.Time,
	capPercent int,
) []domain.WorkItem {
	if capPercent <= 0 {
		capPercent = s.params.DueCapPercent
	}

	completed := 0
	for i := range items {
		if items[i].Completed && !items[i].IsReview {
			completed++
		}
	}

	var due []domain.WorkItem
	for i := range items {
		if s.IsDue(&items[i], records[items[i].ID], today) {
			due = append(due, items[i])
		}
	}

	if len(due) == 0 {
		return nil
	}

	limit := completed * capPercent / 100
	if limit < 1 {
		limit = 1
	}
	if len(due) > limit {
		due = due[:limit]
	}

	return due
}

// SynthesizeReviewTask implements the Service interface. The derived task
// keeps the source item's sequence order, takes a configured fraction of
// its duration, and is flagged so it never re-enters spaced repetition.
func (s *defaultService) SynthesizeReviewTask(
	item *domain.WorkItem,
	record *domain.ReviewRecord,
) (*domain.WorkItem, *domain.ReviewRecord, error) {
	if item == nil {
		return nil, nil, ErrNilItem
	}
	if record == nil {
		return nil, nil, ErrNilRecord
	}
	if !item.Completed {
		return nil, nil, ErrItemNotDone
	}
	if item.IsReview {
		return nil, nil, ErrReviewOfReview
	}

	template := s.selector(record)

	duration := int(float64(item.ResolvedMinutes(s.params.MinReviewMinutes)) * s.params.ReviewDurationFactor)
	if duration < s.params.MinReviewMinutes {
		duration = s.params.MinReviewMinutes
	}

	task := &domain.WorkItem{
		ID:               uuid.New(),
		Title:            template.Title(item.Title),
		Description:      template.Description(item.Title),
		Order:            item.Order,
		EstimatedMinutes: &duration,
		Difficulty:       item.Difficulty,
		IsReview:         true,
	}

	newRecord := &domain.ReviewRecord{
		ItemID:          record.ItemID,
		EaseFactor:      record.EaseFactor,
		IntervalDays:    record.IntervalDays,
		Repetitions:     record.Repetitions,
		NextDueDate:     record.NextDueDate,
		LastQuality:     record.LastQuality,
		TemplateCounter: record.TemplateCounter + 1,
	}

	return task, newRecord, nil
}

// InitialRecord implements the Service interface.
func (s *defaultService) InitialRecord(itemID uuid.UUID, today time.Time) *domain.ReviewRecord {
	return initialRecord(itemID, today, s.params)
}
