package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/masddffee/FocusFlow-app-sub005/internal/config"
	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/domain/srs"
	"github.com/masddffee/FocusFlow-app-sub005/internal/scheduler"
	"github.com/masddffee/FocusFlow-app-sub005/internal/scheduler/advisor"
	"github.com/masddffee/FocusFlow-app-sub005/internal/store"
)

// PlannerService wires the scheduling engine to the assignment store and
// the configured policy values.
type PlannerService struct {
	store  store.AssignmentStore
	review srs.Service
	cfg    *config.Config
	logger *slog.Logger
}

// NewPlannerService creates a planner service. The review scheduler is
// derived from the config's review parameters.
func NewPlannerService(
	assignments store.AssignmentStore,
	cfg *config.Config,
	logger *slog.Logger,
) (*PlannerService, error) {
	if assignments == nil {
		return nil, ErrNilStore
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &PlannerService{
		store:  assignments,
		review: srs.NewServiceWithParams(cfg.Review.Params()),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// PlanSchedule runs a scheduling pass against the currently committed
// assignments and commits every placement through the store. A placement
// that loses a commit race is moved to the unscheduled list instead of
// failing the pass.
func (s *PlannerService) PlanSchedule(
	ctx context.Context,
	items []domain.WorkItem,
	availability domain.WeeklyAvailability,
	blocks []domain.CalendarBlock,
	opts scheduler.Options,
) (*scheduler.Result, error) {
	if opts.DefaultDurationMinutes == 0 {
		opts.DefaultDurationMinutes = s.cfg.Scheduler.DefaultDurationMinutes
	}
	if opts.HorizonDays == 0 {
		opts.HorizonDays = s.cfg.Scheduler.HorizonDays
	}

	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, NewPlannerError("schedule", "listing committed assignments", err)
	}

	result, err := scheduler.Schedule(items, availability, existing, blocks, opts)
	if err != nil {
		return nil, NewPlannerError("schedule", "running scheduling pass", err)
	}

	committed := result.Scheduled[:0]
	for i := range result.Scheduled {
		a := result.Scheduled[i]
		if err := s.store.Commit(ctx, &a); err != nil {
			if store.IsConflict(err) {
				s.logger.Warn("placement lost commit race",
					"work_item_id", a.WorkItemID,
					"date", a.Date.Format(time.DateOnly),
					"interval", a.Interval.String())
				result.Unscheduled = append(result.Unscheduled, scheduler.UnscheduledItem{
					ItemID: a.WorkItemID,
					Reason: "proposed slot was claimed concurrently",
				})
				continue
			}
			return nil, NewPlannerError("schedule", "committing assignment", err)
		}
		committed = append(committed, a)
	}
	result.Scheduled = committed

	s.logger.Info("scheduling pass complete",
		"scheduled", len(result.Scheduled),
		"unscheduled", len(result.Unscheduled))

	return result, nil
}

// CheckFeasibility reports aggregate capacity versus demand up to the
// deadline without touching any state.
func (s *PlannerService) CheckFeasibility(
	_ context.Context,
	items []domain.WorkItem,
	availability domain.WeeklyAvailability,
	today, deadline time.Time,
) (*scheduler.FeasibilityReport, error) {
	report, err := scheduler.Analyze(
		items, availability, today, deadline,
		s.cfg.Scheduler.DefaultDurationMinutes,
	)
	if err != nil {
		return nil, NewPlannerError("feasibility", "analyzing capacity", err)
	}

	if !report.Feasible {
		s.logger.Info("deadline not feasible",
			"required_minutes", report.RequiredMinutes,
			"available_minutes", report.AvailableMinutes,
			"shortfall_minutes", report.ShortfallMinutes)
	}

	return report, nil
}

// ProposeReschedule asks the advisor for a replacement slot, searching
// around the currently committed assignments. The proposal is not
// committed; call CommitAssignment once the user accepts it.
func (s *PlannerService) ProposeReschedule(
	ctx context.Context,
	item *domain.WorkItem,
	availability domain.WeeklyAvailability,
	blocks []domain.CalendarBlock,
	opts advisor.Options,
) (*advisor.Result, error) {
	if opts.HorizonDays == 0 {
		opts.HorizonDays = s.cfg.Scheduler.HorizonDays
	}
	if opts.DefaultDurationMinutes == 0 {
		opts.DefaultDurationMinutes = s.cfg.Scheduler.DefaultDurationMinutes
	}
	zero := advisor.Weights{}
	if opts.Weights == zero {
		opts.Weights = s.cfg.Advisor.Weights()
	}

	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, NewPlannerError("reschedule", "listing committed assignments", err)
	}

	result, err := advisor.Reschedule(item, existing, availability, blocks, opts)
	if err != nil {
		return nil, NewPlannerError("reschedule", "searching for a slot", err)
	}

	if result.Success {
		s.logger.Info("reschedule proposal found",
			"work_item_id", item.ID,
			"date", result.NewSlot.Date.Format(time.DateOnly),
			"interval", result.NewSlot.Interval.String(),
			"score", result.Score)
	} else {
		s.logger.Warn("reschedule proposal failed",
			"work_item_id", item.ID,
			"reason_code", string(result.ReasonCode))
	}

	return result, nil
}

// CommitAssignment claims a proposed slot. ErrSlotConflict means the slot
// was taken since the proposal; ask for a fresh proposal in that case.
func (s *PlannerService) CommitAssignment(
	ctx context.Context,
	assignment *domain.ScheduledAssignment,
) error {
	if err := s.store.Commit(ctx, assignment); err != nil {
		if store.IsConflict(err) {
			return err
		}
		return NewPlannerError("commit", "storing assignment", err)
	}

	s.logger.Info("assignment committed",
		"assignment_id", assignment.ID,
		"work_item_id", assignment.WorkItemID,
		"date", assignment.Date.Format(time.DateOnly),
		"interval", assignment.Interval.String())

	return nil
}

// ReleaseAssignment frees a committed slot, e.g. when the user removes an
// overdue commitment instead of rescheduling it.
func (s *PlannerService) ReleaseAssignment(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return NewPlannerError("release", "removing assignment", err)
	}

	s.logger.Info("assignment released", "assignment_id", id)
	return nil
}

// InitialReviewRecord creates the first review record for a completed
// item from the configured review parameters.
func (s *PlannerService) InitialReviewRecord(itemID uuid.UUID, today time.Time) *domain.ReviewRecord {
	return s.review.InitialRecord(itemID, today)
}

// DueReviews selects the completed items due for review today, capped by
// the configured share per pass.
func (s *PlannerService) DueReviews(
	items []domain.WorkItem,
	records map[uuid.UUID]*domain.ReviewRecord,
	today time.Time,
) []domain.WorkItem {
	return s.review.SelectDue(items, records, today, s.cfg.Review.DueCapPercent)
}

// SynthesizeReviews derives review tasks for the due items, returning the
// tasks alongside the records updated with advanced template counters.
func (s *PlannerService) SynthesizeReviews(
	due []domain.WorkItem,
	records map[uuid.UUID]*domain.ReviewRecord,
) ([]domain.WorkItem, map[uuid.UUID]*domain.ReviewRecord, error) {
	tasks := make([]domain.WorkItem, 0, len(due))
	updated := make(map[uuid.UUID]*domain.ReviewRecord, len(records))
	for id, r := range records {
		updated[id] = r
	}

	for i := range due {
		record, ok := records[due[i].ID]
		if !ok {
			continue
		}

		task, newRecord, err := s.review.SynthesizeReviewTask(&due[i], record)
		if err != nil {
			return nil, nil, NewPlannerError("review", "synthesizing review task", err)
		}

		tasks = append(tasks, *task)
		updated[due[i].ID] = newRecord
	}

	return tasks, updated, nil
}

// RecordReview grades a review and returns the item's next review state.
func (s *PlannerService) RecordReview(
	record *domain.ReviewRecord,
	quality int,
	today time.Time,
) (*domain.ReviewRecord, error) {
	next, err := s.review.RecordReview(record, quality, today)
	if err != nil {
		return nil, NewPlannerError("review", "recording review grade", err)
	}

	s.logger.Debug("review recorded",
		"item_id", record.ItemID,
		"quality", quality,
		"next_due", next.NextDueDate.Format(time.DateOnly),
		"interval_days", next.IntervalDays)

	return next, nil
}
