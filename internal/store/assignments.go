package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
	"github.com/masddffee/FocusFlow-app-sub005/internal/timeutil"
)

// AssignmentStore is the single writer for committed assignments.
type AssignmentStore interface {
	// Commit claims the assignment's slot. It fails with ErrSlotConflict
	// if any committed assignment on the same date overlaps the claimed
	// interval; the check and the write happen atomically.
	Commit(ctx context.Context, assignment *domain.ScheduledAssignment) error

	// ListByDate returns the committed assignments for a civil date.
	ListByDate(ctx context.Context, date time.Time) ([]domain.ScheduledAssignment, error)

	// ListAll returns every committed assignment.
	ListAll(ctx context.Context) ([]domain.ScheduledAssignment, error)

	// Remove deletes a committed assignment, freeing its slot.
	Remove(ctx context.Context, id uuid.UUID) error
}

// MemoryStore is the in-process AssignmentStore. A single mutex serializes
// all writes, which is the whole point: the engine's pure functions do no
// locking, so slot claims must be arbitrated here.
type MemoryStore struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]domain.ScheduledAssignment
	byDate map[string][]uuid.UUID
}

// compile-time interface check
var _ AssignmentStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-process assignment store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[uuid.UUID]domain.ScheduledAssignment),
		byDate: make(map[string][]uuid.UUID),
	}
}

// Commit implements AssignmentStore.
func (s *MemoryStore) Commit(_ context.Context, assignment *domain.ScheduledAssignment) error {
	if assignment == nil {
		return ErrNilAssignment
	}
	if err := assignment.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[assignment.ID]; exists {
		return ErrDuplicateAssignment
	}

	key := timeutil.DateKey(assignment.Date)
	for _, id := range s.byDate[key] {
		if s.byID[id].Interval.Overlaps(assignment.Interval) {
			return ErrSlotConflict
		}
	}

	stored := *assignment
	stored.Date = timeutil.DateOf(stored.Date)
	s.byID[stored.ID] = stored
	s.byDate[key] = append(s.byDate[key], stored.ID)

	return nil
}

// ListByDate implements AssignmentStore. Results are ordered by start
// minute.
func (s *MemoryStore) ListByDate(_ context.Context, date time.Time) ([]domain.ScheduledAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byDate[timeutil.DateKey(date)]
	out := make([]domain.ScheduledAssignment, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.byID[id])
	}
	sortByStart(out)

	return out, nil
}

// ListAll implements AssignmentStore. Results are ordered by date, then
// start minute.
func (s *MemoryStore) ListAll(_ context.Context) ([]domain.ScheduledAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ScheduledAssignment, 0, len(s.byID))
	for _, a := range s.byID {
		out = append(out, a)
	}
	sortByDate(out)

	return out, nil
}

// Remove implements AssignmentStore.
func (s *MemoryStore) Remove(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, exists := s.byID[id]
	if !exists {
		return ErrAssignmentNotFound
	}

	delete(s.byID, id)

	key := timeutil.DateKey(assignment.Date)
	ids := s.byDate[key]
	for i := range ids {
		if ids[i] == id {
			s.byDate[key] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.byDate[key]) == 0 {
		delete(s.byDate, key)
	}

	return nil
}
