package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNilAssignment is returned when a nil assignment is offered.
	ErrNilAssignment = errors.New("assignment cannot be nil")

	// ErrSlotConflict is returned when a commit loses the race for a slot:
	// the claimed minutes were taken between proposal and commit.
	ErrSlotConflict = errors.New("slot already claimed")

	// ErrDuplicateAssignment is returned when an assignment ID is
	// committed twice.
	ErrDuplicateAssignment = errors.New("assignment already committed")

	// ErrAssignmentNotFound is returned when a requested assignment does
	// not exist in the store.
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// IsConflict reports whether the error means the slot race was lost. The
// caller's correct response is a fresh proposal, not a retry of the same
// commit.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrDuplicateAssignment)
}
