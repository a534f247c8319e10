package service

import (
	"errors"
	"fmt"
)

// Construction errors
var (
	ErrNilStore  = errors.New("assignment store cannot be nil")
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilLogger = errors.New("logger cannot be nil")
)

// PlannerError is the error type for planner service failures.
type PlannerError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PlannerError.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("planner %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("planner %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError.
func NewPlannerError(operation, message string, err error) *PlannerError {
	return &PlannerError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
