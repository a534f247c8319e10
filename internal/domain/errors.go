package domain

import "errors"

// Common domain errors used across the scheduling engine.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidInterval is returned when a time interval does not end
	// strictly after it starts.
	ErrInvalidInterval = errors.New("interval end must be after interval start")

	// ErrIntervalOutOfDay is returned when a time interval falls outside
	// the 00:00-24:00 minute range of a single day.
	ErrIntervalOutOfDay = errors.New("interval must fall within a single day")

	// ErrOverlappingIntervals is returned when a day's availability
	// intervals overlap or are out of chronological order.
	ErrOverlappingIntervals = errors.New("availability intervals must be ordered and non-overlapping")

	// ErrInvalidQuality is returned when a review quality grade is outside 0-5.
	ErrInvalidQuality = errors.New("review quality must be between 0 and 5")
)
