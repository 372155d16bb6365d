package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the parent of every synchronous validation error.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAmount is returned for negative spend amounts.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	// ErrInvalidSchedule is returned for malformed dayparting schedules.
	ErrInvalidSchedule = fmt.Errorf("%w: malformed dayparting schedule", ErrInvalidInput)
	// ErrNotFound is returned for unknown campaign, brand or schedule references.
	ErrNotFound = errors.New("not found")
	// ErrTransientConflict marks lock contention or a concurrent writer; the
	// operation may be retried.
	ErrTransientConflict = errors.New("transient store conflict")
)
