// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import (
	"errors"
	"fmt"
)

// ErrAlreadyFinished is returned by Finish on a round that is already finished.
var ErrAlreadyFinished = errors.New("round is already finished")

// ValidationKind classifies what a ValidationError is complaining about.
type ValidationKind string

const (
	// OutOfRange means a field value falls outside its allowed range.
	OutOfRange ValidationKind = "out_of_range"
	// Inconsistent means two fields disagree with each other.
	Inconsistent ValidationKind = "inconsistent"
	// Required means a mandatory field is empty.
	Required ValidationKind = "required"
)

// ValidationError reports a malformed field on a value object or aggregate.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func outOfRange(field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: OutOfRange, Field: field, Message: fmt.Sprintf(format, args...)}
}

// DuplicateHoleError is returned when a hole number is recorded twice.
type DuplicateHoleError struct {
	HoleNumber int
}

func (e *DuplicateHoleError) Error() string {
	return fmt.Sprintf("hole %d already recorded", e.HoleNumber)
}

// HoleNotRecordedError is returned when updating a hole that was never recorded.
type HoleNotRecordedError struct {
	HoleNumber int
}

func (e *HoleNotRecordedError) Error() string {
	return fmt.Sprintf("hole %d not recorded", e.HoleNumber)
}

// InvalidHoleCountError is returned by Finish when the round does not hold
// exactly 9 or 18 holes.
type InvalidHoleCountError struct {
	Count int
}

func (e *InvalidHoleCountError) Error() string {
	return fmt.Sprintf("round must have 9 or 18 holes to finish, got %d", e.Count)
}

// InvalidTransitionError is returned for a status transition the state
// machine does not allow.
type InvalidTransitionError struct {
	From    RoundStatus
	Message string
}

func (e *InvalidTransitionError) Error() string {
	return e.Message
}
