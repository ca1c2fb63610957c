package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// DateLayout is the calendar date format used for driver start dates and roster days.
const DateLayout = "2006-01-02"

// ValidationError reports a rejected input field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ParseDate parses a required YYYY-MM-DD field.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, NewValidationError(field, "is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, fmt.Sprintf("invalid date %q", value))
	}
	return t, nil
}
