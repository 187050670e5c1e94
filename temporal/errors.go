// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when a field value, such as a month or
	// day of month, lies outside of its legal range. All *FieldError
	// values unwrap to it.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedField is returned for fields that a chronology does
	// not support, e.g. HourOfDay.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrUnsupportedUnit is returned for units that a chronology does
	// not support, e.g. Hours.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrOverflow is returned when arithmetic exceeds either the range of
	// an int64 or the representable years of a chronology.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrWrongEra is returned when an era belonging to one chronology is
	// passed to another.
	ErrWrongEra = errors.New("era belongs to a different chronology")

	// ErrChronologyMismatch is returned when a date or period of one
	// chronology is combined with a date of another.
	ErrChronologyMismatch = errors.New("chronology mismatch")

	// ErrMissing is returned when a required argument is absent.
	ErrMissing = errors.New("missing required argument")

	// ErrConflict is returned when a set of fields being resolved into
	// a date contradict each other.
	ErrConflict = errors.New("conflicting field values")
)

// FieldError records an invalid value for a specific field.
type FieldError struct {
	Field   Field
	Value   int64
	Range   ValueRange
	Message string // Overrides the default message if set.
}

// Error implements error.
func (e *FieldError) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	if e.Range.IsZero() {
		return fmt.Sprintf("Invalid value for %v: %d", e.Field, e.Value)
	}
	return fmt.Sprintf("Invalid value for %v (valid values %v): %d", e.Field, e.Range, e.Value)
}

// Unwrap returns ErrInvalidValue.
func (e *FieldError) Unwrap() error {
	return ErrInvalidValue
}

// NewFieldError returns a *FieldError with the specified message.
func NewFieldError(field Field, value int64, format string, args ...any) error {
	return &FieldError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedField returns an error wrapping ErrUnsupportedField.
func UnsupportedField(field Field) error {
	return fmt.Errorf("%w: %v", ErrUnsupportedField, field)
}

// UnsupportedUnit returns an error wrapping ErrUnsupportedUnit.
func UnsupportedUnit(unit Unit) error {
	return fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
}
