package registry

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")
var ErrInvalidID = errors.New("invalid identifier")

// ValidationError reports a structural problem with a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Reason)
}

// ReferenceError reports a reference field that points at nothing usable.
// Reason is one of "invalid", "unknown" or "inactive".
type ReferenceError struct {
	Field  string
	ID     string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference %s %q is %s", e.Field, e.ID, e.Reason)
}

// DependentsError is returned when a delete is refused because other
// records still reference the target.
type DependentsError struct {
	Count int64
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("record has %d dependent records", e.Count)
}
