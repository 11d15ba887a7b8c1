package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resolution query matches no rows.
	ErrNotFound = errors.New("entity not found")

	// ErrLookupFailure is returned when a row cannot be read back right after it was written.
	ErrLookupFailure = errors.New("lookup after insert returned no rows")

	// ErrConstraintViolation is returned when the store rejects a write.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConnectivity is returned on transport or driver level faults.
	ErrConnectivity = errors.New("database connectivity failure")
)

// Error is the failure returned by every gateway operation. Kind is one of the
// sentinels above, or nil when the underlying error could not be classified.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap lets errors.Is match both the kind and the driver error.
func (e *Error) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}
