package mediabackend

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a referenced record does not exist. Callers wrap
// it with the entity and id; errors.Is still matches.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a malformed or missing field, a disallowed
// MIME type, or an oversized payload. It is surfaced to the caller as a
// client error and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConstraintViolation reports a uniqueness violation from the
// repository, tagged with the constraint it hit so callers can branch on
// the violation target instead of inspecting driver errors.
type ConstraintViolation struct {
	Constraint string
	PrimaryKey bool
	Err        error
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint %s violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintViolation) Unwrap() error {
	return e.Err
}

// StorageError reports an object-store write that failed after
// exhausting retries, or one rejected before any attempt (empty
// payload, no store configured). Once a StorageError occurs the record
// write for that request is never attempted.
type StorageError struct {
	Op       string
	Key      string
	Attempts int
	Err      error
}

func (e *StorageError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("storage %s failed for key %q after %d attempts: %v", e.Op, e.Key, e.Attempts, e.Err)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
