package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries every violated field, not just the first one found.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NotFoundError names the thing that was looked up and, where it helps the
// caller, the identifiers that would have been accepted.
type NotFoundError struct {
	Resource string
	ID       string
	Valid    []string
}

func (e *NotFoundError) Error() string {
	if len(e.Valid) > 0 {
		return fmt.Sprintf("%s '%s' not found, valid: %s", e.Resource, e.ID, strings.Join(e.Valid, ", "))
	}
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

// ConflictError marks a duplicate write that bypassed an idempotency check,
// e.g. a second unlock of the same achievement type.
type ConflictError struct {
	Resource string
	ID       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Resource, e.ID)
}

// StorageError wraps a collaborator I/O failure. Never swallowed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
