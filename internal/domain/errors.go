package domain

import (
	"errors"
	"fmt"
)

// ErrMissingAuditIdentity is returned when a create or update is attempted
// without a resolvable acting user.
var ErrMissingAuditIdentity = errors.New("audit identity is required for this operation")

// ErrNotFound is the common lookup failure for any entity.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ErrUniqueViolation maps a Postgres 23505 error onto the constraint that
// rejected the write. The write is surfaced as rejected, never auto-corrected.
type ErrUniqueViolation struct {
	Constraint string
	Err        error
}

func (e *ErrUniqueViolation) Error() string {
	return fmt.Sprintf("unique constraint violated: %s", e.Constraint)
}

func (e *ErrUniqueViolation) Unwrap() error {
	return e.Err
}

// ErrForeignKeyViolation maps a Postgres 23503 error: the write would orphan
// or dangle a reference.
type ErrForeignKeyViolation struct {
	Constraint string
	Err        error
}

func (e *ErrForeignKeyViolation) Error() string {
	return fmt.Sprintf("foreign key constraint violated: %s", e.Constraint)
}

func (e *ErrForeignKeyViolation) Unwrap() error {
	return e.Err
}

// ErrNotNullViolation maps a Postgres 23502 error.
type ErrNotNullViolation struct {
	Column string
	Err    error
}

func (e *ErrNotNullViolation) Error() string {
	return fmt.Sprintf("not-null constraint violated on column: %s", e.Column)
}

func (e *ErrNotNullViolation) Unwrap() error {
	return e.Err
}

// ErrInvalidTransition is returned when a workflow operation is applied to an
// entity that is not in the expected state, e.g. approving an already
// resolved join request.
type ErrInvalidTransition struct {
	Entity string
	From   string
	To     string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid %s transition from %s to %s", e.Entity, e.From, e.To)
}

// ErrWaiverVersionInUse is returned when an edit is attempted on a waiver
// version already referenced by at least one user waiver.
type ErrWaiverVersionInUse struct {
	VersionID string
}

func (e *ErrWaiverVersionInUse) Error() string {
	return fmt.Sprintf("waiver version %s is referenced by accepted waivers and cannot be edited", e.VersionID)
}

// ValidationError represents an error caused by invalid input or parameters.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message.
func NewValidationError(message string) error {
	return ValidationError{Message: message}
}
