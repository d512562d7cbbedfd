package scheduling

import "fmt"

// ValidationError reports malformed or missing input. Fails fast; the
// caller should not retry without fixing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown entity reference.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// NewNotFoundError builds a NotFoundError for the given entity and id.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a business-rule violation: a slot overlap, an
// invalid state transition, or a race lost to a concurrent booking. It is
// surfaced to the caller, never silently resolved. Rule marks violations
// of booking rules (horizon, disabled day) rather than contention; the
// HTTP boundary maps the two onto 422 and 409 respectively.
type ConflictError struct {
	Message string
	Rule    bool
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError builds a contention ConflictError from a format string.
func NewConflictError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// NewRuleError builds a booking-rule ConflictError from a format string.
func NewRuleError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...), Rule: true}
}

// DependencyError reports a storage or external-service failure. The
// caller may retry; the engine does not retry internally because its
// operations are not automatically idempotent.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// NewDependencyError wraps a collaborator failure for the given operation.
func NewDependencyError(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}
