package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// AuthenticationError reports bad credentials at login.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "invalid email or password"
	}
	return e.Message
}

// PermissionDeniedError reports a failed authentication or ownership check.
type PermissionDeniedError struct{}

func (e *PermissionDeniedError) Error() string {
	return "permission denied"
}

// NotFoundError reports a missing entity or referenced entity. Resource names
// which kind is absent (Task, User, Status, Label, Executor).
type NotFoundError struct {
	Resource string
	ID       uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d not found", e.Resource, e.ID)
}

// AlreadyExistsError reports a unique-constraint violation on name or email.
type AlreadyExistsError struct {
	Resource string
	Value    string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with value %q already exists", e.Resource, e.Value)
}

// DeleteConflictError reports a delete blocked by referencing rows.
type DeleteConflictError struct {
	Resource string
	ID       uint64
}

func (e *DeleteConflictError) Error() string {
	return fmt.Sprintf("%s with id=%d can not be deleted", e.Resource, e.ID)
}

// FieldViolation is one invalid field in a request payload.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates all field violations for one request.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + " - " + v.Message
	}
	return strings.Join(parts, "; ")
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
