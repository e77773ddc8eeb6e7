// Package staffdir defines the shared error vocabulary for the directory tool.
package staffdir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates a row or department id is no longer present.
var ErrNotFound = errors.New("not found")

// ErrDuplicate indicates a value that must be unique already exists.
var ErrDuplicate = errors.New("already exists")

// ErrValidation indicates rejected input, such as a blank required field.
var ErrValidation = errors.New("invalid input")

// ErrIncompleteBatch indicates a batch apply was attempted before every
// ambiguous item had a resolution.
var ErrIncompleteBatch = errors.New("incomplete batch")

// NotFoundError reports a missing employee row or department.
type NotFoundError struct {
	Resource string // "employee", "department"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateError reports a uniqueness violation.
type DuplicateError struct {
	Field string // "employee id", "extension", "department name"
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// Is implements errors.Is support.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// NewDuplicateError creates a new DuplicateError.
func NewDuplicateError(field, value string) *DuplicateError {
	return &DuplicateError{Field: field, Value: value}
}

// ValidationError reports rejected input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IncompleteBatchError reports a reconciliation or bulk-import apply that was
// rejected because one or more items still lack a resolution. Nothing is
// applied when this error is returned.
type IncompleteBatchError struct {
	Operation  string // "department sync", "bulk import"
	Unresolved []string
}

func (e *IncompleteBatchError) Error() string {
	return fmt.Sprintf("%s incomplete: no resolution for %s",
		e.Operation, strings.Join(e.Unresolved, ", "))
}

// Is implements errors.Is support.
func (e *IncompleteBatchError) Is(target error) bool {
	return target == ErrIncompleteBatch
}

// NewIncompleteBatchError creates a new IncompleteBatchError.
func NewIncompleteBatchError(operation string, unresolved []string) *IncompleteBatchError {
	return &IncompleteBatchError{Operation: operation, Unresolved: unresolved}
}
