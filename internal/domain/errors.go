package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all layers. The transport layer maps them to
// response classes: ErrValidation and ErrLimitExceeded are caller mistakes,
// ErrNotFound is a missing resource, ErrConflict is a state the caller must
// resolve, and anything unmatched is an internal failure.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrLimitExceeded = errors.New("bulk operations are limited to 100 ideas")
)

// FieldError names one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError aggregates field-level problems so a caller sees all of
// them at once. It unwraps to ErrValidation for errors.Is checks.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors builds a ValidationError from collected field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
