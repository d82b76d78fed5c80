// Package apperrors defines the domain error taxonomy shared by
// repositories, services and handlers. Repositories raise the most
// specific error they can detect; handlers alone map error kind to
// an HTTP status code.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError signals malformed or missing input (bad date format,
// empty required field, non-numeric id).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that the addressed entity does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ReferenceNotFoundError signals that a weak reference points at a row
// that does not exist. Field names the referencing column, ID the
// missing target.
type ReferenceNotFoundError struct {
	Field string
	ID    uint
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Field, e.ID)
}

// ConflictError signals a duplicate that must not be overwritten
// (username taken, book already catalogued).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NewConflict builds a ConflictError from a format string.
func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsReferenceNotFound reports whether err is a ReferenceNotFoundError.
func IsReferenceNotFound(err error) bool {
	var target *ReferenceNotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
