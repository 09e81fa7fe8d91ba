package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDependency indicates that a downstream collaborator (record store, blob store)
// failed. The in-memory draft the caller was working with remains valid.
var ErrDependency = errors.New("dependency failure")

// ErrExport indicates that rendering or page layout of a document failed.
var ErrExport = errors.New("export failure")

// ErrExportInProgress indicates that an export for the same invoice is
// already outstanding and a second one may not start.
var ErrExportInProgress = errors.New("export already in progress")

// AppError carries an HTTP-ish status code and a safe message alongside the
// underlying cause. Repositories use it for infrastructure failures; the raw
// cause is logged, never shown to clients.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ValidationError is a field-level validation failure. It wraps ErrValidation
// so errors.Is checks keep working while handlers can list the offending fields.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for the named fields.
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: message}
}
