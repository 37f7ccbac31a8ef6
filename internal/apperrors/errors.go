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

// ErrDeleted indicates that the operation targets a resource already in its
// soft-deleted or cancelled terminal state. Distinct from ErrNotFound.
var ErrDeleted = errors.New("resource already deleted")

// ErrUnavailable indicates that a list-returning query produced no usable
// collection. Treated as a storage fault, not legitimate emptiness.
var ErrUnavailable = errors.New("data unavailable")

// AppError wraps an underlying failure with a code and a human-readable message.
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

// NewAppError creates a generic AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches errors.Is(err, ErrValidation).
// The message should describe the offending field.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewExistsError reports a uniqueness violation on the given field and value.
func NewExistsError(field, value string) *AppError {
	return &AppError{
		Code:    409,
		Message: fmt.Sprintf("there is already an element with %s %s", field, value),
		Err:     ErrDuplicate,
	}
}

// NewDeletedError reports an operation against an already deleted or cancelled element.
func NewDeletedError(id string) *AppError {
	return &AppError{
		Code:    409,
		Message: fmt.Sprintf("cannot modify a deleted element (id: %s)", id),
		Err:     ErrDeleted,
	}
}

// NewUnavailableError reports a storage contract that returned no usable collection.
func NewUnavailableError(message string) *AppError {
	return &AppError{Code: 500, Message: message, Err: ErrUnavailable}
}
