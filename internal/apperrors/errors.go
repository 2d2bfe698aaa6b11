package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid authenticated session.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code and a user-presentable message
// alongside the wrapped cause. Repositories use it to translate database
// failures into domain messages.
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

// Is lets AppError instances match the package sentinels via errors.Is,
// based on their status code.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrDuplicate:
		return e.Code == http.StatusConflict
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	}
	return false
}

// NewAppError creates a generic AppError with an explicit code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// wrapCause keeps the sentinel matchable via errors.Is while preserving the
// underlying cause when one exists.
func wrapCause(sentinel, err error) error {
	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// NewNotFoundError creates an AppError for a missing resource.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: wrapCause(ErrNotFound, err)}
}

// NewValidationFailedError creates an AppError for rejected input, including
// uniqueness and foreign key violations translated to domain messages.
func NewValidationFailedError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: wrapCause(ErrValidation, err)}
}

// NewConflictError creates an AppError for duplicate resources.
func NewConflictError(message string, err error) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: wrapCause(ErrDuplicate, err)}
}

// NewForbiddenError creates an AppError for permission failures.
func NewForbiddenError(message string, err error) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: wrapCause(ErrForbidden, err)}
}
