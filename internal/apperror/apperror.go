// Package apperror defines the typed error taxonomy surfaced by the service
// layer. Handlers map an error's kind to an HTTP status; everything the DAOs
// raise is wrapped into one of these kinds before it crosses the service
// boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind string

const (
	// KindValidation indicates missing or malformed input (HTTP 400).
	KindValidation Kind = "VALIDATION_ERROR"
	// KindInvalidCredential indicates a missing or unresolvable credential (HTTP 401).
	KindInvalidCredential Kind = "INVALID_CREDENTIAL"
	// KindAccessDenied indicates consent is not approved or ownership does not match (HTTP 403).
	KindAccessDenied Kind = "ACCESS_DENIED"
	// KindNotFound indicates the target entity is absent (HTTP 404).
	KindNotFound Kind = "NOT_FOUND"
	// KindConflict indicates the entity state changed under the caller (HTTP 409).
	KindConflict Kind = "CONFLICT"
	// KindPersistence indicates a storage fault (HTTP 500, generic message).
	KindPersistence Kind = "PERSISTENCE_ERROR"
)

// AppError is the error type returned by all service operations.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap creates an AppError that wraps a cause.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error. err may be nil.
func Validation(message string, err error) *AppError {
	return Wrap(KindValidation, message, err)
}

// InvalidCredential creates an invalid-credential error. err may be nil.
func InvalidCredential(message string, err error) *AppError {
	return Wrap(KindInvalidCredential, message, err)
}

// AccessDenied creates an access-denied error. err may be nil.
func AccessDenied(message string, err error) *AppError {
	return Wrap(KindAccessDenied, message, err)
}

// NotFound creates a not-found error. err may be nil.
func NotFound(message string, err error) *AppError {
	return Wrap(KindNotFound, message, err)
}

// Conflict creates a conflict error. err may be nil.
func Conflict(message string, err error) *AppError {
	return Wrap(KindConflict, message, err)
}

// Persistence wraps a storage fault. The message shown to callers stays
// generic; the cause is kept for logging.
func Persistence(message string, err error) *AppError {
	return Wrap(KindPersistence, message, err)
}

// KindOf extracts the kind from an error, defaulting to KindPersistence for
// untyped errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// HTTPStatus returns the HTTP status code for an error kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredential:
		return http.StatusUnauthorized
	case KindAccessDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
