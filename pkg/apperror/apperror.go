// Package apperror defines the error kinds the API can return and how they map
// to HTTP status codes.
package apperror

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an error for the HTTP boundary.
type Kind string

const (
	KindValidation         Kind = "VALIDATION_FAILED"
	KindDuplicateEmail     Kind = "DUPLICATE_EMAIL"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindAuthentication     Kind = "AUTHENTICATION_REQUIRED"
	KindAuthorization      Kind = "FORBIDDEN"
	KindNotFound           Kind = "NOT_FOUND"
	KindInternal           Kind = "INTERNAL_ERROR"
)

// HTTPStatus returns the status code used for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicateEmail:
		return http.StatusConflict
	case KindInvalidCredentials, KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error with a client-safe message.
// Cause is never rendered to clients.
type Error struct {
	Kind    Kind
	Message string
	Details any
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Validation(msg string, details any) *Error {
	return &Error{Kind: KindValidation, Message: msg, Details: details}
}

func DuplicateEmail() *Error {
	return newError(KindDuplicateEmail, "user with this email already exists")
}

// InvalidCredentials uses one message for unknown email and wrong password.
func InvalidCredentials() *Error {
	return newError(KindInvalidCredentials, "invalid credentials")
}

func Authentication(msg string) *Error {
	return newError(KindAuthentication, msg)
}

func Authorization(msg string) *Error {
	return newError(KindAuthorization, msg)
}

func NotFound(msg string) *Error {
	return newError(KindNotFound, msg)
}

// Internal wraps cause with a stack trace; the public message stays generic.
func Internal(cause error, context string) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "internal server error",
		Cause:   errors.Wrap(cause, context),
	}
}

// From extracts an *Error from err's chain. Anything else is treated as an
// internal fault.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindInternal, Message: "internal server error", Cause: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
