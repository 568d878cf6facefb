package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable error type carried in error envelopes.
type Kind string

const (
	KindNotFound     Kind = "NotFoundError"
	KindUnauthorized Kind = "UnauthorizedError"
	KindValidation   Kind = "ValidationError"
	KindUpdateFailed Kind = "UpdateFailedError"
	KindDeleteFailed Kind = "DeleteFailedError"
	KindAPIError     Kind = "APIError"
)

// Error is a typed application failure. Repositories and services raise it,
// the handler layer translates it to an HTTP status once.
type Error struct {
	Kind    Kind
	Message string
	// Details carries the field->message map for validation failures.
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same Kind, so callers can compare against the
// package sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUpdateFailed = &Error{Kind: KindUpdateFailed}
	ErrDeleteFailed = &Error{Kind: KindDeleteFailed}
	ErrAPI          = &Error{Kind: KindAPIError}
)

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Validation(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func UpdateFailed(format string, args ...any) *Error {
	return &Error{Kind: KindUpdateFailed, Message: fmt.Sprintf(format, args...)}
}

func DeleteFailed(format string, args ...any) *Error {
	return &Error{Kind: KindDeleteFailed, Message: fmt.Sprintf(format, args...)}
}

func Generic(message string, err error) *Error {
	return &Error{Kind: KindAPIError, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or KindAPIError for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindAPIError
}

// DetailsOf extracts validation details from err, if any.
func DetailsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
