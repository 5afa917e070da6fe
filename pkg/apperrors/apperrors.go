package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason classifies a rejection. Every reason is a caller error: the request
// is reported back synchronously and never retried by this service.
type Reason string

const (
	ReasonMissingField       Reason = "missing_field"
	ReasonInvalidFormat      Reason = "invalid_format"
	ReasonInvalidValue       Reason = "invalid_value"
	ReasonNotFound           Reason = "not_found"
	ReasonInvalidCredentials Reason = "invalid_credentials"
	ReasonForbidden          Reason = "forbidden"
	ReasonConflict           Reason = "conflict"
)

// Error is a tagged rejection returned instead of a success result.
type Error struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Reason)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Reason)
}

func newError(reason Reason, field, message string) *Error {
	return &Error{Reason: reason, Field: field, Message: message}
}

func MissingField(field string) *Error {
	return newError(ReasonMissingField, field, "is required")
}

func InvalidFormat(field, message string) *Error {
	return newError(ReasonInvalidFormat, field, message)
}

func InvalidValue(field, message string) *Error {
	return newError(ReasonInvalidValue, field, message)
}

func NotFound(resource string) *Error {
	return newError(ReasonNotFound, "", resource+" not found")
}

func InvalidCredentials() *Error {
	// Deliberately does not say whether the username or the password was wrong.
	return newError(ReasonInvalidCredentials, "", "invalid username or password")
}

func Forbidden(message string) *Error {
	return newError(ReasonForbidden, "", message)
}

func Conflict(message string) *Error {
	return newError(ReasonConflict, "", message)
}

// ReasonOf returns the rejection reason carried by err, or "" when err is not
// a tagged rejection (store failures and other unclassified errors).
func ReasonOf(err error) Reason {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}

// IsReason reports whether err is a tagged rejection with the given reason.
func IsReason(err error, reason Reason) bool {
	return ReasonOf(err) == reason
}

// StatusCode maps a rejection to its HTTP status. Conflict maps to 400 because
// a double-booked slot is reported as a plain validation failure on the
// appointment endpoint. Unclassified errors map to 500.
func StatusCode(err error) int {
	switch ReasonOf(err) {
	case ReasonMissingField, ReasonInvalidFormat, ReasonInvalidValue, ReasonConflict, ReasonInvalidCredentials:
		return http.StatusBadRequest
	case ReasonNotFound:
		return http.StatusNotFound
	case ReasonForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
