// Package apperrors defines the categorized errors returned by the service layer
// and their mapping to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of an application error.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindUpstream   Kind = "upstream"
	KindStorage    Kind = "storage"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error is a categorized error carrying a human-readable message and an
// optional correlation id (person id, email, query description).
type Error struct {
	Kind       Kind
	Message    string
	RequestID  any
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a validation error listing every violation.
func Validation(message string, violations []Violation) *Error {
	return &Error{Kind: KindValidation, Message: message, Violations: violations}
}

// NotFound builds a not-found error for the given correlation id.
func NotFound(message string, requestID any) *Error {
	return &Error{Kind: KindNotFound, Message: message, RequestID: requestID}
}

// Conflict builds a uniqueness-violation error.
func Conflict(message string, requestID any, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, RequestID: requestID, Err: err}
}

// Upstream builds an error for a failed external dependency such as the geocoder.
func Upstream(message string, requestID any, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, RequestID: requestID, Err: err}
}

// Storage builds a generic persistence failure.
func Storage(message string, requestID any, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, RequestID: requestID, Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
