package routekit

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a dispatch or registration error and determines the
// default HTTP status when no error hook produces a response.
type ErrorKind uint8

const (
	KindInternal ErrorKind = iota
	KindRouteNotFound
	KindInvalidPattern
	KindValidation
	KindMiddleware
)

// String returns the machine-readable code for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindRouteNotFound:
		return "ROUTE_NOT_FOUND"
	case KindInvalidPattern:
		return "INVALID_ROUTE_PATTERN"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindMiddleware:
		return "MIDDLEWARE_ERROR"
	default:
		return "INTERNAL"
	}
}

// FieldError describes a single field-level validation failure so callers
// can render it without re-parsing a message string.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// Error is the structured error type used across registration and dispatch.
type Error struct {
	Kind    ErrorKind    `json:"kind"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// StatusCode returns the default HTTP status for the error's kind.
func (e Error) StatusCode() int {
	switch e.Kind {
	case KindRouteNotFound:
		return http.StatusNotFound
	case KindInvalidPattern, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithMessagef returns a copy of the error with a formatted message.
func (e Error) WithMessagef(format string, args ...any) Error {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// WithDetails returns a copy of the error with field-level details attached.
func (e Error) WithDetails(details ...FieldError) Error {
	e.Details = details
	return e
}

// Is reports whether target is an Error of the same kind, so
// errors.Is(err, ErrRouteNotFound) matches any not-found error regardless
// of message.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Predefined errors, one per kind. Use WithMessage/WithDetails to derive
// specific instances.
var (
	ErrRouteNotFound  = Error{Kind: KindRouteNotFound, Message: "route not found"}
	ErrInvalidPattern = Error{Kind: KindInvalidPattern, Message: "invalid route pattern"}
	ErrValidation     = Error{Kind: KindValidation, Message: "validation failed"}
	ErrMiddleware     = Error{Kind: KindMiddleware, Message: "middleware error"}
	ErrInternal       = Error{Kind: KindInternal, Message: "internal error"}
)

// Registration-time pattern errors.
var (
	ErrWildcardPosition = ErrInvalidPattern.WithMessage("wildcard '*' must be the last segment of a pattern")
	ErrEmptyParamName   = ErrInvalidPattern.WithMessage("route param must have a name after ':'")
	ErrDuplicateParam   = ErrInvalidPattern.WithMessage("pattern contains a duplicate param name")
	ErrParamConflict    = ErrInvalidPattern.WithMessage("conflicting param name at the same trie depth")
)

// NewValidationError builds a validation error carrying per-field details.
func NewValidationError(details ...FieldError) Error {
	return ErrValidation.WithDetails(details...)
}

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return ErrInternal.WithMessage(e.Error())
	case string:
		return ErrInternal.WithMessage(e)
	default:
		return ErrInternal.WithMessagef("panic: %v", e)
	}
}

// errorResponse synthesizes the default response for an error that no error
// hook recovered, using the kind-to-status mapping.
func errorResponse(err error) *Response {
	var e Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithMessage(err.Error())
	}
	return Text(e.StatusCode(), e.Error())
}
