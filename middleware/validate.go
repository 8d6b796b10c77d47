package middleware

import (
	"context"

	"github.com/routekit/routekit"
)

// ValidateFunc inspects a request and returns field-level failures. An
// empty result means the request is valid.
type ValidateFunc func(req *routekit.Request) []routekit.FieldError

// Validate creates a middleware that short-circuits the chain with a
// validation error when any of the given checks fail. Failures from all
// checks are collected so the caller sees every invalid field at once.
func Validate(checks ...ValidateFunc) routekit.Middleware {
	return func(next routekit.Handler) routekit.Handler {
		return routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
			var details []routekit.FieldError
			for _, check := range checks {
				details = append(details, check(req)...)
			}
			if len(details) > 0 {
				return nil, routekit.NewValidationError(details...)
			}
			return next.Serve(ctx, req)
		})
	}
}

// RequireQuery returns a check that fails when any of the given
// query-string keys is missing or empty.
func RequireQuery(keys ...string) ValidateFunc {
	return func(req *routekit.Request) []routekit.FieldError {
		var details []routekit.FieldError
		for _, key := range keys {
			if req.Query[key] == "" {
				details = append(details, routekit.FieldError{
					Field:   key,
					Rule:    "required",
					Message: "query parameter is required",
				})
			}
		}
		return details
	}
}

// RequireHeader returns a check that fails when any of the given headers
// is missing or empty.
func RequireHeader(names ...string) ValidateFunc {
	return func(req *routekit.Request) []routekit.FieldError {
		var details []routekit.FieldError
		for _, name := range names {
			if req.Header(name) == "" {
				details = append(details, routekit.FieldError{
					Field:   name,
					Rule:    "required",
					Message: "header is required",
				})
			}
		}
		return details
	}
}
