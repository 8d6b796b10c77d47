package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/routekit/routekit"
)

// RequestIDHeader is the default header carrying the request identifier.
const RequestIDHeader = "X-Request-ID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *routekit.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to keep a request ID already present on
	// the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration. It
// generates a new UUID per request and sets it on both the request and the
// response headers.
func RequestID() routekit.Middleware {
	return RequestIDWithConfig(RequestIDConfig{UseExisting: true})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration.
func RequestIDWithConfig(cfg RequestIDConfig) routekit.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = RequestIDHeader
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next routekit.Handler) routekit.Handler {
		return routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
			if cfg.Skip != nil && cfg.Skip(req) {
				return next.Serve(ctx, req)
			}

			var requestID string
			if cfg.UseExisting {
				requestID = req.Header(cfg.HeaderName)
			}
			if requestID == "" {
				requestID = cfg.Generator()
				req.SetHeader(cfg.HeaderName, requestID)
			}

			res, err := next.Serve(ctx, req)
			if err != nil || res == nil {
				return res, err
			}

			res.SetHeader(cfg.HeaderName, requestID)
			return res, nil
		})
	}
}
