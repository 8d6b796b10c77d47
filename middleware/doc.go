// Package middleware provides ready-made middlewares for the routekit
// dispatch engine: structured request/response logging, request ID
// injection, panic recovery, and request validation.
//
// Each middleware follows the same convention: a zero-config constructor
// with sensible defaults and a WithConfig variant for fine-grained control:
//
//	b := routekit.New()
//	b.Use(middleware.RequestID())
//	b.Use(middleware.LoggingWithConfig(middleware.LoggingConfig{
//		Logger: slog.Default(),
//		Skip: func(req *routekit.Request) bool {
//			return req.Path == "/health"
//		},
//	}))
package middleware
