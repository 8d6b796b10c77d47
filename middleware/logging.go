package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/routekit/routekit"
	"github.com/routekit/routekit/logger"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *routekit.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "dispatch")
	Component string
}

// Logging creates a request/response logging middleware with default
// configuration.
func Logging() routekit.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) routekit.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request/response logging middleware with
// custom configuration. It logs one entry per dispatched request with
// method, path, status, duration, and the request ID when present.
func LoggingWithConfig(cfg LoggingConfig) routekit.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "dispatch"
	}

	return func(next routekit.Handler) routekit.Handler {
		return routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
			if cfg.Skip != nil && cfg.Skip(req) {
				return next.Serve(ctx, req)
			}

			start := time.Now()
			res, err := next.Serve(ctx, req)
			elapsed := time.Since(start)

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(req.Method),
				logger.Path(req.Path),
				logger.Duration(elapsed),
				logger.RequestID(req.Header(RequestIDHeader)),
			}

			switch {
			case err != nil || res == nil:
				attrs = append(attrs, logger.Error(err))
				cfg.Logger.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
			case elapsed >= cfg.SlowRequestThreshold:
				attrs = append(attrs, logger.Status(res.Status))
				cfg.Logger.LogAttrs(ctx, slog.LevelWarn, "slow request", attrs...)
			default:
				attrs = append(attrs, logger.Status(res.Status))
				cfg.Logger.LogAttrs(ctx, cfg.LogLevel, "request handled", attrs...)
			}

			return res, err
		})
	}
}
