package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/routekit/routekit"
	"github.com/routekit/routekit/logger"
)

// RecoveryConfig configures the panic recovery middleware.
type RecoveryConfig struct {
	// Logger receives the recovered value and stack trace (default: slog.Default())
	Logger *slog.Logger
	// LogStack controls whether the stack trace is logged (default: true via Recovery)
	LogStack bool
}

// Recovery creates a middleware that recovers panics in downstream
// middlewares and handlers, logs the stack trace, and converts the panic
// into an internal error so dispatch still converges to a response.
func Recovery() routekit.Middleware {
	return RecoveryWithConfig(RecoveryConfig{LogStack: true})
}

// RecoveryWithConfig creates a panic recovery middleware with custom
// configuration.
func RecoveryWithConfig(cfg RecoveryConfig) routekit.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next routekit.Handler) routekit.Handler {
		return routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (res *routekit.Response, err error) {
			defer func() {
				if v := recover(); v != nil {
					attrs := []slog.Attr{
						logger.Component("recovery"),
						logger.Method(req.Method),
						logger.Path(req.Path),
						slog.Any("panic", v),
					}
					if cfg.LogStack {
						attrs = append(attrs, slog.String("stack", string(debug.Stack())))
					}
					cfg.Logger.LogAttrs(ctx, slog.LevelError, "panic recovered", attrs...)

					res = nil
					err = routekit.ErrInternal.WithMessage(fmt.Sprintf("panic: %v", v))
				}
			}()

			return next.Serve(ctx, req)
		})
	}
}
