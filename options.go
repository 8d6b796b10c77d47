package routekit

import "log/slog"

// Option configures a Builder during creation.
type Option func(*Builder)

// WithLogger sets the structured logger used by the builder and the frozen
// engine. The default logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithMiddleware adds middleware to the builder.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(b *Builder) {
		b.middlewares = append(b.middlewares, middlewares...)
	}
}

// WithErrorHook adds an error hook to the builder.
func WithErrorHook(h ErrorHook) Option {
	return func(b *Builder) {
		b.hooks.errorHooks = append(b.hooks.errorHooks, h)
	}
}

// WithNotFoundResponse sets a fixed response returned for unmatched routes
// when no error hook produces one. The default is the standard 404 mapping.
func WithNotFoundResponse(res *Response) Option {
	return func(b *Builder) {
		b.notFound = res
	}
}
