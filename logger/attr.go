package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety, so call
// sites like log.Info("msg", logger.Error(err)) never need explicit nil
// checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration in milliseconds under the
// key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// Component creates an attribute identifying the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID creates an attribute for a request identifier. Returns an
// empty Attr when the id is empty.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for a request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Status creates an attribute for a response status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
