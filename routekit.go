package routekit

import "context"

// Handler processes a dispatched request and produces a response or an error.
// Handlers must be safe for concurrent use; the engine invokes them from
// arbitrarily many dispatches at once.
type Handler interface {
	Serve(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc adapts a plain function to the Handler interface. It is the
// native handler variant; see Bridge for handlers living in a host runtime.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Serve implements the Handler interface.
func (f HandlerFunc) Serve(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Middleware wraps handlers to add cross-cutting functionality. The handler
// it receives is the continuation: the rest of the chain plus the terminal
// handler. A middleware may transform the request before calling next,
// transform or replace the result afterwards, or short-circuit by never
// calling next at all.
type Middleware func(next Handler) Handler

// RequestHook transforms a request in the pre-routing, post-routing, or
// pre-handler phase. Returning an error aborts the phase and routes the
// error through the error hooks.
type RequestHook func(ctx context.Context, req *Request) (*Request, error)

// ResponseHook transforms a response in the post-handler phase.
type ResponseHook func(ctx context.Context, res *Response) (*Response, error)

// ErrorHook attempts to convert a dispatch error into a response. The first
// hook to succeed wins; a failing hook replaces the current error and the
// next hook is tried.
type ErrorHook func(ctx context.Context, err error) (*Response, error)

// Invoker dispatches a request to a handler that lives outside the Go
// runtime. Implementations own the cross-runtime calling convention; the
// engine never depends on it.
type Invoker interface {
	Invoke(ctx context.Context, req *Request) (*Response, error)
}

// Bridge wraps a host-runtime invoker as a Handler so bridged handlers can
// be registered exactly like native ones.
func Bridge(inv Invoker) Handler {
	return bridgedHandler{inv: inv}
}

type bridgedHandler struct {
	inv Invoker
}

func (h bridgedHandler) Serve(ctx context.Context, req *Request) (*Response, error) {
	return h.inv.Invoke(ctx, req)
}
