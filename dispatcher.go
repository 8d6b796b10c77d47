package routekit

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Builder accumulates routes, middlewares, and hooks during the build phase
// of the engine lifecycle. It is intended for a single logical writer at
// application startup; it is not safe for concurrent use. Freeze converts
// the accumulated state into an immutable Engine.
type Builder struct {
	table       *routeTable
	middlewares []Middleware
	hooks       hookPipeline
	log         *slog.Logger
	notFound    *Response

	frozen *Engine
}

// New creates a route table builder with the given options.
func New(opts ...Option) *Builder {
	b := &Builder{
		table: newRouteTable(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register adds a method+pattern route. It fails with an invalid-pattern
// error for a non-final wildcard or a param name conflicting with an
// existing param at the same trie depth, leaving the table exactly as it
// was. Registering an identical method+pattern again overwrites the
// previous handler.
func (b *Builder) Register(method, pattern string, h Handler) (RouteID, error) {
	b.mutable()
	id, err := b.table.insert(method, pattern, h)
	if err != nil {
		return "", err
	}
	b.log.Debug("route registered",
		slog.String("method", method),
		slog.String("pattern", pattern),
		slog.String("route_id", string(id)))
	return id, nil
}

// Get registers a handler for GET requests.
func (b *Builder) Get(pattern string, h Handler) (RouteID, error) {
	return b.Register("GET", pattern, h)
}

// Post registers a handler for POST requests.
func (b *Builder) Post(pattern string, h Handler) (RouteID, error) {
	return b.Register("POST", pattern, h)
}

// Put registers a handler for PUT requests.
func (b *Builder) Put(pattern string, h Handler) (RouteID, error) {
	return b.Register("PUT", pattern, h)
}

// Delete registers a handler for DELETE requests.
func (b *Builder) Delete(pattern string, h Handler) (RouteID, error) {
	return b.Register("DELETE", pattern, h)
}

// Patch registers a handler for PATCH requests.
func (b *Builder) Patch(pattern string, h Handler) (RouteID, error) {
	return b.Register("PATCH", pattern, h)
}

// Use appends middleware to the chain. Registration order determines
// execution order: the first middleware added observes the request first
// and the response last.
func (b *Builder) Use(middlewares ...Middleware) {
	b.mutable()
	b.middlewares = append(b.middlewares, middlewares...)
}

// OnPreRouting appends a hook run before the route table lookup.
func (b *Builder) OnPreRouting(h RequestHook) {
	b.mutable()
	b.hooks.preRouting = append(b.hooks.preRouting, h)
}

// OnPostRouting appends a hook run after a successful lookup, before the
// pre-handler phase.
func (b *Builder) OnPostRouting(h RequestHook) {
	b.mutable()
	b.hooks.postRouting = append(b.hooks.postRouting, h)
}

// OnPreHandler appends a hook run immediately before the middleware chain.
func (b *Builder) OnPreHandler(h RequestHook) {
	b.mutable()
	b.hooks.preHandler = append(b.hooks.preHandler, h)
}

// OnPostHandler appends a hook run over the handler's response.
func (b *Builder) OnPostHandler(h ResponseHook) {
	b.mutable()
	b.hooks.postHandler = append(b.hooks.postHandler, h)
}

// OnError appends an error hook.
func (b *Builder) OnError(h ErrorHook) {
	b.mutable()
	b.hooks.errorHooks = append(b.hooks.errorHooks, h)
}

func (b *Builder) mutable() {
	if b.frozen != nil {
		panic("routekit: builder is frozen; all routes, middlewares and hooks must be registered before Freeze")
	}
}

// Freeze finalizes the builder into an immutable Engine that is safe for
// concurrent dispatch without synchronization. Freeze is idempotent:
// calling it again returns the same Engine.
func (b *Builder) Freeze() *Engine {
	if b.frozen == nil {
		b.frozen = &Engine{
			table:       b.table,
			middlewares: b.middlewares,
			hooks:       b.hooks,
			log:         b.log,
			notFound:    b.notFound,
		}
	}
	return b.frozen
}

// Engine is the frozen, immutable dispatch engine. It is shared read-only
// across all concurrent dispatches for the life of the process.
type Engine struct {
	table       *routeTable
	middlewares []Middleware
	hooks       hookPipeline
	log         *slog.Logger
	notFound    *Response
}

// Routes returns all registered routes, sorted by method then pattern.
func (e *Engine) Routes() []Route {
	return e.table.list()
}

// Dispatch runs one request through the hook pipeline, the route table,
// and the middleware chain. It always returns a response: any error
// (including panics in user callbacks) converges to a response via the
// error hooks or the default kind-to-status mapping.
func (e *Engine) Dispatch(ctx context.Context, req *Request) (res *Response) {
	defer func() {
		if v := recover(); v != nil {
			res = e.fail(ctx, toError(v))
		}
	}()

	out, err := e.run(ctx, req)
	if err != nil {
		return e.fail(ctx, err)
	}
	return out
}

// run executes the happy path of the dispatch state machine.
func (e *Engine) run(ctx context.Context, req *Request) (*Response, error) {
	req, err := runRequestHooks(ctx, e.hooks.preRouting, req)
	if err != nil {
		return nil, err
	}

	h, pathParams, ok := e.table.lookup(req.Method, req.Path)
	if !ok {
		return nil, ErrRouteNotFound.WithMessagef("route not found: %s %s", req.Method, req.Path)
	}

	// Path and query params share the request but stay separate maps.
	req.Params = RouteParams{Path: pathParams, Query: cloneQuery(req.Query)}

	e.log.Debug("route matched",
		slog.String("method", req.Method),
		slog.String("path", req.Path))

	req, err = runRequestHooks(ctx, e.hooks.postRouting, req)
	if err != nil {
		return nil, err
	}
	req, err = runRequestHooks(ctx, e.hooks.preHandler, req)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := chain(e.middlewares, h).Serve(ctx, req)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrInternal.WithMessage("handler returned nil response")
	}

	return e.hooks.runPostHandler(ctx, res)
}

// fail converges an error to a response via the error hooks, falling back
// to the configured not-found response or the default status mapping when
// no hook produces one. A hook that succeeds with a nil response does not
// count as handled.
func (e *Engine) fail(ctx context.Context, err error) *Response {
	res, herr := e.hooks.runErrorHooks(ctx, err)
	if herr == nil {
		if res != nil {
			return res
		}
		herr = ErrInternal.WithMessage("error hook returned nil response")
	}

	e.log.Debug("dispatch failed", slog.String("error", herr.Error()))
	if e.notFound != nil && errors.Is(herr, ErrRouteNotFound) {
		return e.notFound
	}
	return errorResponse(herr)
}

func cloneQuery(q map[string]string) map[string]string {
	out := make(map[string]string, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}
