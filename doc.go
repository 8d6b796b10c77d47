// Package routekit provides an embeddable HTTP request-dispatch engine. It
// holds a table of method+path patterns mapped to handlers, matches incoming
// request paths against that table with named-parameter and wildcard capture,
// and runs the matched handler inside a composable middleware chain and an
// outer hook pipeline.
//
// routekit is the routing layer that sits beneath a web server or RPC front
// end, not the server itself. The transport hands the engine a structured
// [Request] and receives back a [Response]; the engine never touches raw
// bytes or sockets.
//
// Routes are registered on a [Builder] during application startup, then the
// builder is frozen into an immutable [Engine] that is safe for concurrent
// dispatch without synchronization:
//
//	b := routekit.New()
//	b.Get("/users/:id", routekit.HandlerFunc(func(ctx context.Context, req *routekit.Request) (*routekit.Response, error) {
//		id, _ := req.Params.PathParam("id")
//		return routekit.Text(http.StatusOK, "user "+id), nil
//	}))
//	engine := b.Freeze()
//
//	res := engine.Dispatch(ctx, req)
//
// Pattern segments are separated by "/". A segment starting with ":" names a
// captured parameter, and a segment equal to "*" is a trailing wildcard that
// captures the rest of the path. Static segments take precedence over
// parameters, and parameters over wildcards, with full backtracking between
// the alternatives.
package routekit
