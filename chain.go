package routekit

// chain builds a single handler from a middleware stack and endpoint.
func chain(middlewares []Middleware, endpoint Handler) Handler {
	// Start with the endpoint
	handler := endpoint

	// Wrap in middleware in reverse order
	// so the first middleware runs first
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}
