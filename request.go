package routekit

import "net/http"

// WildcardKey is the synthetic parameter name under which a trailing
// wildcard capture is stored: the remainder of the matched path, joined
// by "/".
const WildcardKey = "*"

// Request is the structured request handed to the engine by the transport
// collaborator. The engine never parses raw bytes; Method, Path, Query and
// Headers arrive already decoded.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    []byte

	// Params is populated by the dispatcher after a successful route match
	// and is request-local. It is empty before routing.
	Params RouteParams
}

// Header returns the named request header or "" if absent.
func (r *Request) Header(name string) string {
	return r.Headers[name]
}

// SetHeader sets a request header, allocating the map on first use so hooks
// can annotate requests that arrived without headers.
func (r *Request) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
}

// RouteParams holds the parameter bindings produced by a successful match.
// Path parameters and query parameters share the request but are tracked
// separately so a handler can tell which is which.
type RouteParams struct {
	Path  map[string]string
	Query map[string]string
}

// PathParam returns the captured value for a named path parameter.
func (p RouteParams) PathParam(name string) (string, bool) {
	v, ok := p.Path[name]
	return v, ok
}

// QueryParam returns the value for a query-string key.
func (p RouteParams) QueryParam(name string) (string, bool) {
	v, ok := p.Query[name]
	return v, ok
}

// Wildcard returns the trailing-wildcard capture, if the matched pattern
// ended in "*".
func (p RouteParams) Wildcard() (string, bool) {
	return p.PathParam(WildcardKey)
}

// Response is the structured response returned to the transport
// collaborator, which owns serializing it back to bytes.
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// SetHeader sets a response header, allocating the map on first use.
func (r *Response) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
}

// Text creates a text/plain response with the given status.
func Text(status int, body string) *Response {
	return &Response{
		Status:  status,
		Headers: map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:    []byte(body),
	}
}

// JSON creates an application/json response from pre-encoded content.
func JSON(status int, body []byte) *Response {
	return &Response{
		Status:  status,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}
}

// NoContent creates an empty 204 response.
func NoContent() *Response {
	return &Response{Status: http.StatusNoContent}
}
