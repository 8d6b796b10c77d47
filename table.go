package routekit

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// RouteID uniquely identifies a registered route.
type RouteID string

func newRouteID() RouteID {
	return RouteID(uuid.NewString())
}

// Route describes a single registered route.
type Route struct {
	ID      RouteID
	Method  string
	Pattern string
}

// routeTable maps HTTP methods to their routing tries. It is mutable while
// owned by a Builder and must never be mutated once an Engine holds it.
type routeTable struct {
	methods map[string]*trieNode
}

func newRouteTable() *routeTable {
	return &routeTable{methods: make(map[string]*trieNode)}
}

// insert registers the pattern under the method's trie, creating the trie
// if this is the method's first route. Last registration wins for patterns
// that resolve to the same trie terminal, trailing-slash spellings
// included; the listing then carries the latest pattern text and RouteID.
func (t *routeTable) insert(method, pattern string, h Handler) (RouteID, error) {
	segs, err := parsePattern(pattern)
	if err != nil {
		return "", err
	}

	method = strings.ToUpper(method)
	root, ok := t.methods[method]
	if !ok {
		root = &trieNode{}
		t.methods[method] = root
	}

	id := newRouteID()
	if err := root.insert(segs, pattern, id, h); err != nil {
		return "", err
	}
	return id, nil
}

// lookup resolves the method+path to a handler and its captured path
// params. It returns false when the method has no trie at all or the path
// matches no pattern.
func (t *routeTable) lookup(method, path string) (Handler, map[string]string, bool) {
	root, ok := t.methods[strings.ToUpper(method)]
	if !ok {
		return nil, nil, false
	}

	params := make(map[string]string)
	h, ok := root.lookup(splitPath(path), params)
	if !ok {
		return nil, nil, false
	}
	return h, params, true
}

// list returns the registered routes sorted by method then pattern. The
// tries are the source of truth, so each terminal appears exactly once
// regardless of how many pattern spellings were registered for it.
func (t *routeTable) list() []Route {
	var out []Route
	for method, root := range t.methods {
		root.walk(func(pattern string, id RouteID) {
			out = append(out, Route{ID: id, Method: method, Pattern: pattern})
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}
