package routekit

import "strings"

// trieNode is one node of the per-method routing trie. A node owns any
// number of static children keyed by literal text, at most one param child,
// and at most one wildcard child. A node holding a handler is a route
// terminal.
type trieNode struct {
	static    map[string]*trieNode
	param     *trieNode
	paramName string // captured name for the param child
	wildcard  *trieNode

	handler Handler
	pattern string  // original pattern, set on terminal nodes
	id      RouteID // identity of the latest registration
}

// insert adds a pattern's segments under n, attaching the handler at the
// terminal node. Insertion is all-or-fail: conflicts are detected by a
// read-only pre-pass before any node is created, so a failed insert leaves
// the tree untouched. Re-inserting an identical pattern overwrites the
// previous handler.
func (n *trieNode) insert(segs []segment, pattern string, id RouteID, h Handler) error {
	if err := n.check(segs); err != nil {
		return err
	}

	cur := n
	for _, s := range segs {
		switch s.kind {
		case segStatic:
			if cur.static == nil {
				cur.static = make(map[string]*trieNode)
			}
			child, ok := cur.static[s.text]
			if !ok {
				child = &trieNode{}
				cur.static[s.text] = child
			}
			cur = child

		case segParam:
			if cur.param == nil {
				cur.param = &trieNode{}
				cur.paramName = s.text
			}
			cur = cur.param

		case segWildcard:
			if cur.wildcard == nil {
				cur.wildcard = &trieNode{}
			}
			cur = cur.wildcard
		}
	}

	cur.handler = h
	cur.pattern = pattern
	cur.id = id
	return nil
}

// check walks the existing tree along the pattern's segments without
// mutating it, reporting a conflict if a node already owns a param child
// under a different name. The walk stops at the first missing child: fresh
// nodes cannot conflict.
func (n *trieNode) check(segs []segment) error {
	cur := n
	for _, s := range segs {
		switch s.kind {
		case segStatic:
			child, ok := cur.static[s.text]
			if !ok {
				return nil
			}
			cur = child

		case segParam:
			if cur.param == nil {
				return nil
			}
			if cur.paramName != s.text {
				return ErrParamConflict.WithMessagef(
					"param :%s conflicts with existing param :%s at the same depth", s.text, cur.paramName)
			}
			cur = cur.param

		case segWildcard:
			if cur.wildcard == nil {
				return nil
			}
			cur = cur.wildcard
		}
	}
	return nil
}

// lookup descends the path segments with static > param > wildcard
// precedence at every node, backtracking into the param and wildcard
// alternatives when a preferred subtree fails to produce a terminal match.
// Param bindings made on a failed branch are removed before the next
// alternative is tried. A wildcard consumes all remaining segments and
// terminates the walk.
func (n *trieNode) lookup(segs []string, params map[string]string) (Handler, bool) {
	if len(segs) == 0 {
		if n.handler != nil {
			return n.handler, true
		}
		return nil, false
	}

	head, rest := segs[0], segs[1:]

	if child, ok := n.static[head]; ok {
		if h, ok := child.lookup(rest, params); ok {
			return h, true
		}
	}

	if n.param != nil {
		params[n.paramName] = head
		if h, ok := n.param.lookup(rest, params); ok {
			return h, true
		}
		delete(params, n.paramName)
	}

	if n.wildcard != nil && n.wildcard.handler != nil {
		params[WildcardKey] = strings.Join(segs, "/")
		return n.wildcard.handler, true
	}

	return nil, false
}

// walk visits every terminal node in the subtree. Static children are
// visited before the param child, which is visited before the wildcard.
func (n *trieNode) walk(fn func(pattern string, id RouteID)) {
	if n.handler != nil {
		fn(n.pattern, n.id)
	}
	for _, child := range n.static {
		child.walk(fn)
	}
	if n.param != nil {
		n.param.walk(fn)
	}
	if n.wildcard != nil {
		n.wildcard.walk(fn)
	}
}
