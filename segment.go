package routekit

import "strings"

type segmentKind uint8

const (
	segStatic   segmentKind = iota // /users
	segParam                       // /:id
	segWildcard                    // /*
)

// segment is one "/"-delimited unit of a route pattern: literal text, a
// named parameter, or a trailing wildcard.
type segment struct {
	kind segmentKind
	text string // literal for segStatic, param name for segParam
}

// parsePattern splits a route pattern into typed segments. Empty segments
// are dropped, so "/", "" and "//" all parse to zero segments (the root
// route). A wildcard is only legal as the final segment, and param names
// must be non-empty and unique within the pattern.
func parsePattern(pattern string) ([]segment, error) {
	raw := splitPath(pattern)
	segs := make([]segment, 0, len(raw))
	var seen []string

	for i, s := range raw {
		switch {
		case s == WildcardKey:
			if i != len(raw)-1 {
				return nil, ErrWildcardPosition
			}
			segs = append(segs, segment{kind: segWildcard})

		case strings.HasPrefix(s, ":"):
			name := s[1:]
			if name == "" {
				return nil, ErrEmptyParamName
			}
			for _, prev := range seen {
				if prev == name {
					return nil, ErrDuplicateParam.WithMessagef("pattern %q has duplicate param %q", pattern, name)
				}
			}
			seen = append(seen, name)
			segs = append(segs, segment{kind: segParam, text: name})

		default:
			segs = append(segs, segment{kind: segStatic, text: s})
		}
	}

	return segs, nil
}

// splitPath splits a request path on "/" and drops empty segments.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
