// Package npath implements dot-notation path patterns used to scope
// transformers to a subset of the tree. A pattern is a dot-joined list of
// segments; each segment is an exact name, "*" matching exactly one level,
// or "**" matching any number of levels including zero.
//
//	root.items.*.price
//	root.**.price
package npath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrPattern = errors.New("bad path pattern")

// Pattern is one compiled segment in a pattern chain.
type Pattern struct {
	Name string
	Any  bool
	Deep bool
	Next *Pattern
}

// Parse compiles a dot-notation pattern. Patterns are compiled once and
// matched many times, once per visited path.
func Parse(p string) (*Pattern, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrPattern)
	}
	var root, last *Pattern
	for _, seg := range strings.Split(p, ".") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPattern, p)
		}
		x := &Pattern{}
		switch seg {
		case "*":
			x.Any = true
		case "**":
			x.Deep = true
		default:
			if strings.ContainsAny(seg, "*") {
				return nil, fmt.Errorf("%w: partial wildcard %q in %q", ErrPattern, seg, p)
			}
			x.Name = seg
		}
		if root == nil {
			root = x
		} else {
			last.Next = x
		}
		last = x
	}
	return root, nil
}

func (p *Pattern) String() string {
	var parts []string
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Deep:
			parts = append(parts, "**")
		case x.Any:
			parts = append(parts, "*")
		default:
			parts = append(parts, x.Name)
		}
	}
	return strings.Join(parts, ".")
}

// Match reports whether the dot-joined path matches the pattern. The whole
// path must be consumed: "root.items.*.price" matches
// "root.items.0.price" but not "root.items.0.price.currency".
func (p *Pattern) Match(path string) bool {
	if path == "" {
		return p == nil
	}
	return match(p, strings.Split(path, "."))
}

func match(p *Pattern, segs []string) bool {
	if p == nil {
		return len(segs) == 0
	}
	if p.Deep {
		// zero or more levels
		for i := 0; i <= len(segs); i++ {
			if match(p.Next, segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if p.Any || p.Name == segs[0] {
		return match(p.Next, segs[1:])
	}
	return false
}

// MatchAny reports whether any of the patterns matches the path. A nil or
// empty pattern set matches everything, so an unscoped transformer fires
// on every node.
func MatchAny(ps []*Pattern, path string) bool {
	if len(ps) == 0 {
		return true
	}
	for _, p := range ps {
		if p.Match(path) {
			return true
		}
	}
	return false
}

// MustParse is Parse for statically known patterns; it panics on error.
func MustParse(p string) *Pattern {
	res, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return res
}
