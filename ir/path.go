package ir

import "strconv"

// Path returns the dot-joined chain of ancestor names from the root to this
// node, e.g. "root.items.0.price". Children of Collection nodes contribute
// their index rather than their name, so repeated structure stays
// addressable. Paths are recomputed on demand from Parent, never cached.
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	prefix := n.Parent.Path()
	seg := n.segment()
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

func (n *Node) segment() string {
	p := n.Parent
	if p == nil || p.Kind != CollectionKind {
		return n.Name
	}
	for i, c := range p.Children {
		if c == n {
			return strconv.Itoa(i)
		}
	}
	return n.Name
}

// PathSegment returns the path segment child contributes below parent when
// it sits at index i. The transform pipeline uses this while deriving
// contexts so its paths agree with Node.Path.
func PathSegment(parent, child *Node, i int) string {
	if parent != nil && parent.Kind == CollectionKind {
		return strconv.Itoa(i)
	}
	return child.Name
}
