package ir

// Equal reports whether two trees are structurally equivalent: kind, name,
// value, namespace and label must match, children must match pairwise in
// order, and attributes must match as an unordered set keyed by name.
// Attribute order is not significant; child order is.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Name != b.Name {
		return false
	}
	if a.NS != b.NS || a.Label != b.Label {
		return false
	}
	if !ScalarEqual(a.Value, b.Value) {
		return false
	}
	if !attrsEqual(a.Attributes, b.Attributes) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	bByName := make(map[string]*Node, len(b))
	for _, attr := range b {
		bByName[attr.Name] = attr
	}
	if len(bByName) != len(b) {
		// duplicate attribute names, fall back to ordered comparison
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	for _, attr := range a {
		other := bByName[attr.Name]
		if other == nil {
			return false
		}
		if !Equal(attr, other) {
			return false
		}
	}
	return true
}
