package ir

// CloneShallow copies the node without its children: kind, name, value,
// namespace fields and the attribute list are copied, the child list is
// not. The clone has no parent.
func (n *Node) CloneShallow() *Node {
	dst := &Node{
		Kind:  n.Kind,
		Name:  n.Name,
		Value: n.Value.Clone(),
		NS:    n.NS,
		Label: n.Label,
		ID:    n.ID,
	}
	if len(n.Attributes) > 0 {
		dst.Attributes = make([]*Node, len(n.Attributes))
		for i, a := range n.Attributes {
			ac := a.CloneShallow()
			ac.Parent = dst
			dst.Attributes[i] = ac
		}
	}
	return dst
}

// CloneDeep copies the full subtree. Back-references are rebuilt so the
// clone shares nothing with the original; this is the sanctioned way to
// let two call sites work from the same starting tree, since the pipeline
// mutates in place.
func (n *Node) CloneDeep() *Node {
	dst := n.CloneShallow()
	if len(n.Children) > 0 {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := c.CloneDeep()
			cc.Parent = dst
			dst.Children[i] = cc
		}
	}
	return dst
}
