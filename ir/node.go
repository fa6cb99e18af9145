package ir

// Node is a single value in the semantic tree shared by the XML and JSON
// codecs. It is a tagged variant: Kind selects which fields are meaningful.
//
// Children and Attributes are exclusively owned by the node; a node may not
// appear under two parents. Parent is a non-owning back-reference used only
// for path reconstruction and context chaining and is never serialized.
type Node struct {
	Kind Kind
	Name string

	// Value is the optional scalar payload. nil means absent, which is
	// distinct from a present null.
	Value *Scalar

	Attributes []*Node
	Children   []*Node

	// NS is the namespace URI, Label the namespace prefix. Both optional.
	NS    string
	Label string

	// ID is an opaque identifier carried through high-fidelity round
	// trips only.
	ID string

	Parent *Node
}

func NewRecord(name string) *Node {
	return &Node{Kind: RecordKind, Name: name}
}

func NewCollection(name string) *Node {
	return &Node{Kind: CollectionKind, Name: name}
}

func NewField(name string, v *Scalar) *Node {
	return &Node{Kind: FieldKind, Name: name, Value: v}
}

func NewValue(name string, v *Scalar) *Node {
	return &Node{Kind: ValueKind, Name: name, Value: v}
}

// NewText returns a Value node holding a text run, named "#text".
func NewText(text string) *Node {
	return &Node{Kind: ValueKind, Name: TextName, Value: FromString(text)}
}

func NewAttribute(name string, v *Scalar) *Node {
	return &Node{Kind: AttributeKind, Name: name, Value: v}
}

func NewComment(text string) *Node {
	return &Node{Kind: CommentKind, Name: CommentName, Value: FromString(text)}
}

// NewInstruction returns an Instruction node. The processing instruction
// target is the node name, the instruction content its value.
func NewInstruction(target, content string) *Node {
	return &Node{Kind: InstructionKind, Name: target, Value: FromString(content)}
}

func NewData(content string) *Node {
	return &Node{Kind: DataKind, Name: DataName, Value: FromString(content)}
}

// AddChild appends c to the node's children, taking ownership. It returns
// the receiver for chaining.
func (n *Node) AddChild(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return n
}

// AddAttribute appends a to the node's attributes, taking ownership.
func (n *Node) AddAttribute(a *Node) *Node {
	a.Kind = AttributeKind
	a.Parent = n
	n.Attributes = append(n.Attributes, a)
	return n
}

// SetChildren replaces the node's child list wholesale, taking ownership of
// every entry. The pipeline's children stage uses this to install the list
// a children transformer returns.
func (n *Node) SetChildren(cs []*Node) {
	for _, c := range cs {
		c.Parent = n
	}
	n.Children = cs
}

// SetAttributes replaces the node's attribute list wholesale.
func (n *Node) SetAttributes(as []*Node) {
	for _, a := range as {
		a.Parent = n
	}
	n.Attributes = as
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name in order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Attr returns the attribute with the given name, or nil.
func (n *Node) Attr(name string) *Node {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Find returns the first node in depth-first pre-order, the receiver
// included, satisfying pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	for _, c := range n.Children {
		if res := c.Find(pred); res != nil {
			return res
		}
	}
	return nil
}

// FindAll returns every node in depth-first pre-order satisfying pred.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var res []*Node
	n.Visit(func(x *Node, isPost bool) (bool, error) {
		if !isPost && pred(x) {
			res = append(res, x)
		}
		return true, nil
	})
	return res
}

// Text flattens the node's text content: its own scalar followed by the
// scalar content of all descendant Value and Data nodes, in document order.
func (n *Node) Text() string {
	res := n.Value.Text()
	for _, c := range n.Children {
		switch c.Kind {
		case ValueKind, DataKind:
			res += c.Text()
		case CommentKind, InstructionKind:
		default:
			res += c.Text()
		}
	}
	return res
}

// Visit walks the subtree rooted at n. f is called before and after each
// node's children with isPost false and true respectively; returning false
// from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Root follows parent links to the tree root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// HasElementChildren reports whether any child is element-shaped rather
// than content (text, CDATA, comment, instruction).
func (n *Node) HasElementChildren() bool {
	for _, c := range n.Children {
		if !c.Kind.IsContent() {
			return true
		}
	}
	return false
}

// HasContentChildren reports whether any child is a content node.
func (n *Node) HasContentChildren() bool {
	for _, c := range n.Children {
		if c.Kind.IsContent() {
			return true
		}
	}
	return false
}
