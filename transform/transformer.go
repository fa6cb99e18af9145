package transform

import (
	"github.com/signadot/xnode-format/go-xnode/ir"
)

// The four transformer variants. Each may mutate its argument in place or
// return a replacement; returning nil removes the target.

// NodeFunc runs in the node stage. Returning a different node replaces the
// node; returning nil removes it outright, together with its subtree, and
// short-circuits all later stages for that node.
type NodeFunc func(n *ir.Node, ctx *Context) (*ir.Node, error)

// ValueFunc runs in the value stage over a node's scalar, and again in the
// attribute stage over each attribute value. Returning nil deletes the
// value but not the node.
type ValueFunc func(v *ir.Scalar, ctx *Context) (*ir.Scalar, error)

// AttrFunc runs in the attribute stage over each attribute after its value
// passed the value stage. It may rename the attribute; returning nil
// removes the individual attribute, not the owning node.
type AttrFunc func(a *ir.Node, ctx *Context) (*ir.Node, error)

// ChildrenFunc runs in the children stage over the node's full ordered
// child list as a unit and may reorder, merge, synthesize or drop entries.
// Returning an empty or nil list removes the entire remaining child set.
type ChildrenFunc func(cs []*ir.Node, ctx *Context) ([]*ir.Node, error)

// Stage identifies a pipeline stage, used by recovery hooks.
type Stage int

const (
	NodeStage Stage = iota
	ValueStage
	AttrStage
	ChildrenStage
)

func (s Stage) String() string {
	switch s {
	case NodeStage:
		return "node"
	case ValueStage:
		return "value"
	case AttrStage:
		return "attribute"
	case ChildrenStage:
		return "children"
	default:
		return "<unknown stage>"
	}
}

// Transformer bundles the variants under one name for the registry. Any
// subset of the four may be set.
type Transformer struct {
	Node     NodeFunc
	Value    ValueFunc
	Attr     AttrFunc
	Children ChildrenFunc
}
