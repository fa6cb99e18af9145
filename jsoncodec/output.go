package jsoncodec

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

// Object keys with structural meaning in the standard encoding. They match
// the markers the XML codec's attribute-as-field policy uses, so the two
// codecs reverse each other.
const (
	attrMarker     = "@"
	textKey        = "#text"
	instructionKey = "#instruction"
)

// Output renders a node tree as a JSON value. Standard mode is lossy with
// respect to node kind, namespace and the ordering of same-named siblings
// beyond grouping; use the high-fidelity mode for lossless round trips.
func Output(n *ir.Node, o *OutputOptions) (any, error) {
	o = o.withDefaults()
	if o.HiFi {
		return OutputHiFi(n), nil
	}
	if n.Name == "" {
		if c := loneRootChild(n); c != nil {
			return body(c), nil
		}
		return body(n), nil
	}
	return map[string]any{n.Name: body(n)}, nil
}

// loneRootChild returns the single child of an anonymous root whose name
// carries no object key of its own: a root-level array sources into an
// unnamed Collection and a root-level scalar into a text child, and both
// must render bare rather than under an empty or marker key.
func loneRootChild(n *ir.Node) *ir.Node {
	if n.Kind != ir.RecordKind || n.Value != nil ||
		len(n.Attributes) != 0 || len(n.Children) != 1 {
		return nil
	}
	c := n.Children[0]
	if c.Kind == ir.CollectionKind && c.Name == "" {
		return c
	}
	if c.Name == textKey && len(c.Children) == 0 && len(c.Attributes) == 0 {
		return c
	}
	return nil
}

// OutputBytes renders a node tree as serialized JSON.
func OutputBytes(n *ir.Node, o *OutputOptions) ([]byte, error) {
	o = o.withDefaults()
	v, err := Output(n, o)
	if err != nil {
		return nil, err
	}
	if o.Pretty {
		return json.MarshalIndent(v, "", o.Indent)
	}
	return json.Marshal(v)
}

func body(n *ir.Node) any {
	switch n.Kind {
	case ir.CollectionKind:
		arr := make([]any, len(n.Children))
		for i, c := range n.Children {
			arr[i] = body(c)
		}
		return arr
	case ir.CommentKind, ir.InstructionKind, ir.DataKind, ir.AttributeKind:
		return n.Value.ToAny()
	}

	obj := map[string]any{}
	for _, a := range n.Attributes {
		obj[attrMarker+a.Name] = a.Value.ToAny()
	}

	var order []string
	groups := map[string][]*ir.Node{}
	for _, c := range n.Children {
		k := jsonKey(c)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}
	for _, k := range order {
		g := groups[k]
		if len(g) > 1 {
			arr := make([]any, len(g))
			for i, c := range g {
				arr[i] = body(c)
			}
			obj[k] = arr
			continue
		}
		obj[k] = body(g[0])
	}

	if n.Value != nil {
		if len(obj) == 0 {
			return n.Value.ToAny()
		}
		obj[textKey] = n.Value.ToAny()
	}
	if len(obj) == 0 && n.Value == nil && len(n.Children) == 0 {
		// empty element renders as null
		return nil
	}
	return obj
}

func jsonKey(c *ir.Node) string {
	switch c.Kind {
	case ir.InstructionKind:
		return instructionKey
	case ir.AttributeKind:
		return attrMarker + c.Name
	default:
		return c.Name
	}
}

// Validate reports whether the node can head a standard JSON rendering.
func Validate(n *ir.Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrValidate)
	}
	return nil
}
