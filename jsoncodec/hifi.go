package jsoncodec

import (
	"fmt"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

// High-fidelity marker keys. Every node renders as an object carrying
// these, preserving kind, id, namespace and label losslessly.
const (
	hifiType     = "#type"
	hifiName     = "#name"
	hifiValue    = "#value"
	hifiAttrs    = "#attributes"
	hifiChildren = "#children"
	hifiNS       = "#ns"
	hifiLabel    = "#label"
	hifiID       = "#id"
)

// OutputHiFi renders a node tree in the high-fidelity encoding, the only
// mode guaranteed to round-trip through JSON back into an equivalent tree.
func OutputHiFi(n *ir.Node) any {
	m := map[string]any{hifiType: n.Kind.String()}
	if n.Name != "" {
		m[hifiName] = n.Name
	}
	if n.Value != nil {
		// present null keeps its key; absent value has none
		m[hifiValue] = n.Value.ToAny()
	}
	if n.NS != "" {
		m[hifiNS] = n.NS
	}
	if n.Label != "" {
		m[hifiLabel] = n.Label
	}
	if n.ID != "" {
		m[hifiID] = n.ID
	}
	if len(n.Attributes) > 0 {
		attrs := make([]any, len(n.Attributes))
		for i, a := range n.Attributes {
			attrs[i] = OutputHiFi(a)
		}
		m[hifiAttrs] = attrs
	}
	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = OutputHiFi(c)
		}
		m[hifiChildren] = children
	}
	return m
}

// IsHiFi reports whether the value has the high-fidelity shape.
func IsHiFi(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m[hifiType].(string)
	return ok
}

// SourceHiFi reverses exactly the shape OutputHiFi produces.
func SourceHiFi(v any) (*ir.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrHiFi, v)
	}
	typeName, ok := m[hifiType].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrHiFi, hifiType)
	}
	n := &ir.Node{}
	if err := n.Kind.UnmarshalText([]byte(typeName)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHiFi, err)
	}
	if name, ok := m[hifiName].(string); ok {
		n.Name = name
	}
	if raw, ok := m[hifiValue]; ok {
		sc, err := ir.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHiFi, err)
		}
		n.Value = sc
	}
	if ns, ok := m[hifiNS].(string); ok {
		n.NS = ns
	}
	if label, ok := m[hifiLabel].(string); ok {
		n.Label = label
	}
	if id, ok := m[hifiID].(string); ok {
		n.ID = id
	}
	if raw, ok := m[hifiAttrs]; ok {
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an array", ErrHiFi, hifiAttrs)
		}
		for _, item := range arr {
			a, err := SourceHiFi(item)
			if err != nil {
				return nil, err
			}
			n.AddAttribute(a)
		}
	}
	if raw, ok := m[hifiChildren]; ok {
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an array", ErrHiFi, hifiChildren)
		}
		for _, item := range arr {
			c, err := SourceHiFi(item)
			if err != nil {
				return nil, err
			}
			n.AddChild(c)
		}
	}
	return n, nil
}
