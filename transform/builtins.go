package transform

import (
	"strconv"
	"strings"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

// builtins is the static table of transformers known at compile time.
var builtins = map[string]Transformer{
	"bools":    {Value: boolsValue},
	"booltext": {Value: boolTextValue},
	"numbers":  {Value: numbersValue},
	"trim":     {Value: trimValue},
}

// boolsValue maps the strings "true" and "false" to booleans, the usual
// step when going XML to JSON.
func boolsValue(v *ir.Scalar, _ *Context) (*ir.Scalar, error) {
	if v == nil || v.Type != ir.StringScalar {
		return v, nil
	}
	switch v.String {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	return v, nil
}

// boolTextValue is the inverse of bools, for JSON to XML.
func boolTextValue(v *ir.Scalar, _ *Context) (*ir.Scalar, error) {
	if v == nil || v.Type != ir.BoolScalar {
		return v, nil
	}
	return ir.FromString(strconv.FormatBool(v.Bool)), nil
}

// numbersValue parses numeric strings into number scalars.
func numbersValue(v *ir.Scalar, _ *Context) (*ir.Scalar, error) {
	if v == nil || v.Type != ir.StringScalar {
		return v, nil
	}
	if i, err := strconv.ParseInt(v.String, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	if f, err := strconv.ParseFloat(v.String, 64); err == nil {
		return ir.FromFloat(f), nil
	}
	return v, nil
}

func trimValue(v *ir.Scalar, _ *Context) (*ir.Scalar, error) {
	if v == nil || v.Type != ir.StringScalar {
		return v, nil
	}
	return ir.FromString(strings.TrimSpace(v.String)), nil
}

// RemoveNamed returns a node transformer that removes any node with the
// given name together with its subtree.
func RemoveNamed(name string) NodeFunc {
	return func(n *ir.Node, _ *Context) (*ir.Node, error) {
		if n.Name == name {
			return nil, nil
		}
		return n, nil
	}
}

// RenameAttr returns an attribute transformer renaming from to to.
func RenameAttr(from, to string) AttrFunc {
	return func(a *ir.Node, _ *Context) (*ir.Node, error) {
		if a.Name == from {
			a.Name = to
		}
		return a, nil
	}
}
