package transform

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

// exprEnv is what an expression sees for one visited value or node.
type exprEnv struct {
	Value any    `expr:"value"`
	Name  string `expr:"name"`
	Path  string `expr:"path"`
	Kind  string `expr:"kind"`
	Attr  bool   `expr:"attr"`
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(exprEnv{}),
	}
}

func envFor(v *ir.Scalar, ctx *Context) exprEnv {
	return exprEnv{
		Value: v.ToAny(),
		Name:  ctx.Name,
		Path:  ctx.Path,
		Kind:  ctx.Kind.String(),
		Attr:  ctx.IsAttribute,
	}
}

// ExprValue compiles an expression into a value transformer. The
// expression sees value, name, path, kind and attr; its result replaces
// the scalar, and a nil result deletes the value.
//
//	transform.ExprValue(`value == "yes" ? true : value`)
func ExprValue(src string) (ValueFunc, error) {
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrTransform, src, err)
	}
	return func(v *ir.Scalar, ctx *Context) (*ir.Scalar, error) {
		out, err := expr.Run(program, envFor(v, ctx))
		if err != nil {
			return nil, err
		}
		if out == nil {
			return nil, nil
		}
		return ir.FromAny(out)
	}, nil
}

// ExprNodeFilter compiles a boolean expression into a node transformer
// that removes every node for which the expression is false. The
// expression sees the node's own scalar as value.
//
//	transform.ExprNodeFilter(`name != "deprecated"`)
func ExprNodeFilter(src string) (NodeFunc, error) {
	program, err := expr.Compile(src, append(exprOpts(), expr.AsBool())...)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrTransform, src, err)
	}
	return func(n *ir.Node, ctx *Context) (*ir.Node, error) {
		out, err := expr.Run(program, envFor(n.Value, ctx))
		if err != nil {
			return nil, err
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: filter %q returned %T, want bool", ErrTransform, src, out)
		}
		if !keep {
			return nil, nil
		}
		return n, nil
	}, nil
}
