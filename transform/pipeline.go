package transform

import (
	"errors"
	"fmt"

	"github.com/signadot/xnode-format/go-xnode/debug"
	"github.com/signadot/xnode-format/go-xnode/ir"
	"github.com/signadot/xnode-format/go-xnode/ir/npath"
)

var ErrTransform = errors.New("transform error")

type scoped[F any] struct {
	f        F
	patterns []*npath.Pattern
}

func (s *scoped[F]) matches(path string) bool {
	return npath.MatchAny(s.patterns, path)
}

// RecoverNodeFunc substitutes for a failed node-stage step.
type RecoverNodeFunc func(n *ir.Node, ctx *Context, err error) (*ir.Node, error)

// RecoverValueFunc substitutes for a failed value-stage step.
type RecoverValueFunc func(v *ir.Scalar, ctx *Context, err error) (*ir.Scalar, error)

// RecoverAttrFunc substitutes for a failed attribute-stage step.
type RecoverAttrFunc func(a *ir.Node, ctx *Context, err error) (*ir.Node, error)

// RecoverChildrenFunc substitutes for a failed children-stage step.
type RecoverChildrenFunc func(cs []*ir.Node, ctx *Context, err error) ([]*ir.Node, error)

// Pipeline applies registered transformers over a node tree, depth-first,
// stage by stage. Transformers of the same stage run strictly in
// registration order; later transformers see the output of earlier ones.
type Pipeline struct {
	nodes    []scoped[NodeFunc]
	values   []scoped[ValueFunc]
	attrs    []scoped[AttrFunc]
	children []scoped[ChildrenFunc]

	recoverNode     RecoverNodeFunc
	recoverValue    RecoverValueFunc
	recoverAttr     RecoverAttrFunc
	recoverChildren RecoverChildrenFunc

	warnings []string
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func compile(patterns []string) ([]*npath.Pattern, error) {
	res := make([]*npath.Pattern, 0, len(patterns))
	for _, p := range patterns {
		compiled, err := npath.Parse(p)
		if err != nil {
			return nil, err
		}
		if debug.Path() {
			debug.Logf("compiled path pattern %q\n", compiled)
		}
		res = append(res, compiled)
	}
	return res, nil
}

// OnNode registers a node-stage transformer, optionally scoped to path
// patterns. No patterns means the transformer fires on every node.
func (p *Pipeline) OnNode(f NodeFunc, patterns ...string) error {
	ps, err := compile(patterns)
	if err != nil {
		return err
	}
	p.nodes = append(p.nodes, scoped[NodeFunc]{f: f, patterns: ps})
	return nil
}

// OnValue registers a value-stage transformer.
func (p *Pipeline) OnValue(f ValueFunc, patterns ...string) error {
	ps, err := compile(patterns)
	if err != nil {
		return err
	}
	p.values = append(p.values, scoped[ValueFunc]{f: f, patterns: ps})
	return nil
}

// OnAttr registers an attribute-stage transformer.
func (p *Pipeline) OnAttr(f AttrFunc, patterns ...string) error {
	ps, err := compile(patterns)
	if err != nil {
		return err
	}
	p.attrs = append(p.attrs, scoped[AttrFunc]{f: f, patterns: ps})
	return nil
}

// OnChildren registers a children-stage transformer.
func (p *Pipeline) OnChildren(f ChildrenFunc, patterns ...string) error {
	ps, err := compile(patterns)
	if err != nil {
		return err
	}
	p.children = append(p.children, scoped[ChildrenFunc]{f: f, patterns: ps})
	return nil
}

// Use registers a named transformer bundle from the registry.
func (p *Pipeline) Use(name string, patterns ...string) error {
	t, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: no transformer named %q", ErrTransform, name)
	}
	if t.Node != nil {
		if err := p.OnNode(t.Node, patterns...); err != nil {
			return err
		}
	}
	if t.Value != nil {
		if err := p.OnValue(t.Value, patterns...); err != nil {
			return err
		}
	}
	if t.Attr != nil {
		if err := p.OnAttr(t.Attr, patterns...); err != nil {
			return err
		}
	}
	if t.Children != nil {
		if err := p.OnChildren(t.Children, patterns...); err != nil {
			return err
		}
	}
	return nil
}

// Recovery hooks. A hook registered for a stage turns a transformer error
// in that stage into a substituted value plus a recorded warning. Hooks
// are best-effort: an error inside a hook is logged and the unmodified
// value kept.
func (p *Pipeline) RecoverNode(f RecoverNodeFunc)         { p.recoverNode = f }
func (p *Pipeline) RecoverValue(f RecoverValueFunc)       { p.recoverValue = f }
func (p *Pipeline) RecoverAttr(f RecoverAttrFunc)         { p.recoverAttr = f }
func (p *Pipeline) RecoverChildren(f RecoverChildrenFunc) { p.recoverChildren = f }

// Empty reports whether no transformers are registered.
func (p *Pipeline) Empty() bool {
	return len(p.nodes) == 0 && len(p.values) == 0 &&
		len(p.attrs) == 0 && len(p.children) == 0
}

// Warnings returns the warnings recorded by the last Run.
func (p *Pipeline) Warnings() []string {
	return p.warnings
}

// Run applies the pipeline to the tree rooted at root, mutating it in
// place. ctx may be nil, in which case a root context is derived from the
// node. A transformer error aborts the whole run unless the stage has a
// recovery hook; no partially transformed tree should be used after an
// error. Run returns the surviving root, which is nil when a node
// transformer removed the root itself.
func (p *Pipeline) Run(root *ir.Node, ctx *Context) (*ir.Node, error) {
	p.warnings = nil
	if ctx == nil {
		ctx = RootContext(0, root, nil)
	}
	return p.run(root, ctx)
}

func (p *Pipeline) run(n *ir.Node, ctx *Context) (*ir.Node, error) {
	if debug.Pipeline() {
		debug.Logf("pipeline: visit %s (%s)\n", ctx.Path, n.Kind)
	}

	// stage 1: node transformers; removal short-circuits everything
	for i := range p.nodes {
		t := &p.nodes[i]
		if !t.matches(ctx.Path) {
			continue
		}
		next, err := t.f(n, ctx)
		if err != nil {
			next, err = p.substituteNode(n, ctx, err)
			if err != nil {
				return nil, err
			}
		}
		if next == nil {
			return nil, nil
		}
		n = next
	}

	// stage 2: value transformers on the node's own scalar
	if n.Value != nil {
		v, err := p.runValues(n.Value, ctx)
		if err != nil {
			return nil, err
		}
		n.Value = v
	}

	// stage 3: attributes; value stage first, then attribute transformers
	if len(n.Attributes) > 0 {
		kept := n.Attributes[:0]
		for _, a := range n.Attributes {
			actx := ctx.attr(a)
			if a.Value != nil {
				v, err := p.runValues(a.Value, actx)
				if err != nil {
					return nil, err
				}
				a.Value = v
			}
			res, err := p.runAttr(a, actx)
			if err != nil {
				return nil, err
			}
			if res == nil {
				continue
			}
			res.Parent = n
			kept = append(kept, res)
		}
		n.Attributes = kept
	}

	// stage 4: children transformers over the full ordered list
	for i := range p.children {
		t := &p.children[i]
		if !t.matches(ctx.Path) {
			continue
		}
		cs, err := t.f(n.Children, ctx)
		if err != nil {
			cs, err = p.substituteChildren(n.Children, ctx, err)
			if err != nil {
				return nil, err
			}
		}
		n.SetChildren(cs)
	}

	// stage 5: recurse into each surviving child
	if len(n.Children) > 0 {
		kept := n.Children[:0]
		for i, c := range n.Children {
			cctx := ctx.child(n, c, i)
			res, err := p.run(c, cctx)
			if err != nil {
				return nil, err
			}
			if res == nil {
				continue
			}
			res.Parent = n
			kept = append(kept, res)
		}
		n.Children = kept
	}
	return n, nil
}

func (p *Pipeline) runValues(v *ir.Scalar, ctx *Context) (*ir.Scalar, error) {
	for i := range p.values {
		t := &p.values[i]
		if !t.matches(ctx.Path) {
			continue
		}
		next, err := t.f(v, ctx)
		if err != nil {
			next, err = p.substituteValue(v, ctx, err)
			if err != nil {
				return nil, err
			}
		}
		if next == nil {
			// value deleted, the node stays
			return nil, nil
		}
		v = next
	}
	return v, nil
}

func (p *Pipeline) runAttr(a *ir.Node, actx *Context) (*ir.Node, error) {
	for i := range p.attrs {
		t := &p.attrs[i]
		if !t.matches(actx.Path) {
			continue
		}
		next, err := t.f(a, actx)
		if err != nil {
			next, err = p.substituteAttr(a, actx, err)
			if err != nil {
				return nil, err
			}
		}
		if next == nil {
			return nil, nil
		}
		a = next
	}
	return a, nil
}

func (p *Pipeline) substituteNode(n *ir.Node, ctx *Context, cause error) (*ir.Node, error) {
	if p.recoverNode == nil {
		return nil, fmt.Errorf("%w: node stage at %s: %w", ErrTransform, ctx.Path, cause)
	}
	res, err := p.recoverNode(n, ctx, cause)
	if err != nil {
		p.hookFailed(NodeStage, ctx, err)
		return n, nil
	}
	p.warn(NodeStage, ctx, cause)
	return res, nil
}

func (p *Pipeline) substituteValue(v *ir.Scalar, ctx *Context, cause error) (*ir.Scalar, error) {
	if p.recoverValue == nil {
		return nil, fmt.Errorf("%w: value stage at %s: %w", ErrTransform, ctx.Path, cause)
	}
	res, err := p.recoverValue(v, ctx, cause)
	if err != nil {
		p.hookFailed(ValueStage, ctx, err)
		return v, nil
	}
	p.warn(ValueStage, ctx, cause)
	return res, nil
}

func (p *Pipeline) substituteAttr(a *ir.Node, ctx *Context, cause error) (*ir.Node, error) {
	if p.recoverAttr == nil {
		return nil, fmt.Errorf("%w: attribute stage at %s: %w", ErrTransform, ctx.Path, cause)
	}
	res, err := p.recoverAttr(a, ctx, cause)
	if err != nil {
		p.hookFailed(AttrStage, ctx, err)
		return a, nil
	}
	p.warn(AttrStage, ctx, cause)
	return res, nil
}

func (p *Pipeline) substituteChildren(cs []*ir.Node, ctx *Context, cause error) ([]*ir.Node, error) {
	if p.recoverChildren == nil {
		return nil, fmt.Errorf("%w: children stage at %s: %w", ErrTransform, ctx.Path, cause)
	}
	res, err := p.recoverChildren(cs, ctx, cause)
	if err != nil {
		p.hookFailed(ChildrenStage, ctx, err)
		return cs, nil
	}
	p.warn(ChildrenStage, ctx, cause)
	return res, nil
}

func (p *Pipeline) warn(stage Stage, ctx *Context, cause error) {
	p.warnings = append(p.warnings,
		fmt.Sprintf("%s stage recovered at %s: %v", stage, ctx.Path, cause))
}

func (p *Pipeline) hookFailed(stage Stage, ctx *Context, err error) {
	if debug.Hook() {
		debug.Logf("recovery hook failed in %s stage at %s: %v\n", stage, ctx.Path, err)
	}
	p.warnings = append(p.warnings,
		fmt.Sprintf("%s stage recovery hook failed at %s: %v", stage, ctx.Path, err))
}
