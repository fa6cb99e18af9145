package xnode

import (
	"github.com/signadot/xnode-format/go-xnode/debug"
	"github.com/signadot/xnode-format/go-xnode/ir"
	"github.com/signadot/xnode-format/go-xnode/jsoncodec"
	"github.com/signadot/xnode-format/go-xnode/transform"
	"github.com/signadot/xnode-format/go-xnode/xmlcodec"
)

// Options bundles the per-codec option structs, the transform pipeline and
// the hook pair for one conversion. There is no ambient configuration: the
// zero Options value is the default and is passed explicitly.
type Options struct {
	XMLSource  *xmlcodec.SourceOptions
	XMLOutput  *xmlcodec.OutputOptions
	JSONSource *jsoncodec.SourceOptions
	JSONOutput *jsoncodec.OutputOptions

	Pipeline *transform.Pipeline
	Hooks    *Hooks
}

func (o *Options) withDefaults() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}

// Hooks are the optional before/after pair around each codec boundary.
// The before hook sees the raw input before model conversion, the after
// hooks see the produced model or the final output. All are best-effort:
// a hook error is logged and the original value retained.
type Hooks struct {
	BeforeSource func(raw any) (any, error)
	AfterSource  func(n *ir.Node) (*ir.Node, error)
	BeforeOutput func(n *ir.Node) (*ir.Node, error)
	AfterOutput  func(out any) (any, error)
}

func (h *Hooks) beforeSource(raw any) any {
	if h == nil || h.BeforeSource == nil {
		return raw
	}
	out, err := h.BeforeSource(raw)
	if err != nil {
		logHook("before-source", err)
		return raw
	}
	return out
}

func (h *Hooks) afterSource(n *ir.Node) *ir.Node {
	if h == nil || h.AfterSource == nil {
		return n
	}
	out, err := h.AfterSource(n)
	if err != nil {
		logHook("after-source", err)
		return n
	}
	return out
}

func (h *Hooks) beforeOutput(n *ir.Node) *ir.Node {
	if h == nil || h.BeforeOutput == nil {
		return n
	}
	out, err := h.BeforeOutput(n)
	if err != nil {
		logHook("before-output", err)
		return n
	}
	return out
}

func (h *Hooks) afterOutput(out any) any {
	if h == nil || h.AfterOutput == nil {
		return out
	}
	res, err := h.AfterOutput(out)
	if err != nil {
		logHook("after-output", err)
		return out
	}
	return res
}

func logHook(name string, err error) {
	if debug.Hook() {
		debug.Logf("%s hook failed: %v\n", name, err)
	}
}
