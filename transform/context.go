package transform

import (
	"github.com/signadot/xnode-format/go-xnode/format"
	"github.com/signadot/xnode-format/go-xnode/ir"
)

// Context is the ephemeral, read-mostly value threaded through the
// pipeline: one exists per node or attribute visited. Contexts form a
// chain mirroring the node tree through Parent; they are not the node
// tree itself.
type Context struct {
	// Format is the conversion target.
	Format format.Format

	Name string
	Kind ir.Kind
	NS   string
	// Label is the namespace prefix, when the codec stored one.
	Label string

	// Path is the dot-notation address of the node or attribute.
	Path string

	// IsAttribute marks attribute contexts; AttrName carries the
	// attribute's name so path scoping can tell node.attr from
	// node.child.
	IsAttribute bool
	AttrName    string

	// Parent links the enclosing context for ancestor lookups.
	Parent *Context

	// Config references the active configuration, opaque to the
	// pipeline.
	Config any
}

// RootContext builds the context for a tree root.
func RootContext(f format.Format, n *ir.Node, config any) *Context {
	return &Context{
		Format: f,
		Name:   n.Name,
		Kind:   n.Kind,
		NS:     n.NS,
		Label:  n.Label,
		Path:   n.Name,
		Config: config,
	}
}

// child derives the context for the i-th child of the node this context
// describes: the path is extended with the child's segment and the parent
// link set to the current context.
func (c *Context) child(parent, n *ir.Node, i int) *Context {
	seg := ir.PathSegment(parent, n, i)
	path := seg
	if c.Path != "" {
		path = c.Path + "." + seg
	}
	return &Context{
		Format: c.Format,
		Name:   n.Name,
		Kind:   n.Kind,
		NS:     n.NS,
		Label:  n.Label,
		Path:   path,
		Parent: c,
		Config: c.Config,
	}
}

// attr derives the context for one attribute of the node this context
// describes.
func (c *Context) attr(a *ir.Node) *Context {
	path := a.Name
	if c.Path != "" {
		path = c.Path + "." + a.Name
	}
	return &Context{
		Format:      c.Format,
		Name:        c.Name,
		Kind:        ir.AttributeKind,
		NS:          a.NS,
		Label:       a.Label,
		Path:        path,
		IsAttribute: true,
		AttrName:    a.Name,
		Parent:      c,
		Config:      c.Config,
	}
}

// Ancestor returns the n-th enclosing context, 0 being the receiver.
func (c *Context) Ancestor(n int) *Context {
	res := c
	for n > 0 && res != nil {
		res = res.Parent
		n--
	}
	return res
}
