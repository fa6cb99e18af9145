package xmlcodec

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/signadot/xnode-format/go-xnode/debug"
	"github.com/signadot/xnode-format/go-xnode/dom"
	"github.com/signadot/xnode-format/go-xnode/ir"
)

// Output converts a node tree back into markup. The inverse of Source:
// Record, Collection, Field and Value map to elements, Comment to a
// comment, Instruction to a processing instruction, Data to a CDATA
// section. Character data that cannot be represented in XML fails the
// whole conversion; no partial output is produced.
func Output(n *ir.Node, o *OutputOptions) (string, error) {
	o = o.withDefaults()
	doc := dom.NewDocument()
	out := &outputter{opts: o, declared: map[string]string{}}
	if err := out.append(doc, n); err != nil {
		return "", err
	}
	roots := 0
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			roots++
		}
	}
	if roots != 1 {
		return "", fmt.Errorf("%w: document must have exactly one root element, got %d", ErrOutput, roots)
	}
	if debug.Output() {
		debug.Logf("xml output: %d root(s) under document\n", roots)
	}
	p := &printer{opts: o}
	return p.print(doc)
}

type outputter struct {
	opts *OutputOptions

	// declared tracks in-scope namespace declarations so a prefix is
	// declared once on the outermost element that uses it.
	declared map[string]string

	// undo holds the pending undeclarations for attribute-driven
	// declarations; element pops its frame when it closes.
	undo []func()
}

func (out *outputter) append(parent *xmlquery.Node, n *ir.Node) error {
	switch n.Kind {
	case ir.CommentKind:
		text := n.Value.Text()
		if err := dom.CheckComment(text); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		dom.AddChild(parent, dom.NewComment(text))
		return nil
	case ir.InstructionKind:
		content := n.Value.Text()
		if err := dom.CheckChars(content); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		dom.AddChild(parent, dom.NewInstruction(n.Name, content))
		return nil
	case ir.DataKind:
		data := n.Value.Text()
		if err := dom.CheckCDATA(data); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		dom.AddChild(parent, dom.NewCDATA(data))
		return nil
	case ir.AttributeKind:
		return out.attr(parent, n, n.Name)
	case ir.CollectionKind:
		// repeated structure renders as sibling elements
		for _, c := range n.Children {
			if err := out.append(parent, c); err != nil {
				return err
			}
		}
		return nil
	}

	if n.Name == "" {
		// anonymous container, render the children directly
		for _, c := range n.Children {
			if err := out.append(parent, c); err != nil {
				return err
			}
		}
		return nil
	}
	if strings.HasPrefix(n.Name, AttrMarker) {
		// synthetic attribute field folds back into a true attribute
		return out.attr(parent, n, strings.TrimPrefix(n.Name, AttrMarker))
	}
	if n.Name == TextKey {
		text := n.Value.Text()
		if err := dom.CheckChars(text); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		dom.AddChild(parent, dom.NewText(text))
		return nil
	}
	return out.element(parent, n)
}

func (out *outputter) element(parent *xmlquery.Node, n *ir.Node) error {
	prefix, local := out.qname(n)
	el := dom.NewElement(prefix, local, n.NS)

	undeclare := out.declare(el, prefix, n.NS)
	defer undeclare()

	// declarations forced by attributes stay in scope until this
	// element closes, exactly like the element's own declaration
	mark := len(out.undo)
	defer func() {
		for i := len(out.undo) - 1; i >= mark; i-- {
			out.undo[i]()
		}
		out.undo = out.undo[:mark]
	}()

	for _, a := range n.Attributes {
		if err := out.attr(el, a, a.Name); err != nil {
			return err
		}
	}

	if n.Value != nil {
		text := n.Value.Text()
		if err := dom.CheckChars(text); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		if text != "" {
			dom.AddChild(el, dom.NewText(text))
		}
	}
	for _, c := range n.Children {
		if err := out.append(el, c); err != nil {
			return err
		}
	}
	dom.AddChild(parent, el)
	return nil
}

func (out *outputter) attr(parent *xmlquery.Node, n *ir.Node, name string) error {
	if parent.Type != xmlquery.ElementNode {
		return fmt.Errorf("%w: attribute %q has no owning element", ErrOutput, name)
	}
	value := n.Value.Text()
	if err := dom.CheckChars(value); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	prefix, local := out.splitQName(name, n.Label)
	dom.SetAttr(parent, prefix, local, n.NS, value)
	if prefix != "" {
		out.undo = append(out.undo, out.declare(parent, prefix, n.NS))
	}
	return nil
}

// qname reconstructs the element's prefix and local name following the
// same three-way namespace policy the source side applies.
func (out *outputter) qname(n *ir.Node) (prefix, local string) {
	return out.splitQName(n.Name, n.Label)
}

func (out *outputter) splitQName(name, label string) (prefix, local string) {
	switch out.opts.NamespacePolicy {
	case NamespacePreserve:
		if i := strings.Index(name, ":"); i > 0 {
			return name[:i], name[i+1:]
		}
		return "", name
	case NamespaceLabel:
		return label, name
	default:
		if i := strings.Index(name, ":"); i > 0 {
			return "", name[i+1:]
		}
		return "", name
	}
}

func (out *outputter) declare(el *xmlquery.Node, prefix, ns string) func() {
	if ns == "" || out.opts.NamespacePolicy == NamespaceStrip {
		return func() {}
	}
	key := prefix
	prev, had := out.declared[key]
	if had && prev == ns {
		return func() {}
	}
	if prefix == "" {
		dom.SetAttr(el, "", "xmlns", "", ns)
	} else {
		dom.SetAttr(el, "xmlns", prefix, "", ns)
	}
	out.declared[key] = ns
	return func() {
		if had {
			out.declared[key] = prev
		} else {
			delete(out.declared, key)
		}
	}
}
