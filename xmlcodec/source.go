package xmlcodec

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/signadot/xnode-format/go-xnode/debug"
	"github.com/signadot/xnode-format/go-xnode/dom"
	"github.com/signadot/xnode-format/go-xnode/ir"
)

// Source parses markup and converts the document's root element into a
// Record tree. A malformed document fails the whole conversion; no partial
// tree is produced.
func Source(s string, o *SourceOptions) (*ir.Node, error) {
	o = o.withDefaults()
	doc, err := dom.Parse(s)
	if err != nil {
		return nil, err
	}
	root := dom.Root(doc)
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrValidate)
	}
	src := &sourcer{opts: o, prefixes: map[string]string{}}
	res := src.element(root)
	if debug.Source() {
		debug.Logf("xml source: root %q with %d children\n", res.Name, len(res.Children))
	}
	return res, nil
}

type sourcer struct {
	opts *SourceOptions

	// prefixes collects namespace declarations seen on the way down.
	// Declarations are consumed here and never become nodes; they back
	// URI resolution when the parser leaves one blank.
	prefixes map[string]string
}

func (s *sourcer) element(el *xmlquery.Node) *ir.Node {
	rec := ir.NewRecord("")
	s.applyName(rec, el.Prefix, el.Data, el.NamespaceURI)

	for _, a := range el.Attr {
		if a.Name.Space == "xmlns" {
			s.prefixes[a.Name.Local] = a.Value
			continue
		}
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			s.prefixes[""] = a.Value
			continue
		}
		if !s.opts.PreserveAttributes {
			continue
		}
		s.addAttr(rec, a)
	}

	if s.textOnly(el) {
		text := s.collapseText(el)
		if !s.opts.PreserveWhitespace {
			text = strings.TrimSpace(text)
		}
		if text != "" {
			rec.Value = ir.FromString(text)
		}
		return rec
	}

	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			rec.AddChild(s.element(c))
		case xmlquery.TextNode:
			if !s.opts.PreserveTextNodes {
				continue
			}
			if !s.opts.PreserveWhitespace && strings.TrimSpace(c.Data) == "" {
				continue
			}
			rec.AddChild(ir.NewText(c.Data))
		case xmlquery.CharDataNode:
			switch {
			case s.opts.PreserveCDATA:
				rec.AddChild(ir.NewData(c.Data))
			case s.opts.PreserveTextNodes:
				rec.AddChild(ir.NewText(c.Data))
			}
		case xmlquery.CommentNode:
			if s.opts.PreserveComments {
				rec.AddChild(ir.NewComment(c.Data))
			}
		case xmlquery.DeclarationNode:
			if c.Data == "xml" {
				continue
			}
			if s.opts.PreserveInstructions {
				rec.AddChild(ir.NewInstruction(c.Data, piContent(c)))
			}
		}
	}
	return rec
}

// textOnly reports whether the element's content collapses into the
// record's own value: no element children, and no auxiliary content that
// the options ask to materialize as explicit child nodes.
func (s *sourcer) textOnly(el *xmlquery.Node) bool {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			return false
		case xmlquery.CharDataNode:
			if s.opts.PreserveCDATA {
				return false
			}
		case xmlquery.CommentNode:
			if s.opts.PreserveComments {
				return false
			}
		case xmlquery.DeclarationNode:
			if c.Data != "xml" && s.opts.PreserveInstructions {
				return false
			}
		}
	}
	return true
}

func (s *sourcer) collapseText(el *xmlquery.Node) string {
	var b strings.Builder
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func (s *sourcer) applyName(n *ir.Node, prefix, local, ns string) {
	if !s.opts.PreserveNamespaces {
		n.Name = local
		return
	}
	if ns == "" && prefix != "" {
		ns = s.prefixes[prefix]
	}
	switch s.opts.NamespacePolicy {
	case NamespacePreserve:
		if prefix != "" {
			n.Name = prefix + ":" + local
		} else {
			n.Name = local
		}
		n.NS = ns
	case NamespaceLabel:
		n.Name = local
		n.Label = prefix
		n.NS = ns
	case NamespaceStrip:
		n.Name = local
	}
}

func (s *sourcer) addAttr(rec *ir.Node, a xmlquery.Attr) {
	attr := ir.NewAttribute("", ir.FromString(a.Value))
	s.applyName(attr, a.Name.Space, a.Name.Local, a.NamespaceURI)
	if s.opts.AttributeMode == AttributesAsFields {
		f := ir.NewField(AttrMarker+attr.Name, attr.Value)
		f.NS, f.Label = attr.NS, attr.Label
		rec.AddChild(f)
		return
	}
	rec.AddAttribute(attr)
}

// piContent reconstructs a processing instruction's content from the
// pseudo-attributes the parser split it into.
func piContent(n *xmlquery.Node) string {
	parts := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		parts = append(parts, fmt.Sprintf("%s=%q", a.Name.Local, a.Value))
	}
	return strings.Join(parts, " ")
}
