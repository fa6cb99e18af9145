package xmlcodec

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/signadot/xnode-format/go-xnode/dom"
)

// contentShape classifies an element's content for formatting.
type contentShape int

const (
	emptyContent contentShape = iota
	textContent
	structuredContent
	mixedContent
)

func shapeOf(el *xmlquery.Node) contentShape {
	hasText, hasOther := false, false
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			hasText = true
		default:
			hasOther = true
		}
	}
	switch {
	case !hasText && !hasOther:
		return emptyContent
	case hasText && !hasOther:
		return textContent
	case !hasText:
		return structuredContent
	default:
		return mixedContent
	}
}

type printer struct {
	opts *OutputOptions
	b    strings.Builder
}

func (p *printer) print(doc *xmlquery.Node) (string, error) {
	if p.opts.Declaration {
		p.color(DeclColor, `<?xml version="1.0" encoding="`+p.opts.Encoding+`"?>`)
		p.newline(0)
	}
	first := true
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if !first {
			p.newline(0)
		}
		first = false
		p.node(c, 0)
	}
	if p.opts.Pretty {
		p.b.WriteString("\n")
	}
	return p.b.String(), nil
}

func (p *printer) node(n *xmlquery.Node, depth int) {
	switch n.Type {
	case xmlquery.ElementNode:
		p.element(n, depth)
	case xmlquery.TextNode:
		p.color(TextColor, dom.EscapeText(n.Data))
	case xmlquery.CharDataNode:
		p.color(DataColor, "<![CDATA["+n.Data+"]]>")
	case xmlquery.CommentNode:
		p.color(CommentColor, "<!--"+n.Data+"-->")
	case xmlquery.DeclarationNode:
		p.pi(n)
	}
}

func (p *printer) element(el *xmlquery.Node, depth int) {
	p.openTag(el)
	switch shapeOf(el) {
	case emptyContent:
		// openTag self-closed below
		return
	case textContent, mixedContent:
		// inline, never reflow character data
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			p.node(c, depth+1)
		}
	case structuredContent:
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			p.newline(depth + 1)
			p.node(c, depth+1)
		}
		p.newline(depth)
	}
	p.closeTag(el)
}

func (p *printer) openTag(el *xmlquery.Node) {
	p.b.WriteString("<")
	p.color(TagColor, qualified(el))
	for _, a := range el.Attr {
		p.b.WriteString(" ")
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + a.Name.Local
		}
		p.color(AttrNameColor, name)
		p.b.WriteString(`="`)
		p.color(AttrValueColor, dom.EscapeAttr(a.Value))
		p.b.WriteString(`"`)
	}
	if shapeOf(el) == emptyContent {
		p.b.WriteString("/>")
		return
	}
	p.b.WriteString(">")
}

func (p *printer) closeTag(el *xmlquery.Node) {
	p.b.WriteString("</")
	p.color(TagColor, qualified(el))
	p.b.WriteString(">")
}

func (p *printer) pi(n *xmlquery.Node) {
	var b strings.Builder
	b.WriteString("<?")
	b.WriteString(n.Data)
	if n.FirstChild != nil && n.FirstChild.Type == xmlquery.TextNode {
		b.WriteString(" ")
		b.WriteString(n.FirstChild.Data)
	} else {
		for _, a := range n.Attr {
			b.WriteString(" ")
			b.WriteString(a.Name.Local)
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteString(`"`)
		}
	}
	b.WriteString("?>")
	p.color(PIColor, b.String())
}

func (p *printer) newline(depth int) {
	if !p.opts.Pretty {
		return
	}
	p.b.WriteString("\n")
	p.b.WriteString(strings.Repeat(p.opts.Indent, depth))
}

func (p *printer) color(a ColorAttr, s string) {
	if p.opts.Colors == nil {
		p.b.WriteString(s)
		return
	}
	p.b.WriteString(p.opts.Colors.Color(a, s))
}

func qualified(el *xmlquery.Node) string {
	if el.Prefix != "" {
		return el.Prefix + ":" + el.Data
	}
	return el.Data
}
