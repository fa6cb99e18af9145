// Package dom supplies the DOM capability the XML codec builds on: parsing
// a string into a document, constructing element, text, CDATA, comment and
// processing-instruction nodes with or without a namespace, and querying
// with XPath. The node taxonomy is the one xmlquery exposes, which follows
// the standard DOM node types.
package dom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var ErrParse = errors.New("xml parse error")

// Parse parses markup into a document node.
func Parse(s string) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

// Root returns the document's root element, skipping the declaration and
// any leading comments or processing instructions.
func Root(doc *xmlquery.Node) *xmlquery.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// NewDocument returns an empty document node to append output under.
func NewDocument() *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.DocumentNode}
}

// NewElement constructs an element node. prefix and ns may be empty.
func NewElement(prefix, local, ns string) *xmlquery.Node {
	return &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Data:         local,
		Prefix:       prefix,
		NamespaceURI: ns,
	}
}

// NewText constructs a text node.
func NewText(text string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.TextNode, Data: text}
}

// NewCDATA constructs a CDATA section node.
func NewCDATA(data string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.CharDataNode, Data: data}
}

// NewComment constructs a comment node.
func NewComment(text string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.CommentNode, Data: text}
}

// NewInstruction constructs a processing-instruction node. xmlquery models
// these as declaration nodes whose Data is the PI target.
func NewInstruction(target, content string) *xmlquery.Node {
	n := &xmlquery.Node{Type: xmlquery.DeclarationNode, Data: target}
	if content != "" {
		n.FirstChild = &xmlquery.Node{Type: xmlquery.TextNode, Data: content, Parent: n}
		n.LastChild = n.FirstChild
	}
	return n
}

// AddChild appends child under parent.
func AddChild(parent, child *xmlquery.Node) {
	xmlquery.AddChild(parent, child)
}

// SetAttr appends an attribute to an element. prefix and ns may be empty.
func SetAttr(n *xmlquery.Node, prefix, local, ns, value string) {
	n.Attr = append(n.Attr, xmlquery.Attr{
		Name:         xml.Name{Space: prefix, Local: local},
		Value:        value,
		NamespaceURI: ns,
	})
}

// Query runs an XPath expression against a node and returns the matches.
func Query(n *xmlquery.Node, expr string) ([]*xmlquery.Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}
	nodes, err := xmlquery.QueryAll(n, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	return nodes, nil
}

// OutputXML renders the subtree rooted at n, including n itself.
func OutputXML(n *xmlquery.Node) string {
	return n.OutputXML(true)
}
