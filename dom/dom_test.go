package dom

import (
	"errors"
	"testing"

	"github.com/antchfx/xmlquery"
)

func TestParseAndRoot(t *testing.T) {
	doc, err := Parse(`<?xml version="1.0"?><!--lead--><root><a/></root>`)
	if err != nil {
		t.Fatal(err)
	}
	root := Root(doc)
	if root == nil || root.Data != "root" {
		t.Fatalf("Root = %v", root)
	}
	if Root(NewDocument()) != nil {
		t.Errorf("empty document has a root")
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse(`<a><b></a>`); !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestQuery(t *testing.T) {
	doc, err := Parse(`<root><item id="1"/><item id="2"/></root>`)
	if err != nil {
		t.Fatal(err)
	}
	nodes, err := Query(doc, `//item[@id="2"]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 || nodes[0].SelectAttr("id") != "2" {
		t.Errorf("query result = %v", nodes)
	}
	if _, err := Query(doc, `//[bad`); err == nil {
		t.Errorf("bad xpath accepted")
	}
}

func TestBuildTree(t *testing.T) {
	doc := NewDocument()
	el := NewElement("p", "item", "urn:p")
	SetAttr(el, "", "id", "", "1")
	AddChild(el, NewText("body"))
	AddChild(doc, el)

	if doc.FirstChild != el || el.Parent != doc {
		t.Errorf("AddChild did not link nodes")
	}
	if el.FirstChild == nil || el.FirstChild.Type != xmlquery.TextNode {
		t.Errorf("text child missing")
	}
	if el.SelectAttr("id") != "1" {
		t.Errorf("attribute not set")
	}
}

func TestEscape(t *testing.T) {
	if got := EscapeText(`a<b&c>`); got != "a&lt;b&amp;c&gt;" {
		t.Errorf("EscapeText = %q", got)
	}
	if got := EscapeAttr(`"x" <&>`); got != `&quot;x&quot; &lt;&amp;&gt;` {
		t.Errorf("EscapeAttr = %q", got)
	}
}

func TestCheckChars(t *testing.T) {
	if err := CheckChars("ok\ttext\n"); err != nil {
		t.Errorf("legal text rejected: %v", err)
	}
	if err := CheckChars("nul\x00"); err == nil {
		t.Errorf("NUL accepted")
	}
	if err := CheckChars(string([]byte{0xff, 0xfe})); err == nil {
		t.Errorf("invalid UTF-8 accepted")
	}
}

func TestCheckCDATA(t *testing.T) {
	if err := CheckCDATA("a]]b"); err != nil {
		t.Errorf("legal CDATA rejected: %v", err)
	}
	if err := CheckCDATA("a]]>b"); err == nil {
		t.Errorf("terminator accepted")
	}
}

func TestCheckComment(t *testing.T) {
	if err := CheckComment("a - b"); err != nil {
		t.Errorf("legal comment rejected: %v", err)
	}
	if err := CheckComment("a--b"); err == nil {
		t.Errorf("double hyphen accepted")
	}
	if err := CheckComment("ends-"); err == nil {
		t.Errorf("trailing hyphen accepted")
	}
}
