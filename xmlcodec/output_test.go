package xmlcodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

func TestOutputBasic(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewValue("a", ir.FromString("1")))
	b := ir.NewRecord("b")
	b.Value = ir.FromInt(2)
	root.AddChild(b)

	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `<root><a>1</a><b>2</b></root>`
	if got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestOutputEmptySelfCloses(t *testing.T) {
	got, err := Output(ir.NewRecord("e"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<e/>` {
		t.Errorf("Output = %q, want %q", got, `<e/>`)
	}
}

func TestOutputAttributes(t *testing.T) {
	n := ir.NewRecord("item")
	n.AddAttribute(ir.NewAttribute("id", ir.FromString("42")))
	got, err := Output(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<item id="42"/>` {
		t.Errorf("Output = %q", got)
	}
}

func TestOutputAttrFieldFoldsBack(t *testing.T) {
	n := ir.NewRecord("item")
	n.AddChild(ir.NewField("@id", ir.FromString("42")))
	got, err := Output(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<item id="42"/>` {
		t.Errorf("Output = %q", got)
	}
}

func TestOutputCollectionTransparent(t *testing.T) {
	root := ir.NewRecord("root")
	items := ir.NewCollection("items")
	items.AddChild(ir.NewValue("item", ir.FromInt(1)))
	items.AddChild(ir.NewValue("item", ir.FromInt(2)))
	root.AddChild(items)

	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `<root><item>1</item><item>2</item></root>`
	if got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestOutputAnonymousRootUnwraps(t *testing.T) {
	anon := ir.NewRecord("")
	anon.AddChild(ir.NewRecord("root"))
	got, err := Output(anon, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<root/>` {
		t.Errorf("Output = %q", got)
	}
}

func TestOutputSingleRootEnforced(t *testing.T) {
	anon := ir.NewRecord("")
	anon.AddChild(ir.NewRecord("a"))
	anon.AddChild(ir.NewRecord("b"))
	if _, err := Output(anon, nil); !errors.Is(err, ErrOutput) {
		t.Errorf("two roots err = %v, want ErrOutput", err)
	}
	if _, err := Output(ir.NewRecord(""), nil); !errors.Is(err, ErrOutput) {
		t.Errorf("no roots err = %v, want ErrOutput", err)
	}
}

func TestOutputContentKinds(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewComment("note"))
	root.AddChild(ir.NewData("x<y"))
	root.AddChild(ir.NewInstruction("target", `data="1"`))
	root.AddChild(ir.NewText("tail"))

	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `<root><!--note--><![CDATA[x<y]]><?target data="1"?>tail</root>`
	if got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestOutputEscaping(t *testing.T) {
	n := ir.NewRecord("e")
	n.Value = ir.FromString(`a<b&"q"`)
	n.AddAttribute(ir.NewAttribute("x", ir.FromString(`<&">`)))
	got, err := Output(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `a&lt;b&amp;"q"`) {
		t.Errorf("text not escaped: %q", got)
	}
	if !strings.Contains(got, `x="&lt;&amp;&quot;&gt;"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
}

func TestOutputRejectsBadContent(t *testing.T) {
	bad := ir.NewRecord("root")
	bad.AddChild(ir.NewComment("a--b"))
	if _, err := Output(bad, nil); !errors.Is(err, ErrOutput) {
		t.Errorf("double-hyphen comment err = %v, want ErrOutput", err)
	}

	bad = ir.NewRecord("root")
	bad.AddChild(ir.NewData("a]]>b"))
	if _, err := Output(bad, nil); !errors.Is(err, ErrOutput) {
		t.Errorf("CDATA terminator err = %v, want ErrOutput", err)
	}

	bad = ir.NewRecord("root")
	bad.Value = ir.FromString("nul\x00")
	if _, err := Output(bad, nil); !errors.Is(err, ErrOutput) {
		t.Errorf("control char err = %v, want ErrOutput", err)
	}
}

func TestOutputPretty(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewValue("a", ir.FromString("1")))
	o := &OutputOptions{Pretty: true, Declaration: true}
	got, err := Output(root, o)
	if err != nil {
		t.Fatal(err)
	}
	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<root>\n  <a>1</a>\n</root>\n"
	if got != want {
		t.Errorf("Output =\n%q\nwant\n%q", got, want)
	}
}

func TestOutputPrettyKeepsMixedInline(t *testing.T) {
	p := ir.NewRecord("p")
	p.AddChild(ir.NewText("Hello "))
	b := ir.NewRecord("b")
	b.Value = ir.FromString("bold")
	p.AddChild(b)
	p.AddChild(ir.NewText(" world"))

	got, err := Output(p, &OutputOptions{Pretty: true})
	if err != nil {
		t.Fatal(err)
	}
	// character data is never reflowed
	if !strings.Contains(got, "Hello <b>bold</b> world") {
		t.Errorf("mixed content reflowed: %q", got)
	}
}

func TestOutputNamespaceLabel(t *testing.T) {
	n := &ir.Node{Kind: ir.RecordKind, Name: "env", Label: "s", NS: "urn:s"}
	got, err := Output(n, &OutputOptions{NamespacePolicy: NamespaceLabel})
	if err != nil {
		t.Fatal(err)
	}
	if got != `<s:env xmlns:s="urn:s"/>` {
		t.Errorf("Output = %q", got)
	}
}

func TestOutputNamespaceDeclaredOnce(t *testing.T) {
	root := &ir.Node{Kind: ir.RecordKind, Name: "s:env", NS: "urn:s"}
	child := &ir.Node{Kind: ir.RecordKind, Name: "s:body", NS: "urn:s"}
	root.AddChild(child)
	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(got, `xmlns:s=`) != 1 {
		t.Errorf("namespace declared more than once: %q", got)
	}
}

func TestOutputAttrNamespaceScopedPerSibling(t *testing.T) {
	root := ir.NewRecord("root")
	for _, name := range []string{"a", "b"} {
		c := ir.NewRecord(name)
		attr := ir.NewAttribute("s:x", ir.FromString("1"))
		attr.NS = "urn:s"
		c.AddAttribute(attr)
		root.AddChild(c)
	}
	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	// the declaration forced by a's attribute closes with a, so b
	// must declare the prefix again
	want := `<root><a s:x="1" xmlns:s="urn:s"/><b s:x="1" xmlns:s="urn:s"/></root>`
	if got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`<root><a>1</a><b x="2"/></root>`,
		`<p>Hello <b>bold</b> world</p>`,
		`<d><!--note--><![CDATA[x<y]]></d>`,
		`<s:env xmlns:s="urn:s"><s:body/></s:env>`,
	}
	for _, doc := range docs {
		n, err := Source(doc, nil)
		if err != nil {
			t.Fatalf("source %q: %v", doc, err)
		}
		out, err := Output(n, nil)
		if err != nil {
			t.Fatalf("output %q: %v", doc, err)
		}
		n2, err := Source(out, nil)
		if err != nil {
			t.Fatalf("re-source %q: %v", out, err)
		}
		if !ir.Equal(n, n2) {
			t.Errorf("round trip not stable for %q, got %q", doc, out)
		}
	}
}
