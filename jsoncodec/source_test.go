package jsoncodec

import (
	"errors"
	"testing"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

func TestSourceObject(t *testing.T) {
	n, err := Source(map[string]any{
		"title": "x",
		"count": float64(3),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n.Name != "" || n.Kind != ir.RecordKind {
		t.Fatalf("root = %s %q, want anonymous Record", n.Kind, n.Name)
	}
	// top-level properties stay Values under the auto policy
	title := n.Child("title")
	if title == nil || title.Kind != ir.ValueKind || title.Value.String != "x" {
		t.Errorf("title = %+v", title)
	}
	count := n.Child("count")
	if count == nil || *count.Value.Int64 != 3 {
		t.Errorf("count = %+v", count)
	}
}

func TestSourceAutoFieldDepth(t *testing.T) {
	n, err := Source(map[string]any{
		"outer": map[string]any{"inner": "v"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	inner := n.Child("outer").Child("inner")
	if inner == nil || inner.Kind != ir.FieldKind {
		t.Errorf("nested leaf = %+v, want a Field", inner)
	}
}

func TestSourceFieldPolicyOverrides(t *testing.T) {
	o := DefaultSourceOptions()
	o.FieldPolicy = FieldAlways
	n, err := Source(map[string]any{"a": "v"}, o)
	if err != nil {
		t.Fatal(err)
	}
	if n.Child("a").Kind != ir.FieldKind {
		t.Errorf("FieldAlways did not produce a Field")
	}

	o = DefaultSourceOptions()
	o.FieldPolicy = FieldNever
	n, err = Source(map[string]any{"outer": map[string]any{"inner": "v"}}, o)
	if err != nil {
		t.Fatal(err)
	}
	if n.Child("outer").Child("inner").Kind != ir.ValueKind {
		t.Errorf("FieldNever did not produce a Value")
	}
}

func TestSourceArrayItemNames(t *testing.T) {
	n, err := Source(map[string]any{
		"items": []any{float64(1), float64(2)},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	coll := n.Child("items")
	if coll == nil || coll.Kind != ir.CollectionKind {
		t.Fatalf("items = %+v, want Collection", coll)
	}
	if len(coll.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(coll.Children))
	}
	for _, c := range coll.Children {
		if c.Name != "item" {
			t.Errorf("item name = %q, want %q", c.Name, "item")
		}
	}
}

func TestSourceConfiguredItemNames(t *testing.T) {
	o := DefaultSourceOptions()
	o.ItemNames = map[string]string{"books": "book"}
	n, err := Source(map[string]any{
		"books": []any{map[string]any{"title": "t"}},
	}, o)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Child("books").Children[0].Name; got != "book" {
		t.Errorf("item name = %q, want %q", got, "book")
	}
}

func TestSourceHeterogeneousArray(t *testing.T) {
	n, err := Source(map[string]any{
		"mixed": []any{"s", float64(1), true},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	coll := n.Child("mixed")
	want := []string{"item0", "item1", "item2"}
	for i, c := range coll.Children {
		if c.Name != want[i] {
			t.Errorf("child %d name = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestSourceAttrAndTextKeys(t *testing.T) {
	n, err := Source(map[string]any{
		"item": map[string]any{
			"@id":   "42",
			"#text": "body",
		},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	item := n.Child("item")
	id := item.Attr("id")
	if id == nil || id.Kind != ir.AttributeKind || id.Value.String != "42" {
		t.Errorf("id attr = %+v", id)
	}
	if item.Value == nil || item.Value.String != "body" {
		t.Errorf("item value = %+v", item.Value)
	}
}

func TestSourceNullPolicies(t *testing.T) {
	in := map[string]any{"a": nil}

	// value: a present null
	n, err := Source(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	a := n.Child("a")
	if a == nil || a.Value == nil || a.Value.Type != ir.NullScalar {
		t.Errorf("value policy: a = %+v", a)
	}

	// field: a field with absent value
	o := DefaultSourceOptions()
	o.NullPolicy = NullAsField
	n, err = Source(in, o)
	if err != nil {
		t.Fatal(err)
	}
	a = n.Child("a")
	if a == nil || a.Kind != ir.FieldKind || a.Value != nil {
		t.Errorf("field policy: a = %+v", a)
	}

	// remove: gone entirely
	o = DefaultSourceOptions()
	o.NullPolicy = NullRemove
	n, err = Source(in, o)
	if err != nil {
		t.Fatal(err)
	}
	if n.Child("a") != nil {
		t.Errorf("remove policy kept the null property")
	}
}

func TestSourceNullRemoveDropsEmptiedSubtrees(t *testing.T) {
	o := DefaultSourceOptions()
	o.NullPolicy = NullRemove
	n, err := Source(map[string]any{
		"keep":  "v",
		"empty": map[string]any{"only": nil},
	}, o)
	if err != nil {
		t.Fatal(err)
	}
	if n.Child("empty") != nil {
		t.Errorf("subtree emptied by null removal survived")
	}
	if n.Child("keep") == nil {
		t.Errorf("unrelated property removed")
	}
}

func TestSourceScalarRoot(t *testing.T) {
	n, err := Source("hello", nil)
	if err != nil {
		t.Fatal(err)
	}
	c := n.Child(ir.TextName)
	if c == nil || c.Value.String != "hello" {
		t.Errorf("scalar root = %+v", n)
	}
}

func TestSourceBytes(t *testing.T) {
	n, err := SourceBytes([]byte(`{"a": 1}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Child("a"); got == nil || *got.Value.Int64 != 1 {
		t.Errorf("a = %+v", got)
	}
	if _, err := SourceBytes([]byte(`{`), nil); !errors.Is(err, ErrValidate) {
		t.Errorf("bad json err = %v, want ErrValidate", err)
	}
}

func TestSourceCycleDetection(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	if _, err := Source(m, nil); !errors.Is(err, ErrCycle) {
		t.Errorf("cyclic map err = %v, want ErrCycle", err)
	}

	s := []any{nil}
	s[0] = s
	if _, err := Source(map[string]any{"s": s}, nil); !errors.Is(err, ErrCycle) {
		t.Errorf("cyclic slice err = %v, want ErrCycle", err)
	}

	// sibling references to the same map are not a cycle
	shared := map[string]any{"v": "x"}
	if _, err := Source(map[string]any{"a": shared, "b": shared}, nil); err != nil {
		t.Errorf("shared non-cyclic value rejected: %v", err)
	}
}
