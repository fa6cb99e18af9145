package jsoncodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xnode-format/go-xnode/ir"
)

func TestOutputNamedRootWraps(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewValue("a", ir.FromString("1")))
	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"root": map[string]any{"a": "1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputAnonymousRootUnwraps(t *testing.T) {
	root := ir.NewRecord("")
	root.AddChild(ir.NewValue("a", ir.FromInt(1)))
	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": int64(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputArrayAndScalarRootsBare(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   any
		want any
	}{
		{"array", []any{1.0, 2.0}, []any{int64(1), int64(2)}},
		{"scalar", "hi", "hi"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Source(tc.in, nil)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Output(n, nil)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutputAttributesMarked(t *testing.T) {
	item := ir.NewRecord("item")
	item.AddAttribute(ir.NewAttribute("id", ir.FromString("42")))
	item.Value = ir.FromString("body")
	got, err := Output(item, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"item": map[string]any{
		"@id":   "42",
		"#text": "body",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputScalarCollapse(t *testing.T) {
	// a lone value with no attributes collapses to the bare scalar
	n := ir.NewRecord("a")
	n.Value = ir.FromString("v")
	got, err := Output(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": "v"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputRepeatedChildrenGroup(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewValue("item", ir.FromInt(1)))
	root.AddChild(ir.NewValue("item", ir.FromInt(2)))
	root.AddChild(ir.NewValue("single", ir.FromInt(3)))

	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"root": map[string]any{
		"item":   []any{int64(1), int64(2)},
		"single": int64(3),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputCollectionIsArray(t *testing.T) {
	root := ir.NewRecord("root")
	items := ir.NewCollection("items")
	items.AddChild(ir.NewValue("item", ir.FromInt(1)))
	items.AddChild(ir.NewValue("item", ir.FromInt(2)))
	root.AddChild(items)

	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"root": map[string]any{
		"items": []any{int64(1), int64(2)},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputEmptyIsNull(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewRecord("empty"))
	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"root": map[string]any{"empty": nil}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputContentKinds(t *testing.T) {
	root := ir.NewRecord("root")
	root.AddChild(ir.NewComment("note"))
	root.AddChild(ir.NewInstruction("pi", "data"))
	got, err := Output(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"root": map[string]any{
		"#comment":     "note",
		"#instruction": "data",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputBytesPretty(t *testing.T) {
	n := ir.NewRecord("a")
	n.Value = ir.FromInt(1)
	d, err := OutputBytes(n, &OutputOptions{Pretty: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1\n}"
	if string(d) != want {
		t.Errorf("OutputBytes = %q, want %q", d, want)
	}
}
