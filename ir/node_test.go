package ir

import (
	"testing"
)

func TestAddChildOwnership(t *testing.T) {
	root := NewRecord("root")
	a := NewRecord("a")
	b := NewValue("b", FromString("x"))
	root.AddChild(a).AddChild(b)
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	if a.Parent != root || b.Parent != root {
		t.Errorf("children do not point back at their parent")
	}
}

func TestAddAttributeForcesKind(t *testing.T) {
	root := NewRecord("root")
	a := NewField("id", FromString("1"))
	root.AddAttribute(a)
	if a.Kind != AttributeKind {
		t.Errorf("attribute kind = %s, want Attribute", a.Kind)
	}
	if got := root.Attr("id"); got != a {
		t.Errorf("Attr(id) = %v, want the added attribute", got)
	}
	if root.Attr("missing") != nil {
		t.Errorf("Attr(missing) != nil")
	}
}

func TestChildLookup(t *testing.T) {
	root := NewRecord("root")
	root.AddChild(NewValue("item", FromInt(1)))
	root.AddChild(NewValue("item", FromInt(2)))
	root.AddChild(NewValue("other", FromInt(3)))

	if c := root.Child("other"); c == nil || *c.Value.Int64 != 3 {
		t.Errorf("Child(other) wrong: %v", c)
	}
	items := root.ChildrenNamed("item")
	if len(items) != 2 {
		t.Fatalf("ChildrenNamed(item) = %d entries, want 2", len(items))
	}
	if *items[0].Value.Int64 != 1 || *items[1].Value.Int64 != 2 {
		t.Errorf("ChildrenNamed does not preserve order")
	}
}

func TestSetChildrenReparents(t *testing.T) {
	root := NewRecord("root")
	old := NewValue("old", nil)
	root.AddChild(old)
	a, b := NewValue("a", nil), NewValue("b", nil)
	root.SetChildren([]*Node{a, b})
	if len(root.Children) != 2 || a.Parent != root || b.Parent != root {
		t.Errorf("SetChildren did not install the new list")
	}
}

func TestPath(t *testing.T) {
	root := NewRecord("root")
	items := NewCollection("items")
	root.AddChild(items)
	first := NewRecord("item")
	second := NewRecord("item")
	items.AddChild(first).AddChild(second)
	price := NewValue("price", FromFloat(9.5))
	second.AddChild(price)

	tests := []struct {
		n    *Node
		want string
	}{
		{root, "root"},
		{items, "root.items"},
		{first, "root.items.0"},
		{second, "root.items.1"},
		{price, "root.items.1.price"},
	}
	for _, tt := range tests {
		if got := tt.n.Path(); got != tt.want {
			t.Errorf("Path() = %q, want %q", got, tt.want)
		}
	}
}

func TestPathAnonymousRoot(t *testing.T) {
	root := NewRecord("")
	c := NewValue("a", nil)
	root.AddChild(c)
	if got := c.Path(); got != "a" {
		t.Errorf("Path() = %q, want %q", got, "a")
	}
}

func TestText(t *testing.T) {
	el := NewRecord("p")
	el.AddChild(NewText("hello "))
	el.AddChild(NewComment("skip me"))
	el.AddChild(NewData("raw"))
	if got := el.Text(); got != "hello raw" {
		t.Errorf("Text() = %q, want %q", got, "hello raw")
	}
}

func TestVisitOrderAndSkip(t *testing.T) {
	root := NewRecord("root")
	a := NewRecord("a")
	a.AddChild(NewValue("a1", nil))
	root.AddChild(a)
	root.AddChild(NewValue("b", nil))

	var pre []string
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Name)
		}
		return n.Name != "a", nil
	})
	want := []string{"root", "a", "b"}
	if len(pre) != len(want) {
		t.Fatalf("visited %v, want %v", pre, want)
	}
	for i := range want {
		if pre[i] != want[i] {
			t.Fatalf("visited %v, want %v", pre, want)
		}
	}
}

func TestFind(t *testing.T) {
	root := NewRecord("root")
	inner := NewRecord("inner")
	root.AddChild(inner)
	inner.AddChild(NewValue("x", FromInt(7)))

	got := root.Find(func(n *Node) bool { return n.Name == "x" })
	if got == nil || *got.Value.Int64 != 7 {
		t.Errorf("Find(x) = %v", got)
	}
	all := root.FindAll(func(n *Node) bool { return n.Kind == RecordKind })
	if len(all) != 2 {
		t.Errorf("FindAll records = %d, want 2", len(all))
	}
}

func TestCloneDeepSharesNothing(t *testing.T) {
	root := NewRecord("root")
	root.AddAttribute(NewAttribute("id", FromString("1")))
	c := NewValue("v", FromString("x"))
	root.AddChild(c)

	clone := root.CloneDeep()
	if !Equal(root, clone) {
		t.Fatalf("clone not equal to original")
	}
	clone.Children[0].Value = FromString("changed")
	clone.Attributes[0].Value = FromString("2")
	if c.Value.String != "x" || root.Attributes[0].Value.String != "1" {
		t.Errorf("mutating the clone leaked into the original")
	}
	if clone.Parent != nil {
		t.Errorf("clone has a parent")
	}
	if clone.Children[0].Parent != clone {
		t.Errorf("clone children not reparented")
	}
}

func TestCloneShallowDropsChildren(t *testing.T) {
	root := NewRecord("root")
	root.AddChild(NewValue("v", nil))
	clone := root.CloneShallow()
	if len(clone.Children) != 0 {
		t.Errorf("shallow clone kept children")
	}
}

func TestContentChildren(t *testing.T) {
	mixed := NewRecord("p")
	mixed.AddChild(NewText("t"))
	mixed.AddChild(NewRecord("b"))
	if !mixed.HasElementChildren() || !mixed.HasContentChildren() {
		t.Errorf("mixed content not detected")
	}
	structured := NewRecord("r")
	structured.AddChild(NewRecord("c"))
	if structured.HasContentChildren() {
		t.Errorf("structured content misreported as mixed")
	}
}
