package ir

import (
	"testing"
)

func TestEqual(t *testing.T) {
	mk := func() *Node {
		root := NewRecord("root")
		root.AddAttribute(NewAttribute("a", FromString("1")))
		root.AddAttribute(NewAttribute("b", FromString("2")))
		root.AddChild(NewValue("x", FromInt(1)))
		root.AddChild(NewValue("y", FromBool(true)))
		return root
	}

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"identical", mk(), mk(), true},
		{"both nil", nil, nil, true},
		{"one nil", mk(), nil, false},
		{"kind differs", NewRecord("x"), NewCollection("x"), false},
		{"name differs", NewRecord("x"), NewRecord("y"), false},
		{"value differs",
			NewValue("x", FromInt(1)), NewValue("x", FromInt(2)), false},
		{"absent vs null value",
			NewField("x", nil), NewField("x", Null()), false},
		{"ns differs",
			&Node{Name: "x", NS: "urn:a"}, &Node{Name: "x", NS: "urn:b"}, false},
		{"label differs",
			&Node{Name: "x", Label: "p"}, &Node{Name: "x", Label: "q"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric")
			}
		})
	}
}

func TestEqualChildOrderSignificant(t *testing.T) {
	a := NewRecord("r")
	a.AddChild(NewValue("x", nil))
	a.AddChild(NewValue("y", nil))
	b := NewRecord("r")
	b.AddChild(NewValue("y", nil))
	b.AddChild(NewValue("x", nil))
	if Equal(a, b) {
		t.Errorf("child order should be significant")
	}
}

func TestEqualAttrOrderInsignificant(t *testing.T) {
	a := NewRecord("r")
	a.AddAttribute(NewAttribute("p", FromString("1")))
	a.AddAttribute(NewAttribute("q", FromString("2")))
	b := NewRecord("r")
	b.AddAttribute(NewAttribute("q", FromString("2")))
	b.AddAttribute(NewAttribute("p", FromString("1")))
	if !Equal(a, b) {
		t.Errorf("attribute order should not be significant")
	}
}

func TestEqualDuplicateAttrNames(t *testing.T) {
	// duplicate names degrade to ordered comparison
	a := NewRecord("r")
	a.AddAttribute(NewAttribute("p", FromString("1")))
	a.AddAttribute(NewAttribute("p", FromString("2")))
	b := NewRecord("r")
	b.AddAttribute(NewAttribute("p", FromString("2")))
	b.AddAttribute(NewAttribute("p", FromString("1")))
	if Equal(a, b) {
		t.Errorf("duplicate attribute names must compare ordered")
	}
}
