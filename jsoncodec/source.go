package jsoncodec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/signadot/xnode-format/go-xnode/debug"
	"github.com/signadot/xnode-format/go-xnode/ir"
)

// Source converts a decoded JSON value into a node tree. The tree root is
// an anonymous Record whose children are the root object's properties.
// Circular references in the value are detected up front and fail the
// conversion before any tree construction.
func Source(v any, o *SourceOptions) (*ir.Node, error) {
	o = o.withDefaults()
	if err := checkCycles(v); err != nil {
		return nil, err
	}
	s := &sourcer{opts: o, removed: map[*ir.Node]bool{}}
	root := ir.NewRecord("")
	switch x := v.(type) {
	case map[string]any:
		if err := s.object(root, x, 1); err != nil {
			return nil, err
		}
	case []any:
		coll, err := s.array("", x, 0)
		if err != nil {
			return nil, err
		}
		root.AddChild(coll)
	default:
		sc, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidate, err)
		}
		root.AddChild(ir.NewValue(ir.TextName, sc))
	}
	if s.opts.NullPolicy == NullRemove && len(s.removed) > 0 {
		s.filter(root)
	}
	if debug.Source() {
		debug.Logf("json source: root with %d children\n", len(root.Children))
	}
	return root, nil
}

// SourceBytes decodes raw JSON and converts it.
func SourceBytes(d []byte, o *SourceOptions) (*ir.Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidate, err)
	}
	return Source(v, o)
}

type sourcer struct {
	opts    *SourceOptions
	removed map[*ir.Node]bool
}

func (s *sourcer) object(rec *ir.Node, m map[string]any, depth int) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		switch {
		case strings.HasPrefix(k, attrMarker):
			sc, err := ir.FromAny(v)
			if err != nil {
				return fmt.Errorf("%w: attribute %q: %v", ErrValidate, k, err)
			}
			rec.AddAttribute(ir.NewAttribute(strings.TrimPrefix(k, attrMarker), sc))
		case k == textKey:
			sc, err := ir.FromAny(v)
			if err != nil {
				return fmt.Errorf("%w: %q: %v", ErrValidate, k, err)
			}
			rec.Value = sc
		default:
			c, err := s.prop(k, v, depth)
			if err != nil {
				return err
			}
			rec.AddChild(c)
		}
	}
	return nil
}

func (s *sourcer) prop(name string, v any, depth int) (*ir.Node, error) {
	switch x := v.(type) {
	case map[string]any:
		rec := ir.NewRecord(name)
		if err := s.object(rec, x, depth+1); err != nil {
			return nil, err
		}
		return rec, nil
	case []any:
		return s.array(name, x, depth)
	default:
		return s.leaf(name, v, depth)
	}
}

func (s *sourcer) array(prop string, items []any, depth int) (*ir.Node, error) {
	coll := ir.NewCollection(prop)
	base := s.opts.itemName(prop)
	hetero := heterogeneous(items)
	for i, item := range items {
		name := base
		if hetero {
			// index suffix avoids name collisions across item types
			name = base + strconv.Itoa(i)
		}
		var (
			c   *ir.Node
			err error
		)
		switch x := item.(type) {
		case map[string]any:
			c = ir.NewRecord(name)
			err = s.object(c, x, depth+2)
		case []any:
			c, err = s.array(name, x, depth+1)
		default:
			c, err = s.leaf(name, item, depth+1)
		}
		if err != nil {
			return nil, err
		}
		coll.AddChild(c)
	}
	return coll, nil
}

func (s *sourcer) leaf(name string, v any, depth int) (*ir.Node, error) {
	if v == nil {
		switch s.opts.NullPolicy {
		case NullAsField:
			return ir.NewField(name, nil), nil
		case NullRemove:
			n := ir.NewValue(name, ir.Null())
			s.removed[n] = true
			return n, nil
		default:
			return ir.NewValue(name, ir.Null()), nil
		}
	}
	sc, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: property %q: %v", ErrValidate, name, err)
	}
	switch s.opts.FieldPolicy {
	case FieldAlways:
		return ir.NewField(name, sc), nil
	case FieldNever:
		return ir.NewValue(name, sc), nil
	default:
		if depth > 1 {
			return ir.NewField(name, sc), nil
		}
		return ir.NewValue(name, sc), nil
	}
}

// filter is the second traversal of the null-removal policy: it drops
// marked nodes and any subtree that became empty as a result. Returns
// whether n survives.
func (s *sourcer) filter(n *ir.Node) bool {
	if s.removed[n] {
		return false
	}
	removedAny := false
	kept := n.Children[:0]
	for _, c := range n.Children {
		if s.filter(c) {
			kept = append(kept, c)
		} else {
			removedAny = true
		}
	}
	n.Children = kept
	if removedAny && len(n.Children) == 0 &&
		len(n.Attributes) == 0 && n.Value == nil && n.Parent != nil {
		return false
	}
	return true
}

func heterogeneous(items []any) bool {
	if len(items) < 2 {
		return false
	}
	first := jsonClass(items[0])
	for _, item := range items[1:] {
		if jsonClass(item) != first {
			return true
		}
	}
	return false
}

func jsonClass(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return "number"
	}
}

// checkCycles walks the value before conversion begins; a cycle is a hard
// validation failure, not a degraded output.
func checkCycles(v any) error {
	return walkCycles(reflect.ValueOf(v), map[uintptr]bool{})
}

func walkCycles(val reflect.Value, seen map[uintptr]bool) error {
	switch val.Kind() {
	case reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return walkCycles(val.Elem(), seen)
	case reflect.Ptr:
		if val.IsNil() {
			return nil
		}
		ptr := val.Pointer()
		if seen[ptr] {
			return ErrCycle
		}
		seen[ptr] = true
		defer delete(seen, ptr)
		return walkCycles(val.Elem(), seen)
	case reflect.Map:
		if val.IsNil() {
			return nil
		}
		ptr := val.Pointer()
		if seen[ptr] {
			return ErrCycle
		}
		seen[ptr] = true
		defer delete(seen, ptr)
		iter := val.MapRange()
		for iter.Next() {
			if err := walkCycles(iter.Value(), seen); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if val.Len() == 0 {
			return nil
		}
		ptr := val.Pointer()
		if seen[ptr] {
			return ErrCycle
		}
		seen[ptr] = true
		defer delete(seen, ptr)
		for i := 0; i < val.Len(); i++ {
			if err := walkCycles(val.Index(i), seen); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
