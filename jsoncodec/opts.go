package jsoncodec

import "fmt"

// FieldPolicy decides whether object-property primitives become Field or
// Value nodes. The distinction is policy, not structure; the output side
// treats both as scalar carriers.
type FieldPolicy int

const (
	// FieldAuto promotes primitives nested below the first level to
	// Field, so they are distinguishable from top-level scalars on
	// output. Depth is measured from the JSON root.
	FieldAuto FieldPolicy = iota
	// FieldAlways forces all object-property primitives to Field.
	FieldAlways
	// FieldNever keeps all primitives as Value.
	FieldNever
)

func ParseFieldPolicy(v string) (FieldPolicy, error) {
	p, ok := map[string]FieldPolicy{
		"auto":  FieldAuto,
		"field": FieldAlways,
		"value": FieldNever,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unrecognized field policy %q", v)
	}
	return p, nil
}

// NullPolicy decides the representation of JSON nulls.
type NullPolicy int

const (
	// NullAsValue represents null as a Value node holding an explicit
	// null scalar.
	NullAsValue NullPolicy = iota
	// NullAsField represents null as a Field node with no value.
	NullAsField
	// NullRemove marks nulls for removal; a second filtering traversal
	// deletes them along with any subtree left empty by the deletion.
	NullRemove
)

func ParseNullPolicy(v string) (NullPolicy, error) {
	p, ok := map[string]NullPolicy{
		"value":  NullAsValue,
		"field":  NullAsField,
		"remove": NullRemove,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unrecognized null policy %q", v)
	}
	return p, nil
}

// SourceOptions configures JSON value to node conversion.
type SourceOptions struct {
	// ItemNames maps a parent property name to the name its array items
	// receive. Arrays under properties not listed use DefaultItemName.
	ItemNames       map[string]string
	DefaultItemName string

	FieldPolicy FieldPolicy
	NullPolicy  NullPolicy
}

func DefaultSourceOptions() *SourceOptions {
	return &SourceOptions{
		DefaultItemName: "item",
	}
}

func (o *SourceOptions) withDefaults() *SourceOptions {
	if o == nil {
		return DefaultSourceOptions()
	}
	if o.DefaultItemName == "" {
		o.DefaultItemName = "item"
	}
	return o
}

func (o *SourceOptions) itemName(parentProp string) string {
	if n, ok := o.ItemNames[parentProp]; ok {
		return n
	}
	return o.DefaultItemName
}

// OutputOptions configures node to JSON value conversion.
type OutputOptions struct {
	// HiFi selects the high-fidelity encoding, the only mode guaranteed
	// to round-trip losslessly.
	HiFi   bool
	Pretty bool
	Indent string
}

func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{Indent: "  "}
}

func (o *OutputOptions) withDefaults() *OutputOptions {
	if o == nil {
		return DefaultOutputOptions()
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	return o
}
