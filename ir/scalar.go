package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type ScalarType int

const (
	NullScalar ScalarType = iota
	BoolScalar
	NumberScalar
	StringScalar
)

func (t ScalarType) String() string {
	s, ok := map[ScalarType]string{
		NullScalar:   "Null",
		BoolScalar:   "Bool",
		NumberScalar: "Number",
		StringScalar: "String",
	}[t]
	if ok {
		return s
	}
	return "<unknown scalar type>"
}

// Scalar is the tagged value carried by Value, Field, Attribute, Comment,
// Instruction and Data nodes. The value is placed in a field depending on
// the scalar type. Numbers are placed under Int64 or Float64, with Number
// as a string fallback when neither can represent the input exactly.
type Scalar struct {
	Type    ScalarType
	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

func FromString(v string) *Scalar {
	return &Scalar{Type: StringScalar, String: v}
}

func FromInt(v int64) *Scalar {
	return &Scalar{Type: NumberScalar, Int64: &v}
}

func FromFloat(f float64) *Scalar {
	return &Scalar{Type: NumberScalar, Float64: &f}
}

func FromBool(v bool) *Scalar {
	return &Scalar{Type: BoolScalar, Bool: v}
}

func Null() *Scalar {
	return &Scalar{Type: NullScalar}
}

// FromAny converts a decoded JSON value into a Scalar. It accepts the types
// encoding/json produces for primitives, plus the integer types produced by
// callers constructing values programmatically.
func FromAny(v any) (*Scalar, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		if f := x; f == float64(int64(f)) {
			return FromInt(int64(f)), nil
		}
		return FromFloat(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := x.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return &Scalar{Type: NumberScalar, Number: x.String()}, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a scalar", ErrScalar, v)
	}
}

// ToAny returns the JSON-shaped value of the scalar.
func (s *Scalar) ToAny() any {
	if s == nil {
		return nil
	}
	switch s.Type {
	case NullScalar:
		return nil
	case BoolScalar:
		return s.Bool
	case StringScalar:
		return s.String
	case NumberScalar:
		if s.Int64 != nil {
			return *s.Int64
		}
		if s.Float64 != nil {
			return *s.Float64
		}
		return json.Number(s.Number)
	default:
		return nil
	}
}

// Text renders the scalar as document text, the form used for XML
// character data.
func (s *Scalar) Text() string {
	if s == nil {
		return ""
	}
	switch s.Type {
	case NullScalar:
		return ""
	case BoolScalar:
		return strconv.FormatBool(s.Bool)
	case StringScalar:
		return s.String
	case NumberScalar:
		if s.Int64 != nil {
			return strconv.FormatInt(*s.Int64, 10)
		}
		if s.Float64 != nil {
			return strconv.FormatFloat(*s.Float64, 'g', -1, 64)
		}
		return s.Number
	default:
		return ""
	}
}

func (s *Scalar) Clone() *Scalar {
	if s == nil {
		return nil
	}
	dst := &Scalar{
		Type:   s.Type,
		String: s.String,
		Bool:   s.Bool,
		Number: s.Number,
	}
	if s.Int64 != nil {
		i := *s.Int64
		dst.Int64 = &i
	}
	if s.Float64 != nil {
		f := *s.Float64
		dst.Float64 = &f
	}
	return dst
}

// ScalarEqual compares two scalars for equality. Two nil scalars are equal;
// an absent scalar never equals a present one, including a present null.
func ScalarEqual(a, b *Scalar) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullScalar:
		return true
	case BoolScalar:
		return a.Bool == b.Bool
	case StringScalar:
		return a.String == b.String
	case NumberScalar:
		if (a.Int64 == nil) != (b.Int64 == nil) {
			return false
		}
		if (a.Float64 == nil) != (b.Float64 == nil) {
			return false
		}
		if a.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		if a.Float64 != nil {
			return *a.Float64 == *b.Float64
		}
		return a.Number == b.Number
	default:
		return false
	}
}
