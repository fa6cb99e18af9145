package ir

import "fmt"

type Kind int

const (
	RecordKind Kind = iota
	CollectionKind
	FieldKind
	ValueKind
	AttributeKind
	CommentKind
	InstructionKind
	DataKind
)

// Synthetic node names used for non-element content.
const (
	TextName    = "#text"
	CommentName = "#comment"
	DataName    = "#cdata"
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		RecordKind:      "Record",
		CollectionKind:  "Collection",
		FieldKind:       "Field",
		ValueKind:       "Value",
		AttributeKind:   "Attribute",
		CommentKind:     "Comment",
		InstructionKind: "Instruction",
		DataKind:        "Data",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Record":      RecordKind,
		"Collection":  CollectionKind,
		"Field":       FieldKind,
		"Value":       ValueKind,
		"Attribute":   AttributeKind,
		"Comment":     CommentKind,
		"Instruction": InstructionKind,
		"Data":        DataKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		RecordKind,
		CollectionKind,
		FieldKind,
		ValueKind,
		AttributeKind,
		CommentKind,
		InstructionKind,
		DataKind,
	}
}

// IsContainer reports whether nodes of this kind primarily hold children.
// Field and Value may carry children too, that is a policy choice and not
// a structural one.
func (k Kind) IsContainer() bool {
	switch k {
	case RecordKind, CollectionKind:
		return true
	default:
		return false
	}
}

// IsContent reports whether nodes of this kind represent non-element
// document content (text runs, CDATA, comments, processing instructions).
func (k Kind) IsContent() bool {
	switch k {
	case ValueKind, DataKind, CommentKind, InstructionKind:
		return true
	default:
		return false
	}
}
