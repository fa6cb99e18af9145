package xmlcodec

import "fmt"

// NamespacePolicy controls how namespace prefixes on element and attribute
// names are carried into and out of the node tree.
type NamespacePolicy int

const (
	// NamespacePreserve keeps the prefixed name as the node name.
	NamespacePreserve NamespacePolicy = iota
	// NamespaceLabel strips the prefix from the name and stores it in the
	// node's Label field.
	NamespaceLabel
	// NamespaceStrip discards the prefix entirely.
	NamespaceStrip
)

func (p NamespacePolicy) String() string {
	s, ok := map[NamespacePolicy]string{
		NamespacePreserve: "preserve",
		NamespaceLabel:    "label",
		NamespaceStrip:    "strip",
	}[p]
	if ok {
		return s
	}
	return "<unknown namespace policy>"
}

func ParseNamespacePolicy(v string) (NamespacePolicy, error) {
	p, ok := map[string]NamespacePolicy{
		"preserve": NamespacePreserve,
		"label":    NamespaceLabel,
		"strip":    NamespaceStrip,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unrecognized namespace policy %q", v)
	}
	return p, nil
}

// AttributeMode controls the representation of XML attributes in the tree.
type AttributeMode int

const (
	// AttributesAsAttributes stores attributes as Attribute-kind entries
	// in the owning node's attribute list.
	AttributesAsAttributes AttributeMode = iota
	// AttributesAsFields stores attributes as synthetic Field children
	// named with the attribute marker prefix.
	AttributesAsFields
)

// AttrMarker prefixes synthetic attribute names in both codecs: the XML
// codec emits and recognizes "@name" Fields, the JSON codec emits and
// recognizes "@name" object keys.
const AttrMarker = "@"

// TextKey is the object key the JSON codec uses for an element's own text
// when attributes force an object representation.
const TextKey = "#text"

// SourceOptions configures DOM to node conversion.
type SourceOptions struct {
	PreserveNamespaces   bool
	NamespacePolicy      NamespacePolicy
	PreserveAttributes   bool
	PreserveTextNodes    bool
	PreserveCDATA        bool
	PreserveComments     bool
	PreserveInstructions bool
	PreserveWhitespace   bool
	AttributeMode        AttributeMode
}

// DefaultSourceOptions preserves everything except insignificant
// whitespace.
func DefaultSourceOptions() *SourceOptions {
	return &SourceOptions{
		PreserveNamespaces:   true,
		NamespacePolicy:      NamespacePreserve,
		PreserveAttributes:   true,
		PreserveTextNodes:    true,
		PreserveCDATA:        true,
		PreserveComments:     true,
		PreserveInstructions: true,
		PreserveWhitespace:   false,
		AttributeMode:        AttributesAsAttributes,
	}
}

func (o *SourceOptions) withDefaults() *SourceOptions {
	if o == nil {
		return DefaultSourceOptions()
	}
	return o
}

// OutputOptions configures node to DOM/string conversion.
type OutputOptions struct {
	NamespacePolicy NamespacePolicy
	Pretty          bool
	Indent          string
	Declaration     bool
	Encoding        string
	Colors          *Colors
}

func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{
		NamespacePolicy: NamespacePreserve,
		Indent:          "  ",
	}
}

func (o *OutputOptions) withDefaults() *OutputOptions {
	if o == nil {
		return DefaultOutputOptions()
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	if o.Declaration && o.Encoding == "" {
		o.Encoding = "utf-8"
	}
	return o
}
