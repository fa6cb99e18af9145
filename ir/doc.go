// Package ir provides the semantic intermediate representation shared by
// the XML and JSON codecs.
//
// # Overview
//
// Both codecs target the same tree of ir.Node values. The XML codec reads a
// DOM into the tree and writes the tree back out as markup; the JSON codec
// does the same with decoded JSON values. The transform pipeline mutates
// trees in place between source and output.
//
// The IR works as a recursive tagged union: Kind selects the variant and
// determines which fields carry meaning.
//
// # Node Kinds
//
//   - RecordKind: keyed structure (XML element, JSON object)
//   - CollectionKind: ordered repeated structure (JSON array)
//   - FieldKind, ValueKind: scalar-carrying nodes; the distinction between
//     them is a codec policy choice, not a structural one, and both may
//     carry nested children
//   - AttributeKind: XML attribute entries, owned by Attributes
//   - CommentKind, InstructionKind, DataKind: comments, processing
//     instructions and CDATA sections preserved from mixed content
//
// # Creating Nodes
//
// Use constructor functions:
//
//	rec := ir.NewRecord("root")
//	rec.AddChild(ir.NewValue("flag", ir.FromBool(true)))
//	rec.AddAttribute(ir.NewAttribute("id", ir.FromString("1")))
//
// AddChild and AddAttribute take ownership and set the back-reference. A
// node's Children and Attributes are exclusively owned; no node may appear
// under two parents.
//
// # Paths
//
// Path() returns the dot-joined chain of ancestor names from root to the
// node ("root.items.0.price"). Children of Collection nodes contribute
// their index. Paths are recomputed from Parent on demand.
//
// # Cloning
//
// The pipeline mutates trees in place, so callers branch with clones:
// CloneShallow copies a node with its attributes but not its children,
// CloneDeep copies the whole subtree with back-references rebuilt.
//
// # Thread Safety
//
// Node trees are not thread-safe. A tree belongs to one conversion call;
// use CloneDeep to give another goroutine its own copy.
package ir
