// Package jsoncodec converts between JSON values and the semantic node
// tree.
//
// Source turns decoded JSON into nodes: arrays become Collections whose
// items are named from a per-property override map or a global default,
// with index suffixes only when an array mixes item types; objects become
// Records with one child per property; primitives become Value or Field
// nodes according to the field policy. Nulls follow their own policy,
// including a removal mode whose second traversal deletes any subtree left
// empty. Keys with the "@" marker reverse into attributes and "#text" into
// the record's own value, so standard output and source are inverses.
//
// Output has two fidelity modes. Standard mode renders Records as plain
// objects, grouping same-named children into an array only when more than
// one exists; it is lossy with respect to node kind, namespace and the
// ordering of same-named siblings beyond grouping. High-fidelity mode
// renders every node as an object of #type/#name/#value/#attributes/
// #children markers and is the only encoding guaranteed to round-trip
// losslessly; SourceHiFi reverses exactly that shape.
package jsoncodec
