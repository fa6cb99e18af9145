// Package xmlcodec converts between XML documents and the semantic node
// tree.
//
// Source parses markup into a tree of Record nodes. Three content shapes
// are distinguished per element: text-only content collapses into the
// record's own value, structured content recurses into child records, and
// mixed content materializes every text run, CDATA section, comment and
// processing instruction as an explicit child node interleaved in document
// order, so document order is exactly reconstructible.
//
// Output is the inverse mapping, ending in a pretty-printer that classifies
// each element's content as empty, text-only, structured or mixed: empty
// elements self-close, structured content is indented one level per depth,
// and text or mixed content is emitted inline without reflowing whitespace.
//
// Namespace prefixes follow a three-way policy (preserve, label, strip)
// applied uniformly to element and attribute names in both directions.
// Namespace declarations are consumed into a prefix map on the way in and
// regenerated on the way out; they never become nodes.
package xmlcodec
