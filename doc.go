// Package xnode converts between XML and JSON by way of a shared node
// tree.  Both formats source into the same [ir.Node] model, a transform
// pipeline rewrites the tree between the codec boundaries, and either
// codec can render the result.
//
// The usual entry points are [XMLToJSON] and [JSONToXML]; the Source*
// and Output* functions expose the individual conversion halves for
// callers that want to work with the tree directly.
package xnode
