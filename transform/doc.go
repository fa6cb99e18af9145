// Package transform applies ordered, caller-supplied transformers over a
// node tree between a codec's source and output directions.
//
// # Stages
//
// Each node passes through four stages, depth-first:
//
//  1. node stage: each node transformer may replace or remove the node;
//     removal short-circuits the later stages and excludes the subtree
//     from output
//  2. value stage: if the node carries a scalar, value transformers run
//     in registration order and may replace or delete it
//  3. attribute stage: every attribute value passes the value stage, then
//     attribute transformers may rename or remove the attribute
//  4. children stage: the full ordered child list passes through children
//     transformers as a unit
//
// then the pipeline recurses into each surviving child with a derived
// context. Transformers of the same stage run strictly in registration
// order; later transformers see the output of earlier ones.
//
// # Scoping
//
// A transformer may be scoped to dot-notation path patterns (see
// ir/npath): "root.items.*.price" fires on every item's price and nowhere
// deeper. Attribute contexts carry an is-attribute flag and the attribute
// name, so "node.attr" and "node.child" are distinguishable.
//
// # Failure
//
// A transformer error aborts the whole conversion unless a recovery hook
// is registered for that stage; the hook's return value substitutes for
// the failed step and a warning is recorded. Hooks are best-effort: an
// error inside a hook is logged and the unmodified value kept.
//
// # Named transformers
//
// Register/Lookup maintain an explicit name to transformer table built at
// startup; a few transformers ("bools", "booltext", "numbers", "trim")
// are built in. ExprValue and ExprNodeFilter compile expr-lang
// expressions into transformers for configuration-driven use.
package transform
