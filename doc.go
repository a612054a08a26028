// Package taxon classifies and describes the fixed set of objects pre-bound
// in a runtime's global namespace. It enumerates the namespace, sorts every
// object into one of five semantic categories using runtime type predicates,
// and extracts a normalized description per category: type identity, origin
// module, callability, supertype chain, method partition, documentation
// excerpt, and builtin-function-to-protocol-method associations.
//
// # Pipeline
//
// Inspection is a strictly one-directional pipeline:
//
//  1. Enumerate: the namespace yields its deduplicated, lexicographically
//     sorted names and resolves each to its bound object. Stale names are
//     dropped, never fatal.
//
//  2. Classify: each object is assigned exactly one [Category] by a fixed
//     five-rule precedence chain (see [Classify]). The result is an [Index]
//     mapping each category to its ordered member names.
//
//  3. Describe: per-object [Description] records are built on demand and
//     cached. A single malformed object degrades to a stub description; the
//     batch always completes.
//
// # Usage
//
// Create an Engine over a namespace, inspect, and query:
//
//	e := taxon.New(universe.Builtin())
//	idx := e.Inspect()
//
//	sum := idx.Summary()
//	names, err := idx.Names("Function")
//	desc, err := e.Describe(idx, "len")
//	all := e.DescribeAll(idx)
//
// The shipped namespace in internal/universe models Go's predeclared
// universe scope. Custom namespaces are built with [NewNamespace] and
// populated with hand-authored [Entity] records or live values adapted
// through [FromValue].
//
// # Determinism
//
// The pipeline is read-only and idempotent: nothing is written back to the
// namespace, no state survives between Inspect calls except the description
// cache, and repeated runs over an unchanged namespace produce identical
// summaries and name lists.
package taxon
