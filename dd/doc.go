// Package dd implements the AND/OR multi-valued decision diagram engine:
// a hash-consed node store plus the symbolic algorithms (Apply,
// FullReduce, Marginalize, Maximize, Condition, Normalize) that combine
// and reduce diagrams while preserving canonicity.
//
// A Store (the spec's NodeManager, see the design notes on dropping the
// process-wide singleton) owns two tables: a unique table mapping
// structural node descriptions to their one canonical *MetaNode/*ANDNode,
// and an operation cache memoizing symbolic operations over node
// identities. Every factory method on Store either returns an existing
// canonical node or creates and interns a new one — callers never see
// two distinct node values that compare structurally equal.
//
// Two terminal MetaNodes are singletons for the lifetime of a Store:
// Zero (the empty/false function) and One (the trivial/true function).
// They are returned by Store.Zero and Store.One and can be identified
// with MetaNode.IsZero/IsOne.
//
// Weights are compared with a small absolute tolerance (see
// weightTolerance in store.go) so that floating-point-equivalent
// results intern to the same node; hash and equality both canonicalize
// through the same quantization step.
//
// Errors:
//
//	ErrPreconditionViolation - a factory or algorithm precondition was violated.
//	ErrInternalInvariant     - a canonicity or cache-consistency invariant broke (should be unreachable).
package dd
