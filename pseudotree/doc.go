// Package pseudotree provides the rooted-tree context the dd package's
// Apply and Marginalize algorithms decompose work over (§4.D).
//
// A pseudo-tree is a rooted tree over a problem's variables such that,
// for every factor, all of the factor's variables lie on a single
// root-to-leaf path. Upstream construction (triangulation, min-fill
// orderings, induced-graph width minimization) is out of this module's
// scope per spec §1; Tree implements the standard construction driven
// directly by an elimination ordering, which is sufficient to drive
// compilation and is what CompileBucketTree needs.
//
// When the variables don't share a single connected pseudo-tree (a
// forest), BuildFromOrdering anchors the roots under one synthetic
// dummy variable so every caller can still talk about "the" root.
package pseudotree
