// Package bucket implements variable elimination over AOMDDFunctions
// (§4.F): factors are sorted into buckets keyed by the earliest variable
// of their scope eliminated under the ordering, then each bucket is
// combined and its variable eliminated, passing a message up the
// pseudo-tree to the parent bucket.
package bucket
