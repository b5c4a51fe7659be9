// Package function provides AOMDDFunction, the semantic layer bucket
// elimination is built on: a factor represented by a hash-consed
// diagram root plus the scope and pseudo-tree that give the diagram
// meaning (§4.E).
package function
