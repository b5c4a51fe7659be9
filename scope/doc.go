// Package scope defines Scope and Assignment, the ordered-variable
// primitives every diagram and factor in this module is indexed by.
//
// A Scope is an ordered list of (variable id, cardinality) pairs with
// unique variable ids. The order is significant: it fixes how a flat
// tuple of values linearizes into a single integer index (the first
// variable in the ordering contributes the least-significant digit).
//
// An Assignment pairs a Scope with one chosen value per variable (or the
// sentinel ErrorVal for "unset") and knows how to enumerate every tuple
// in ordering-minor order.
//
// Errors:
//
//	ErrInconsistentCardinality - two operands disagree on a shared variable's cardinality.
//	ErrOutOfRangeValue         - SetVal given a value outside [0, card).
//	ErrUnknownVariable         - operation referenced a variable absent from the scope.
package scope
