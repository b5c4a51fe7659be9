package function

import "errors"

// Sentinel errors for the function package.
var (
	// ErrScopeMismatch indicates an operation's argument scope disagrees
	// with this function's domain in a way the operation cannot resolve.
	ErrScopeMismatch = errors.New("function: scope mismatch")

	// ErrNilPseudoTree indicates a pseudo-tree-dependent operation was
	// called on operands that do not share one pseudo-tree (Multiply
	// returns it whenever the two operands' pseudo-trees differ,
	// including when one of them is nil).
	ErrNilPseudoTree = errors.New("function: nil pseudo-tree")
)
