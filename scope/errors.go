package scope

import "errors"

// Sentinel errors for the scope package. Callers branch on these via
// errors.Is; messages are not part of the contract.
var (
	// ErrInconsistentCardinality indicates two scopes (or a scope and an
	// incoming variable) disagree on the cardinality of a shared variable.
	ErrInconsistentCardinality = errors.New("scope: inconsistent cardinality for shared variable")

	// ErrOutOfRangeValue indicates Assignment.SetVal received a value
	// outside [0, card).
	ErrOutOfRangeValue = errors.New("scope: value out of range")

	// ErrUnknownVariable indicates an operation referenced a variable id
	// that is not present in the scope.
	ErrUnknownVariable = errors.New("scope: unknown variable")

	// ErrDuplicateVariable indicates a scope was built with a repeated
	// variable id.
	ErrDuplicateVariable = errors.New("scope: duplicate variable id")
)
