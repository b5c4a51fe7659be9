package dd

import "errors"

// Sentinel errors for the dd package. Callers branch on these via
// errors.Is; boundary code may wrap them with github.com/pkg/errors for
// additional context.
var (
	// ErrPreconditionViolation indicates a factory or algorithm was
	// called with inputs that violate its stated precondition (e.g.
	// CreateMetaNode given a children slice whose length doesn't match
	// card, or CreateMetaNodeFromTable given a value count that doesn't
	// match the scope's cardinality).
	ErrPreconditionViolation = errors.New("dd: precondition violation")

	// ErrInternalInvariant indicates a canonicity or operation-cache
	// consistency invariant was broken. This should be unreachable; its
	// presence signals a bug in the engine itself, not caller misuse.
	ErrInternalInvariant = errors.New("dd: internal invariant violated")
)
