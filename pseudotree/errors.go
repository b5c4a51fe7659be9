package pseudotree

import "errors"

// Sentinel errors for the pseudotree package.
var (
	// ErrEmptyOrdering indicates BuildFromOrdering was given no variables.
	ErrEmptyOrdering = errors.New("pseudotree: empty ordering")

	// ErrUnknownVariable indicates a factor scope referenced a variable
	// absent from the elimination ordering.
	ErrUnknownVariable = errors.New("pseudotree: unknown variable")

	// ErrDummyCollision indicates the chosen dummy root id collides with
	// a real problem variable.
	ErrDummyCollision = errors.New("pseudotree: dummy root id collides with a problem variable")
)
