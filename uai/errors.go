package uai

import "errors"

// Sentinel errors for the uai package. These are ParseError/IOFailure
// boundary errors per §7: the CLI wraps and reports them, the core
// never sees them.
var (
	// ErrIO indicates a factor, ordering, or evidence file could not be
	// read.
	ErrIO = errors.New("uai: I/O failure reading input file")

	// ErrParse indicates a file's contents did not match the expected
	// grammar.
	ErrParse = errors.New("uai: malformed input file")
)
