package vbe

import "errors"

// Sentinel errors for the vbe package.
var (
	// ErrTableSizeMismatch indicates a TableFunction's values slice does
	// not match its scope's cardinality.
	ErrTableSizeMismatch = errors.New("vbe: table size does not match scope cardinality")

	// ErrUnassignedVariable indicates GetVal was called with an
	// assignment missing a value the table needs, or Marginalize/Maximize
	// was asked to eliminate a variable outside the table's domain.
	ErrUnassignedVariable = errors.New("vbe: assignment leaves a required variable unset")
)
