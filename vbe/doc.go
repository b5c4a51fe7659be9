// Package vbe is the dense counterpart to the diagram-based engine: a
// plain row-major TableFunction plus a dense bucket-elimination
// compiler, used both as the `-vbe` CLI execution path and as the
// oracle the diagram engine's `-verify` cross-check compares against
// (§1, §6.1, §8 property 3).
package vbe
