// Package dot renders a pseudo-tree as Graphviz DOT source, for the
// CLI's `-t` flag (§6.1).
package dot
