// Command aomdd compiles a UAI factor network into an AND/OR
// multi-valued decision diagram and answers P(e) queries against it
// (§6.1).
package main

import (
	"fmt"
	"os"
)

// longBoolFlags lists the §6.1 flags spelled with a single dash despite
// being multi-letter (-vbe, -log, -verify). pflag's GNU-style parser
// reads a lone-dash multi-letter argument as stacked single-char
// shorthands, so these are rewritten to their double-dash long form
// before cobra ever sees them.
var longBoolFlags = map[string]string{
	"-vbe":    "--vbe",
	"-log":    "--log",
	"-verify": "--verify",
}

func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if long, ok := longBoolFlags[a]; ok {
			out[i] = long
			continue
		}
		out[i] = a
	}
	return out
}

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aomdd:", err)
		os.Exit(1)
	}
}
