package dd

import (
	"fmt"
	"strings"
)

// Dump renders root and everything reachable from it as debug text:
// each MetaNode prints "id: varId:card, weight, [AND0 AND1 ...]" where
// each AND prints "(weight [child-meta-ids])". This is a debugging dump
// only (§6.5) — there is no parser and no format stability guarantee.
func (s *Store) Dump(root *MetaNode) string {
	var b strings.Builder
	seen := make(map[uint64]bool)
	var walk func(*MetaNode)
	walk = func(m *MetaNode) {
		if seen[m.id] {
			return
		}
		seen[m.id] = true

		fmt.Fprintf(&b, "%d: %d:%d, %g, [", m.id, m.varID, m.card, m.weight)
		for i, c := range m.children {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "(%g [", c.weight)
			for j, mc := range c.children {
				if j > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "%d", mc.id)
			}
			b.WriteString("])")
		}
		b.WriteString("]\n")

		for _, c := range m.children {
			for _, mc := range c.children {
				walk(mc)
			}
		}
	}
	walk(root)
	return b.String()
}
