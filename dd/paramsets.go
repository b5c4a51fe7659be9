package dd

import "github.com/dechterlab/aomdd/pseudotree"

// ApplyGroup is one independent Apply sub-problem produced by
// GetParamSets: Head's subtree combines with whichever of Followers
// share a pseudo-tree ancestor relationship with it.
type ApplyGroup struct {
	Head      *MetaNode
	Followers []*MetaNode
}

// GetParamSets partitions L ∪ R — each list holding at most one node
// per variable — into independent Apply sub-problems, per §4.C.5. For
// every variable v in one list, it finds the highest ancestor (closest
// to the pseudo-tree root) that appears in the other list; variables
// that share a highest ancestor are grouped together under it, with the
// ancestor's own node as the group's head.
func GetParamSets(pt pseudotree.PseudoTree, L, R []*MetaNode) ([]ApplyGroup, error) {
	if len(L) == 1 && len(R) == 1 && R[0].IsTerminal() {
		return []ApplyGroup{{Head: L[0], Followers: append([]*MetaNode(nil), R...)}}, nil
	}

	lhsMap := make(map[int]*MetaNode, len(L))
	for _, n := range L {
		lhsMap[n.VarID()] = n
	}
	rhsMap := make(map[int]*MetaNode, len(R))
	for _, n := range R {
		rhsMap[n.VarID()] = n
	}

	order := make([]int, 0, len(L)+len(R))
	members := make(map[int][]int)
	addMember := func(head, v int) {
		if _, seen := members[head]; !seen {
			order = append(order, head)
			members[head] = nil
		}
		if v != head {
			members[head] = append(members[head], v)
		}
	}

	for _, n := range L {
		h := highestAncestorIn(pt, n.VarID(), rhsMap)
		addMember(h, n.VarID())
	}
	for _, n := range R {
		h := highestAncestorIn(pt, n.VarID(), lhsMap)
		addMember(h, n.VarID())
	}

	groups := make([]ApplyGroup, 0, len(order))
	for _, h := range order {
		head, ok := lhsMap[h]
		if !ok {
			head, ok = rhsMap[h]
		}
		if !ok {
			return nil, ErrInternalInvariant
		}
		followers := make([]*MetaNode, 0, len(members[h]))
		for _, v := range members[h] {
			if n, ok := lhsMap[v]; ok {
				followers = append(followers, n)
			} else if n, ok := rhsMap[v]; ok {
				followers = append(followers, n)
			}
		}
		groups = append(groups, ApplyGroup{Head: head, Followers: followers})
	}
	return groups, nil
}

// highestAncestorIn walks from v up to the pseudo-tree root, returning
// the highest (closest-to-root) ancestor found as a key in other. Falls
// back to v itself if no ancestor of v appears in other, including v.
func highestAncestorIn(pt pseudotree.PseudoTree, v int, other map[int]*MetaNode) int {
	found := v
	hasFound := false
	cur := v
	for {
		if _, ok := other[cur]; ok {
			found = cur
			hasFound = true
		}
		parent, ok := pt.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}
	if hasFound {
		return found
	}
	return v
}
