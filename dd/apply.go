package dd

import (
	"github.com/pkg/errors"

	"github.com/dechterlab/aomdd/pseudotree"
)

// Apply combines lhs with rhs under op ∈ {OpProd, OpSum, OpMax},
// decomposing the work across pt's pseudo-tree structure (§4.C.4). w is
// an extra scalar multiplier folded in at the top of the recursion;
// callers outside this package should normally pass 1.
//
// Apply memoizes on (op, {lhs}∪rhs) — an unordered multiset of node
// identities, so Apply(a,[b]) and Apply(b,[a]) hash to the same cache
// entry for the commutative operators this function supports. w is not
// part of the cache key: every recursive call this algorithm makes
// internally uses w=1, except the dummy rewrite, which passes the
// caller's w on unchanged, so only a caller-supplied top-level w could
// in principle collide across distinct values, a known simplification
// inherited from the original operation-key shape (see DESIGN.md).
func (s *Store) Apply(lhs *MetaNode, rhs []*MetaNode, op OpKind, pt pseudotree.PseudoTree, w float64) (*MetaNode, error) {
	if op != OpProd && op != OpSum && op != OpMax {
		return nil, errors.Wrap(ErrPreconditionViolation, "Apply: op must be PROD, SUM or MAX")
	}

	params := make([]uint64, 0, 1+len(rhs))
	params = append(params, lhs.id)
	for _, r := range rhs {
		params = append(params, r.id)
	}
	key := opKey(op, params, nil, true)
	if cached, ok := s.opCache[key]; ok {
		return cached, nil
	}

	result, err := s.applyCompute(lhs, rhs, op, pt, w)
	if err != nil {
		return nil, err
	}
	s.opCache[key] = result
	return result, nil
}

func (s *Store) applyCompute(lhs *MetaNode, rhs []*MetaNode, op OpKind, pt pseudotree.PseudoTree, w float64) (*MetaNode, error) {
	// Dummy rewrite: unwrap an anchor node before doing anything else.
	if lhs.IsDummy() && len(rhs) > 0 && rhs[0].VarID() == lhs.VarID() && !rhs[0].IsDummy() {
		grand := lhs.children[0].children
		if len(grand) != 1 {
			return nil, errors.Wrap(ErrInternalInvariant, "Apply: dummy node must wrap exactly one child")
		}
		newRhs := append([]*MetaNode{rhs[0]}, rhs[1:]...)
		return s.Apply(grand[0], newRhs, op, pt, w)
	}

	switch op {
	case OpProd:
		if lhs.IsTerminal() || len(rhs) == 0 {
			return lhs, nil
		}
		for _, r := range rhs {
			if r.IsZero() {
				return s.zero, nil
			}
		}
	case OpSum, OpMax:
		if lhs.IsTerminal() || len(rhs) == 0 {
			return lhs, nil
		}
	}

	sem, err := semanticsFor(op)
	if err != nil {
		return nil, err
	}

	v := lhs.VarID()
	c := lhs.Card()
	newAndChildren := make([]*ANDNode, c)

	for k := 0; k < c; k++ {
		lhsAnd := lhs.children[k]
		weight := w * lhs.Weight() * lhsAnd.Weight()

		newRhs := rhs
		if len(rhs) == 1 && rhs[0].VarID() == v {
			r0 := rhs[0]
			kp := k
			if r0.IsDummy() {
				kp = 0
			}
			rAnd := r0.children[kp]
			weight = sem.combine(weight, rAnd.Weight())
			newRhs = rAnd.children
		}

		groups, err := GetParamSets(pt, lhsAnd.children, newRhs)
		if err != nil {
			return nil, err
		}

		var built []*MetaNode
		zeroFound := false
		for _, g := range groups {
			sub, err := s.Apply(g.Head, g.Followers, op, pt, 1.0)
			if err != nil {
				return nil, err
			}
			if op == OpProd && sub.IsZero() {
				zeroFound = true
				break
			}
			if (op == OpSum || op == OpMax) && !sub.IsTerminal() {
				weight = 1.0
			}
			built = pushAbsorbOne(built, sub)
		}

		if zeroFound {
			newAndChildren[k] = s.internAND(0, []*MetaNode{s.zero})
			continue
		}
		if len(built) == 0 {
			built = []*MetaNode{s.one}
		}
		newAndChildren[k] = s.internAND(weight, built)
	}

	return s.CreateMetaNode(v, c, newAndChildren, 1.0)
}
