package dd

import (
	"github.com/dechterlab/aomdd/pseudotree"
)

// Marginalize sums elim out of root, per §4.C.6. pt is accepted for
// signature symmetry with Apply; the recursion needs no ancestor lookup
// because the diagram already encodes the pseudo-tree's child structure
// through each ANDNode's children.
func (s *Store) Marginalize(root *MetaNode, elim []int, pt pseudotree.PseudoTree) (*MetaNode, error) {
	return s.eliminate(root, elim, OpMarginalize)
}

// Maximize is Marginalize's max-product counterpart.
func (s *Store) Maximize(root *MetaNode, elim []int, pt pseudotree.PseudoTree) (*MetaNode, error) {
	return s.eliminate(root, elim, OpMaximize)
}

func (s *Store) eliminate(root *MetaNode, elim []int, kind OpKind) (*MetaNode, error) {
	key := opKey(kind, []uint64{root.id}, elim, false)
	if cached, ok := s.opCache[key]; ok {
		return cached, nil
	}

	elimSet := make(map[int]bool, len(elim))
	for _, v := range elim {
		elimSet[v] = true
	}

	result, err := s.margRec(root, elimSet, kind)
	if err != nil {
		return nil, err
	}
	s.opCache[key] = result
	return result, nil
}

func (s *Store) margRec(m *MetaNode, elim map[int]bool, kind OpKind) (*MetaNode, error) {
	if m.IsTerminal() {
		return m, nil
	}

	newAndChildren := make([]*ANDNode, m.card)
	for k := 0; k < m.card; k++ {
		andC := m.children[k]
		w := andC.weight
		var built []*MetaNode
		zeroFound := false
		for _, mc := range andC.children {
			sub, err := s.margRec(mc, elim, kind)
			if err != nil {
				return nil, err
			}
			if sub.IsZero() {
				zeroFound = true
				break
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
		newAndChildren[k] = s.internAND(w, built)
	}

	if !elim[m.varID] {
		return s.CreateMetaNode(m.varID, m.card, newAndChildren, m.weight)
	}

	var acc float64
	if kind == OpMaximize {
		acc = negInf
		for _, andC := range newAndChildren {
			acc = maxFloat(acc, andC.weight)
		}
	} else {
		for _, andC := range newAndChildren {
			acc += andC.weight
		}
	}

	var collapsed *ANDNode
	if acc != 0 {
		collapsed = s.internAND(acc, []*MetaNode{s.one})
	} else {
		collapsed = s.internAND(0, []*MetaNode{s.zero})
	}
	repeated := make([]*ANDNode, m.card)
	for i := range repeated {
		repeated[i] = collapsed
	}
	return s.CreateMetaNode(m.varID, m.card, repeated, m.weight)
}
