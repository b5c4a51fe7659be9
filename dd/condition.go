package dd

import "github.com/dechterlab/aomdd/scope"

// Condition substitutes a's assigned values into root, non-destructively
// (root itself is left interned and unaffected), per §4.C.7. Variables
// a does not assign are left alone; the conditioned result is interned.
func (s *Store) Condition(root *MetaNode, a *scope.Assignment) (*MetaNode, error) {
	return s.condRec(root, a)
}

func (s *Store) condRec(m *MetaNode, a *scope.Assignment) (*MetaNode, error) {
	if m.IsTerminal() {
		return m, nil
	}

	v, err := a.GetVal(m.varID)
	assigned := err == nil && v != scope.ErrorVal

	if assigned {
		andC := m.children[v]
		children := make([]*MetaNode, len(andC.children))
		for i, mc := range andC.children {
			cm, err := s.condRec(mc, a)
			if err != nil {
				return nil, err
			}
			children[i] = cm
		}
		collapsed := s.internAND(andC.weight, children)
		repeated := make([]*ANDNode, m.card)
		for i := range repeated {
			repeated[i] = collapsed
		}
		return s.CreateMetaNode(m.varID, m.card, repeated, m.weight)
	}

	newAndChildren := make([]*ANDNode, m.card)
	for k := 0; k < m.card; k++ {
		andC := m.children[k]
		children := make([]*MetaNode, len(andC.children))
		for i, mc := range andC.children {
			cm, err := s.condRec(mc, a)
			if err != nil {
				return nil, err
			}
			children[i] = cm
		}
		newAndChildren[k] = s.internAND(andC.weight, children)
	}
	return s.CreateMetaNode(m.varID, m.card, newAndChildren, m.weight)
}
