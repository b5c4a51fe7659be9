package dd

// Normalize pushes all of root's weight multiplicatively toward the
// root, per §4.C.8. After normalization, every non-terminal node's
// AND-child weights sum to 1 and the product of weights along any
// accepting path equals the function's original value there.
func (s *Store) Normalize(root *MetaNode) (*MetaNode, error) {
	if root.IsTerminal() {
		return root, nil
	}
	normalized, extracted, err := s.normRec(root)
	if err != nil {
		return nil, err
	}
	return s.CreateMetaNode(normalized.varID, normalized.card, normalized.children, extracted)
}

// normRec normalizes m and returns the normalized node (a non-terminal
// carries weight 1 on itself — everything extracted gets returned
// separately so the caller can fold it into the incident AND weight;
// a terminal is returned unchanged, with its own weight as the
// extracted weight) plus the extracted weight.
func (s *Store) normRec(m *MetaNode) (result *MetaNode, extracted float64, err error) {
	if m.IsTerminal() {
		return m, m.weight, nil
	}

	newAndChildren := make([]*ANDNode, m.card)
	for k := 0; k < m.card; k++ {
		andC := m.children[k]
		children := make([]*MetaNode, len(andC.children))
		w := andC.weight
		for i, mc := range andC.children {
			normalizedChild, childExtracted, err := s.normRec(mc)
			if err != nil {
				return nil, 0, err
			}
			children[i] = normalizedChild
			w *= childExtracted
		}
		newAndChildren[k] = s.internAND(w, children)
	}

	var z float64
	for _, andC := range newAndChildren {
		z += andC.weight
	}

	finalAnd := newAndChildren
	if z != 0 {
		finalAnd = make([]*ANDNode, m.card)
		for k, andC := range newAndChildren {
			finalAnd[k] = s.internAND(andC.weight/z, andC.children)
		}
	}

	node, err := s.CreateMetaNode(m.varID, m.card, finalAnd, 1.0)
	if err != nil {
		return nil, 0, err
	}
	return node, m.weight * z, nil
}
