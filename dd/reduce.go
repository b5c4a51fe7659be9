package dd

// pushAbsorbOne appends r to built, absorbing One terminals per the
// rule shared by FullReduce, Apply and Marginalize: a One is dropped if
// the list already has something in it, and a previously pushed One is
// popped the moment a real successor arrives. The net effect is that a
// list collapsing entirely to One keeps exactly one One, and any One
// mixed with real content disappears.
func pushAbsorbOne(built []*MetaNode, r *MetaNode) []*MetaNode {
	if r.IsOne() {
		if len(built) > 0 {
			return built
		}
		return append(built, r)
	}
	if len(built) > 0 && built[len(built)-1].IsOne() {
		built = built[:len(built)-1]
	}
	return append(built, r)
}

// allSameAND reports whether every element of list is the same
// (pointer-identical, hence structurally identical) ANDNode.
func allSameAND(list []*ANDNode) bool {
	for i := 1; i < len(list); i++ {
		if list[i] != list[0] {
			return false
		}
	}
	return true
}

// FullReduce eliminates redundant meta-nodes from root and re-interns
// what remains, per §4.C.3. It is idempotent:
// FullReduce(FullReduce(n)) == FullReduce(n) (same identity), and is
// memoized in the operation cache.
func (s *Store) FullReduce(root *MetaNode) (*MetaNode, error) {
	key := opKey(OpReduce, []uint64{root.id}, nil, false)
	if cached, ok := s.opCache[key]; ok {
		return cached, nil
	}

	list, mult, err := s.reduceRec(root)
	if err != nil {
		return nil, err
	}

	var result *MetaNode
	if len(list) == 1 && mult == 1.0 {
		result = list[0]
	} else {
		and := s.internAND(mult, list)
		result, err = s.CreateMetaNode(DummyVarID, 1, []*ANDNode{and}, 1.0)
		if err != nil {
			return nil, err
		}
	}

	s.opCache[key] = result
	return result, nil
}

// reduceRec is the recursive worker. It returns the list of MetaNodes
// that should replace m in its caller's child list (flattened when m
// turns out to be redundant) and a weight multiplier the caller must
// fold into the AND-node weight it is building around that list.
func (s *Store) reduceRec(m *MetaNode) ([]*MetaNode, float64, error) {
	if m.IsTerminal() {
		return []*MetaNode{m}, 1.0, nil
	}

	newAndChildren := make([]*ANDNode, m.card)
	for k := 0; k < m.card; k++ {
		andC := m.children[k]
		w := andC.weight
		var built []*MetaNode
		zeroFound := false
		for _, mc := range andC.children {
			results, mult, err := s.reduceRec(mc)
			if err != nil {
				return nil, 0, err
			}
			w *= mult
			stop := false
			for _, r := range results {
				if r.IsZero() {
					zeroFound = true
					stop = true
					break
				}
				built = pushAbsorbOne(built, r)
			}
			if stop {
				break
			}
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

	if m.card >= 2 && allSameAND(newAndChildren) {
		first := newAndChildren[0]
		return first.children, m.weight * first.weight, nil
	}

	reinterned, err := s.CreateMetaNode(m.varID, m.card, newAndChildren, m.weight)
	if err != nil {
		return nil, 0, err
	}
	return []*MetaNode{reinterned}, 1.0, nil
}
