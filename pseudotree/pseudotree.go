package pseudotree

// PseudoTree is the ancestor-lookup context dd.Apply and dd.Marginalize
// need (§4.D). Implementations need not be mutable; Tree below is built
// once from an elimination ordering and a set of factor scopes.
type PseudoTree interface {
	// Parent returns varID's parent, or ok==false if varID is the root.
	Parent(varID int) (parent int, ok bool)
	// Children returns varID's pseudo-tree children, in no particular order.
	Children(varID int) []int
	// HasVar reports whether varID is part of this tree.
	HasVar(varID int) bool
	// InducedWidth returns the induced width observed while building the tree.
	InducedWidth() int
	// Height returns the tree's height (root has height 0).
	Height() int
	// HasDummy reports whether a synthetic dummy root anchors a forest.
	HasDummy() bool
	// Root returns the tree's root variable id.
	Root() int
}

// Tree is a concrete PseudoTree built from an elimination ordering by
// the standard induced-graph construction: process variables in
// elimination order, connect each one's still-active neighbors into a
// clique (fill-in), and parent it under whichever active neighbor will
// be eliminated soonest. This guarantees every input factor's scope
// lies on a single root-to-leaf path, because moralizing the factor
// scopes first makes each one a clique that induced-graph triangulation
// preserves.
type Tree struct {
	root       int
	hasDummy   bool
	width      int
	parent     map[int]int
	children   map[int][]int
	height     int
	knownVars  map[int]bool
}

// Parent implements PseudoTree.
func (t *Tree) Parent(varID int) (int, bool) {
	p, ok := t.parent[varID]
	return p, ok
}

// Children implements PseudoTree.
func (t *Tree) Children(varID int) []int {
	return t.children[varID]
}

// HasVar implements PseudoTree.
func (t *Tree) HasVar(varID int) bool { return t.knownVars[varID] }

// InducedWidth implements PseudoTree.
func (t *Tree) InducedWidth() int { return t.width }

// Height implements PseudoTree.
func (t *Tree) Height() int { return t.height }

// HasDummy implements PseudoTree.
func (t *Tree) HasDummy() bool { return t.hasDummy }

// Root implements PseudoTree.
func (t *Tree) Root() int { return t.root }

// BuildFromOrdering builds a Tree from elimOrder (elimOrder[0] is
// eliminated first) and factorScopes (each factor's variable ids,
// moralized into the initial interaction graph). dummyVarID is used as
// the synthetic root only if the pseudo-tree turns out to be a forest;
// it must not collide with any variable in elimOrder.
func BuildFromOrdering(elimOrder []int, factorScopes [][]int, dummyVarID int) (*Tree, error) {
	if len(elimOrder) == 0 {
		return nil, ErrEmptyOrdering
	}

	knownVars := make(map[int]bool, len(elimOrder))
	elimPos := make(map[int]int, len(elimOrder))
	for i, v := range elimOrder {
		knownVars[v] = true
		elimPos[v] = i
	}
	if knownVars[dummyVarID] {
		return nil, ErrDummyCollision
	}

	adjacency := make(map[int]map[int]bool, len(elimOrder))
	for _, v := range elimOrder {
		adjacency[v] = make(map[int]bool)
	}
	connect := func(a, b int) {
		if a == b {
			return
		}
		adjacency[a][b] = true
		adjacency[b][a] = true
	}
	for _, fs := range factorScopes {
		for _, v := range fs {
			if !knownVars[v] {
				return nil, ErrUnknownVariable
			}
		}
		for i := 0; i < len(fs); i++ {
			for j := i + 1; j < len(fs); j++ {
				connect(fs[i], fs[j])
			}
		}
	}

	eliminated := make(map[int]bool, len(elimOrder))
	parent := make(map[int]int, len(elimOrder))
	children := make(map[int][]int, len(elimOrder))
	width := 0

	for _, v := range elimOrder {
		var active []int
		for u := range adjacency[v] {
			if !eliminated[u] {
				active = append(active, u)
			}
		}
		if len(active) > width {
			width = len(active)
		}
		if len(active) > 0 {
			best := active[0]
			for _, u := range active[1:] {
				if elimPos[u] < elimPos[best] {
					best = u
				}
			}
			parent[v] = best
			children[best] = append(children[best], v)
			for i := 0; i < len(active); i++ {
				for j := i + 1; j < len(active); j++ {
					connect(active[i], active[j])
				}
			}
		}
		eliminated[v] = true
	}

	var rootCandidates []int
	for _, v := range elimOrder {
		if _, ok := parent[v]; !ok {
			rootCandidates = append(rootCandidates, v)
		}
	}

	t := &Tree{
		parent:    parent,
		children:  children,
		width:     width,
		knownVars: knownVars,
	}

	if len(rootCandidates) == 1 {
		t.root = rootCandidates[0]
		t.hasDummy = false
	} else {
		t.root = dummyVarID
		t.hasDummy = true
		t.knownVars[dummyVarID] = true
		for _, rc := range rootCandidates {
			parent[rc] = dummyVarID
			children[dummyVarID] = append(children[dummyVarID], rc)
		}
	}

	t.height = computeHeight(children, t.root)
	return t, nil
}

func computeHeight(children map[int][]int, root int) int {
	var dfs func(v int) int
	dfs = func(v int) int {
		best := 0
		for _, c := range children[v] {
			if h := 1 + dfs(c); h > best {
				best = h
			}
		}
		return best
	}
	return dfs(root)
}
