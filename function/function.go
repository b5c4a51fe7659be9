package function

import (
	"github.com/pkg/errors"

	"github.com/dechterlab/aomdd/dd"
	"github.com/dechterlab/aomdd/pseudotree"
	"github.com/dechterlab/aomdd/scope"
)

// AOMDDFunction wraps (Scope domain, MetaNode root, PseudoTree pt) per
// §4.E: a factor backed by a diagram root instead of a dense table.
// Every mutating method returns a new AOMDDFunction; the receiver is
// never modified, matching the underlying Store's immutable-node
// discipline.
type AOMDDFunction struct {
	store  *dd.Store
	domain *scope.Scope
	root   *dd.MetaNode
	pt     pseudotree.PseudoTree
}

// New builds an AOMDDFunction directly from a root already interned in
// store, over domain, decomposed along pt.
func New(store *dd.Store, domain *scope.Scope, root *dd.MetaNode, pt pseudotree.PseudoTree) *AOMDDFunction {
	return &AOMDDFunction{store: store, domain: domain, root: root, pt: pt}
}

// FromTable builds the AOMDDFunction representing a dense factor table
// over domain, interning it via store and running FullReduce so the
// result is minimal from the start.
func FromTable(store *dd.Store, domain *scope.Scope, values []float64, pt pseudotree.PseudoTree) (*AOMDDFunction, error) {
	root, err := store.CreateMetaNodeFromTable(domain, values, 1.0)
	if err != nil {
		return nil, err
	}
	reduced, err := store.FullReduce(root)
	if err != nil {
		return nil, err
	}
	return New(store, domain, reduced, pt), nil
}

// Store returns the node store this function's diagram lives in.
func (f *AOMDDFunction) Store() *dd.Store { return f.store }

// Domain returns the function's current scope.
func (f *AOMDDFunction) Domain() *scope.Scope { return f.domain }

// Root returns the function's diagram root.
func (f *AOMDDFunction) Root() *dd.MetaNode { return f.root }

// PseudoTree returns the pseudo-tree this function's Apply/Marginalize
// calls decompose along.
func (f *AOMDDFunction) PseudoTree() pseudotree.PseudoTree { return f.pt }

// Multiply returns this * rhs: Apply(PROD) over both roots, domain
// widened to the union of both scopes, then FullReduced (§4.E).
func (f *AOMDDFunction) Multiply(rhs *AOMDDFunction) (*AOMDDFunction, error) {
	if rhs.pt != f.pt {
		return nil, errors.Wrap(ErrNilPseudoTree, "Multiply: operands must share a pseudo-tree")
	}
	prod, err := f.store.Apply(f.root, []*dd.MetaNode{rhs.root}, dd.OpProd, f.pt, 1.0)
	if err != nil {
		return nil, err
	}
	reduced, err := f.store.FullReduce(prod)
	if err != nil {
		return nil, err
	}
	domain, err := f.domain.Union(rhs.domain)
	if err != nil {
		return nil, errors.Wrap(err, "Multiply: union of operand domains")
	}
	return New(f.store, domain, reduced, f.pt), nil
}

// Marginalize sums elim out of f, FullReduces the result, and drops
// elim from the returned function's domain.
func (f *AOMDDFunction) Marginalize(elim []int) (*AOMDDFunction, error) {
	return f.eliminate(elim, false)
}

// Maximize max-eliminates elim out of f; otherwise identical to Marginalize.
func (f *AOMDDFunction) Maximize(elim []int) (*AOMDDFunction, error) {
	return f.eliminate(elim, true)
}

func (f *AOMDDFunction) eliminate(elim []int, max bool) (*AOMDDFunction, error) {
	var summed *dd.MetaNode
	var err error
	if max {
		summed, err = f.store.Maximize(f.root, elim, f.pt)
	} else {
		summed, err = f.store.Marginalize(f.root, elim, f.pt)
	}
	if err != nil {
		return nil, err
	}
	reduced, err := f.store.FullReduce(summed)
	if err != nil {
		return nil, err
	}

	newDomain := f.domain.Clone()
	for _, v := range elim {
		newDomain.RemoveVar(v)
	}
	return New(f.store, newDomain, reduced, f.pt), nil
}

// Condition substitutes a's assigned values into f, FullReduces, and
// removes the conditioned variables from the returned function's domain.
func (f *AOMDDFunction) Condition(a *scope.Assignment) (*AOMDDFunction, error) {
	cond, err := f.store.Condition(f.root, a)
	if err != nil {
		return nil, err
	}
	reduced, err := f.store.FullReduce(cond)
	if err != nil {
		return nil, err
	}

	newDomain := f.domain.Clone()
	for _, v := range a.Scope().Order() {
		if val, _ := a.GetVal(v); val != scope.ErrorVal {
			newDomain.RemoveVar(v)
		}
	}
	return New(f.store, newDomain, reduced, f.pt), nil
}

// Normalize returns f with its diagram's weight pushed toward the root;
// the domain is unchanged.
func (f *AOMDDFunction) Normalize() (*AOMDDFunction, error) {
	norm, err := f.store.Normalize(f.root)
	if err != nil {
		return nil, err
	}
	return New(f.store, f.domain, norm, f.pt), nil
}

// GetVal evaluates f at a (§4.C.9); logOut requests the natural log of
// the value instead of the value itself.
func (f *AOMDDFunction) GetVal(a *scope.Assignment, logOut bool) (float64, error) {
	return f.store.GetVal(f.root, a, logOut)
}

// Size returns the (#MetaNode, #ANDNode) pair reachable from f's root.
func (f *AOMDDFunction) Size() (metaCount, andCount int) {
	return f.root.Size()
}
