package bucket

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dechterlab/aomdd/function"
	"github.com/dechterlab/aomdd/pseudotree"
	"github.com/dechterlab/aomdd/scope"
)

// Bucket is an ordered list of AOMDDFunctions sharing responsibility
// for one bucket variable (§4.F).
type Bucket struct {
	Var       int
	Functions []*function.AOMDDFunction
}

// CompiledTree is the result of CompileBucketTree: the root bucket's
// combined function plus the elimination order it was built from, so
// Prob can finish eliminating whatever the root bucket did not.
type CompiledTree struct {
	Root  *function.AOMDDFunction
	Order []int
}

// earliestVarUnder returns the variable of domainVars eliminated
// soonest under order — the bucket a factor belongs to. A factor must
// be folded in at the first moment any of its variables is eliminated,
// or that elimination runs without accounting for it.
func earliestVarUnder(order []int, pos map[int]int, domainVars []int) (int, error) {
	best := -1
	bestPos := -1
	for _, v := range domainVars {
		p, ok := pos[v]
		if !ok {
			return 0, ErrFactorOutsideOrdering
		}
		if bestPos == -1 || p < bestPos {
			bestPos = p
			best = v
		}
	}
	if best == -1 {
		return 0, ErrFactorOutsideOrdering
	}
	return best, nil
}

// CompileBucketTree runs variable elimination over factors using order
// and pt (§4.F). If maximize is true, buckets max-eliminate instead of
// summing (an MPE-style compile rather than a marginal one). log
// receives per-bucket progress (size before/after reduction); pass
// zap.NewNop() when no logging is wanted.
func CompileBucketTree(factors []*function.AOMDDFunction, order []int, pt pseudotree.PseudoTree, maximize bool, log *zap.Logger) (*CompiledTree, error) {
	if len(factors) == 0 {
		return nil, ErrEmptyFactors
	}
	if log == nil {
		log = zap.NewNop()
	}

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	buckets := make(map[int]*Bucket, len(order)+1)
	for _, v := range order {
		buckets[v] = &Bucket{Var: v}
	}
	if pt.HasDummy() {
		buckets[pt.Root()] = &Bucket{Var: pt.Root()}
	}

	for _, f := range factors {
		domainVars := f.Domain().Order()
		v := pt.Root()
		if len(domainVars) > 0 {
			var err error
			v, err = earliestVarUnder(order, pos, domainVars)
			if err != nil {
				return nil, err
			}
		}
		buckets[v].Functions = append(buckets[v].Functions, f)
	}

	processVar := func(v int) error {
		b := buckets[v]
		if len(b.Functions) == 0 {
			return nil
		}
		combined := b.Functions[0]
		for _, f := range b.Functions[1:] {
			var err error
			combined, err = combined.Multiply(f)
			if err != nil {
				return err
			}
		}

		metaBefore, andBefore := combined.Size()

		parent, hasParent := pt.Parent(v)
		if !hasParent {
			buckets[v].Functions = []*function.AOMDDFunction{combined}
			log.Debug("bucket processed (root)", zap.Int("var", v),
				zap.Int("meta", metaBefore), zap.Int("and", andBefore))
			return nil
		}

		var msg *function.AOMDDFunction
		var err error
		if maximize {
			msg, err = combined.Maximize([]int{v})
		} else {
			msg, err = combined.Marginalize([]int{v})
		}
		if err != nil {
			return err
		}
		metaAfter, andAfter := msg.Size()
		log.Debug("bucket processed", zap.Int("var", v),
			zap.Int("meta_before", metaBefore), zap.Int("and_before", andBefore),
			zap.Int("meta_after", metaAfter), zap.Int("and_after", andAfter))

		buckets[parent].Functions = append(buckets[parent].Functions, msg)
		buckets[v].Functions = nil
		return nil
	}

	for _, v := range order {
		if err := processVar(v); err != nil {
			return nil, errors.Wrapf(err, "CompileBucketTree: bucket %d", v)
		}
	}
	if pt.HasDummy() {
		if err := processVar(pt.Root()); err != nil {
			return nil, errors.Wrapf(err, "CompileBucketTree: dummy root bucket")
		}
	}

	rootVar := pt.Root()
	rootBucket := buckets[rootVar]
	if len(rootBucket.Functions) == 0 {
		return nil, errors.Wrap(ErrEmptyFactors, "CompileBucketTree: empty root bucket")
	}
	root := rootBucket.Functions[0]
	for _, f := range rootBucket.Functions[1:] {
		var err error
		root, err = root.Multiply(f)
		if err != nil {
			return nil, err
		}
	}

	return &CompiledTree{Root: root, Order: order}, nil
}

// Prob eliminates whatever variables remain in the compiled tree's root
// function and returns the resulting scalar — P(e) when evidence has
// already been conditioned into the input factors (§4.F). If logOut is
// true the result is ln(P(e)).
func (t *CompiledTree) Prob(logOut bool) (float64, error) {
	remaining := t.Root.Domain().Order()
	final := t.Root
	if len(remaining) > 0 {
		var err error
		final, err = t.Root.Marginalize(remaining)
		if err != nil {
			return 0, err
		}
	}

	a := scope.NewAssignment(final.Domain())
	return final.GetVal(a, logOut)
}
