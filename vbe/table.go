package vbe

import (
	"math"

	"github.com/pkg/errors"

	"github.com/dechterlab/aomdd/scope"
)

// TableFunction is a dense factor: a Scope plus one float64 per tuple,
// linearized under the scope's own ordering (scope.Assignment.GetIndex
// convention — the first variable in the ordering is least
// significant). It mirrors function.AOMDDFunction's operations without
// any diagram machinery, so the two can be cross-checked against each
// other (§6.1 `-verify`).
type TableFunction struct {
	domain *scope.Scope
	values []float64
}

// NewTableFunction builds a TableFunction over domain from values,
// already linearized under domain's ordering.
func NewTableFunction(domain *scope.Scope, values []float64) (*TableFunction, error) {
	total, overflow := domain.Cardinality()
	if overflow || uint64(len(values)) != total {
		return nil, errors.Wrapf(ErrTableSizeMismatch, "got %d values, want %d", len(values), total)
	}
	out := make([]float64, len(values))
	copy(out, values)
	return &TableFunction{domain: domain, values: out}, nil
}

// Domain returns the function's scope.
func (f *TableFunction) Domain() *scope.Scope { return f.domain }

// Values returns a copy of the dense table.
func (f *TableFunction) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}

// GetVal looks up a's value directly, requiring every variable in
// f.domain to be assigned.
func (f *TableFunction) GetVal(a *scope.Assignment) (float64, error) {
	idx, err := a.GetIndexOrder(f.domain.Order())
	if err != nil {
		return 0, errors.Wrap(ErrUnassignedVariable, err.Error())
	}
	return f.values[idx], nil
}

// Multiply returns the pointwise product of f and rhs over the union
// of their domains.
func (f *TableFunction) Multiply(rhs *TableFunction) (*TableFunction, error) {
	domain, err := f.domain.Union(rhs.domain)
	if err != nil {
		return nil, err
	}
	return f.combine(rhs, domain, func(a, b float64) float64 { return a * b })
}

func (f *TableFunction) combine(rhs *TableFunction, domain *scope.Scope, op func(a, b float64) float64) (*TableFunction, error) {
	total, _ := domain.Cardinality()
	values := make([]float64, total)
	a := scope.NewAssignment(domain)
	a.Reset()
	for i := uint64(0); i < total; i++ {
		fv, err := projectedVal(f, a)
		if err != nil {
			return nil, err
		}
		rv, err := projectedVal(rhs, a)
		if err != nil {
			return nil, err
		}
		values[i] = op(fv, rv)
		if i+1 < total {
			a.Iterate()
		}
	}
	return &TableFunction{domain: domain, values: values}, nil
}

// projectedVal evaluates t at the restriction of a to t's own domain.
func projectedVal(t *TableFunction, a *scope.Assignment) (float64, error) {
	sub := scope.NewAssignment(t.domain)
	for _, v := range t.domain.Order() {
		val, err := a.GetVal(v)
		if err != nil {
			return 0, err
		}
		if err := sub.SetVal(v, val); err != nil {
			return 0, err
		}
	}
	return t.GetVal(sub)
}

// Marginalize sums elim out of f.
func (f *TableFunction) Marginalize(elim []int) (*TableFunction, error) {
	return f.eliminate(elim, func(acc, v float64) float64 { return acc + v }, 0)
}

// Maximize max-eliminates elim out of f.
func (f *TableFunction) Maximize(elim []int) (*TableFunction, error) {
	return f.eliminate(elim, func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	}, negInf)
}

func (f *TableFunction) eliminate(elim []int, combine func(acc, v float64) float64, identity float64) (*TableFunction, error) {
	elimSc, err := scope.NewScope()
	if err != nil {
		return nil, err
	}
	elimSet := make(map[int]bool, len(elim))
	for _, v := range elim {
		elimSet[v] = true
		card, ok := f.domain.CardOf(v)
		if !ok {
			return nil, errors.Wrap(ErrUnassignedVariable, "Marginalize: variable not in domain")
		}
		_ = elimSc.AddVar(v, card)
	}

	remaining := f.domain.Clone()
	for _, v := range elim {
		remaining.RemoveVar(v)
	}

	totalOut, _ := remaining.Cardinality()
	values := make([]float64, totalOut)
	outer := scope.NewAssignment(remaining)
	outer.Reset()

	totalElim, _ := elimSc.Cardinality()
	if totalElim == 0 {
		totalElim = 1
	}

	for i := uint64(0); i < totalOut; i++ {
		acc := identity
		inner := scope.NewAssignment(elimSc)
		inner.Reset()
		for j := uint64(0); j < totalElim; j++ {
			full := scope.NewAssignment(f.domain)
			for _, v := range remaining.Order() {
				val, _ := outer.GetVal(v)
				_ = full.SetVal(v, val)
			}
			for _, v := range elim {
				val, _ := inner.GetVal(v)
				_ = full.SetVal(v, val)
			}
			v, err := f.GetVal(full)
			if err != nil {
				return nil, err
			}
			acc = combine(acc, v)
			if j+1 < totalElim {
				inner.Iterate()
			}
		}
		values[i] = acc
		if i+1 < totalOut {
			outer.Iterate()
		}
	}
	return &TableFunction{domain: remaining, values: values}, nil
}

// Condition substitutes a's assigned values into f, dropping them from
// the result's domain.
func (f *TableFunction) Condition(a *scope.Assignment) (*TableFunction, error) {
	remaining := f.domain.Clone()
	for _, v := range a.Scope().Order() {
		if val, _ := a.GetVal(v); val != scope.ErrorVal && f.domain.Contains(v) {
			remaining.RemoveVar(v)
		}
	}

	total, _ := remaining.Cardinality()
	values := make([]float64, total)
	out := scope.NewAssignment(remaining)
	out.Reset()
	for i := uint64(0); i < total; i++ {
		full := scope.NewAssignment(f.domain)
		for _, v := range remaining.Order() {
			val, _ := out.GetVal(v)
			_ = full.SetVal(v, val)
		}
		for _, v := range a.Scope().Order() {
			val, _ := a.GetVal(v)
			if val != scope.ErrorVal && f.domain.Contains(v) {
				_ = full.SetVal(v, val)
			}
		}
		v, err := f.GetVal(full)
		if err != nil {
			return nil, err
		}
		values[i] = v
		if i+1 < total {
			out.Iterate()
		}
	}
	return &TableFunction{domain: remaining, values: values}, nil
}

// Normalize returns f scaled so its values sum to 1, and the partition
// function Z it divided by.
func (f *TableFunction) Normalize() (normalized *TableFunction, z float64) {
	for _, v := range f.values {
		z += v
	}
	out := make([]float64, len(f.values))
	if z != 0 {
		for i, v := range f.values {
			out[i] = v / z
		}
	} else {
		copy(out, f.values)
	}
	return &TableFunction{domain: f.domain, values: out}, z
}

var negInf = math.Inf(-1)
