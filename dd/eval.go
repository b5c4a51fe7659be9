package dd

import (
	"math"

	"github.com/pkg/errors"

	"github.com/dechterlab/aomdd/scope"
)

// GetVal evaluates root at the (fully or partially, for the variables
// root's subtree actually depends on) assigned tuple a, per §4.C.9. If
// logOut is true, multiplication becomes addition and the result is the
// natural logarithm of the value.
func (s *Store) GetVal(root *MetaNode, a *scope.Assignment, logOut bool) (float64, error) {
	return s.getValRec(root, a, logOut)
}

func (s *Store) getValRec(m *MetaNode, a *scope.Assignment, logOut bool) (float64, error) {
	if m.IsZero() {
		if logOut {
			return math.Inf(-1), nil
		}
		return 0, nil
	}
	if m.IsOne() {
		if logOut {
			return 0, nil
		}
		return 1, nil
	}

	if m.IsDummy() {
		andC := m.children[0]
		acc := m.weight * andC.weight
		if logOut {
			acc = math.Log(m.weight) + math.Log(andC.weight)
		}
		for _, mc := range andC.children {
			childVal, err := s.getValRec(mc, a, logOut)
			if err != nil {
				return 0, err
			}
			if logOut {
				acc += childVal
			} else {
				acc *= childVal
			}
		}
		return acc, nil
	}

	v, err := a.GetVal(m.varID)
	if err != nil || v == scope.ErrorVal {
		return 0, errors.Wrapf(ErrPreconditionViolation, "GetVal: variable %d is unassigned", m.varID)
	}

	andC := m.children[v]
	var acc float64
	if logOut {
		acc = math.Log(m.weight) + math.Log(andC.weight)
	} else {
		acc = m.weight * andC.weight
	}

	for _, mc := range andC.children {
		childVal, err := s.getValRec(mc, a, logOut)
		if err != nil {
			return 0, err
		}
		if logOut {
			acc += childVal
		} else {
			acc *= childVal
		}
	}
	return acc, nil
}
