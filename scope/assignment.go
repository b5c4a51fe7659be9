package scope

// ErrorVal marks a variable as unset in an Assignment.
const ErrorVal = -1

// Assignment pairs a Scope with one chosen value per variable (or
// ErrorVal for "unset").
//
// Steps for a full enumeration:
//  1. NewAssignment(sc) — every variable starts unset.
//  2. SetVal each variable to 0, or call Iterate repeatedly starting
//     from an all-zero assignment.
//  3. GetIndex linearizes the current tuple under sc's ordering, or an
//     arbitrary ordering via GetIndexOrder.
type Assignment struct {
	sc   *Scope
	vals []int // parallel to sc.order; ErrorVal if unset
}

// NewAssignment builds an all-unset Assignment over sc.
func NewAssignment(sc *Scope) *Assignment {
	vals := make([]int, sc.Len())
	for i := range vals {
		vals[i] = ErrorVal
	}
	return &Assignment{sc: sc, vals: vals}
}

// Scope returns the underlying scope.
func (a *Assignment) Scope() *Scope { return a.sc }

// SetVal assigns v to varId. Fails with ErrUnknownVariable if varId is
// not in scope, or ErrOutOfRangeValue if v is outside [0, card).
func (a *Assignment) SetVal(varId, v int) error {
	i, ok := a.sc.pos[varId]
	if !ok {
		return ErrUnknownVariable
	}
	card := a.sc.card[varId]
	if v < 0 || v >= card {
		return ErrOutOfRangeValue
	}
	a.vals[i] = v
	return nil
}

// GetVal returns varId's current value, or ErrorVal if unset.
func (a *Assignment) GetVal(varId int) (int, error) {
	i, ok := a.sc.pos[varId]
	if !ok {
		return ErrorVal, ErrUnknownVariable
	}
	return a.vals[i], nil
}

// Unset clears varId back to ErrorVal.
func (a *Assignment) Unset(varId int) {
	if i, ok := a.sc.pos[varId]; ok {
		a.vals[i] = ErrorVal
	}
}

// IsFullyAssigned reports whether every variable in scope has a value.
func (a *Assignment) IsFullyAssigned() bool {
	for _, v := range a.vals {
		if v == ErrorVal {
			return false
		}
	}
	return true
}

// Iterate advances the tuple by one step in ordering-minor order: the
// first variable in the ordering is the least-significant digit. It
// returns false when the increment wraps past the last tuple (every
// position is then back at 0), or when the carry reaches an unset
// position (positions before it have already been advanced).
func (a *Assignment) Iterate() bool {
	for i, id := range a.sc.order {
		if a.vals[i] == ErrorVal {
			return false
		}
		card := a.sc.card[id]
		a.vals[i]++
		if a.vals[i] < card {
			return true
		}
		a.vals[i] = 0
	}
	// Every digit wrapped: we've cycled past the last tuple.
	return false
}

// GetIndex linearizes the current tuple under the scope's own ordering.
func (a *Assignment) GetIndex() (uint64, error) {
	return a.GetIndexOrder(a.sc.order)
}

// GetIndexOrder linearizes the current tuple under otherOrder, an
// ordering over the same variable set (not necessarily the scope's
// own). The variable at position 0 of otherOrder is the
// least-significant digit.
func (a *Assignment) GetIndexOrder(otherOrder []int) (uint64, error) {
	var idx uint64 = 0
	var mult uint64 = 1
	for _, id := range otherOrder {
		i, ok := a.sc.pos[id]
		if !ok {
			return 0, ErrUnknownVariable
		}
		v := a.vals[i]
		if v == ErrorVal {
			return 0, ErrOutOfRangeValue
		}
		idx += uint64(v) * mult
		mult *= uint64(a.sc.card[id])
	}
	return idx, nil
}

// Values returns a copy of the current tuple in scope order.
func (a *Assignment) Values() []int {
	out := make([]int, len(a.vals))
	copy(out, a.vals)
	return out
}

// Clone returns an independent copy of a.
func (a *Assignment) Clone() *Assignment {
	out := &Assignment{sc: a.sc, vals: make([]int, len(a.vals))}
	copy(out.vals, a.vals)
	return out
}

// Reset sets every value to 0, ready for an Iterate-driven enumeration.
func (a *Assignment) Reset() {
	for i := range a.vals {
		a.vals[i] = 0
	}
}
