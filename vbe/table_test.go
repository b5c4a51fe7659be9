package vbe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechterlab/aomdd/scope"
	"github.com/dechterlab/aomdd/vbe"
)

const (
	varX = 1
	varY = 2
)

func TestTableFunction_Multiply(t *testing.T) {
	scX, err := scope.NewScope(scope.Var{ID: varX, Card: 2})
	require.NoError(t, err)
	tx, err := vbe.NewTableFunction(scX, []float64{0.2, 0.8})
	require.NoError(t, err)

	scY, err := scope.NewScope(scope.Var{ID: varY, Card: 2})
	require.NoError(t, err)
	ty, err := vbe.NewTableFunction(scY, []float64{0.3, 0.7})
	require.NoError(t, err)

	prod, err := tx.Multiply(ty)
	require.NoError(t, err)

	joint, err := scope.NewScope(scope.Var{ID: varX, Card: 2}, scope.Var{ID: varY, Card: 2})
	require.NoError(t, err)
	a := scope.NewAssignment(joint)
	require.NoError(t, a.SetVal(varX, 1))
	require.NoError(t, a.SetVal(varY, 1))
	v, err := prod.GetVal(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.56, v, 1e-9)
}

func TestTableFunction_Marginalize(t *testing.T) {
	sc, err := scope.NewScope(scope.Var{ID: varX, Card: 2}, scope.Var{ID: varY, Card: 2})
	require.NoError(t, err)
	// Under [X,Y], X is least significant: index i decodes to (x=i%2, y=i/2).
	tbl, err := vbe.NewTableFunction(sc, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)

	summed, err := tbl.Marginalize([]int{varY})
	require.NoError(t, err)

	scX, _ := scope.NewScope(scope.Var{ID: varX, Card: 2})
	a0 := scope.NewAssignment(scX)
	require.NoError(t, a0.SetVal(varX, 0))
	v0, err := summed.GetVal(a0)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, v0, 1e-9) // (x=0,y=0)=0.1 + (x=0,y=1)=0.3

	a1 := scope.NewAssignment(scX)
	require.NoError(t, a1.SetVal(varX, 1))
	v1, err := summed.GetVal(a1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, v1, 1e-9) // (x=1,y=0)=0.2 + (x=1,y=1)=0.4
}

func TestTableFunction_Normalize(t *testing.T) {
	sc, err := scope.NewScope(scope.Var{ID: varX, Card: 2})
	require.NoError(t, err)
	tbl, err := vbe.NewTableFunction(sc, []float64{2, 6})
	require.NoError(t, err)

	norm, z := tbl.Normalize()
	assert.InDelta(t, 8, z, 1e-9)
	assert.InDelta(t, 0.25, norm.Values()[0], 1e-9)
	assert.InDelta(t, 0.75, norm.Values()[1], 1e-9)
}

func TestTableFunction_Condition(t *testing.T) {
	sc, err := scope.NewScope(scope.Var{ID: varX, Card: 2}, scope.Var{ID: varY, Card: 2})
	require.NoError(t, err)
	tbl, err := vbe.NewTableFunction(sc, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)

	scX, _ := scope.NewScope(scope.Var{ID: varX, Card: 2})
	evid := scope.NewAssignment(scX)
	require.NoError(t, evid.SetVal(varX, 1))

	cond, err := tbl.Condition(evid)
	require.NoError(t, err)
	assert.False(t, cond.Domain().Contains(varX))

	scY, _ := scope.NewScope(scope.Var{ID: varY, Card: 2})
	a := scope.NewAssignment(scY)
	require.NoError(t, a.SetVal(varY, 0))
	v, err := cond.GetVal(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-9)
}

func TestNewTableFunction_SizeMismatch(t *testing.T) {
	sc, _ := scope.NewScope(scope.Var{ID: varX, Card: 2})
	_, err := vbe.NewTableFunction(sc, []float64{0.1})
	assert.ErrorIs(t, err, vbe.ErrTableSizeMismatch)
}
