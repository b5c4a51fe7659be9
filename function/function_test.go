package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechterlab/aomdd/dd"
	"github.com/dechterlab/aomdd/function"
	"github.com/dechterlab/aomdd/pseudotree"
	"github.com/dechterlab/aomdd/scope"
)

const (
	varX = 1
	varY = 2
)

func buildPair(t *testing.T) (store *dd.Store, fx, fy *function.AOMDDFunction) {
	t.Helper()
	store = dd.NewStore()
	pt, err := pseudotree.BuildFromOrdering([]int{varX, varY}, [][]int{{varX}, {varY}}, dd.DummyVarID)
	require.NoError(t, err)

	scX, err := scope.NewScope(scope.Var{ID: varX, Card: 2})
	require.NoError(t, err)
	fx, err = function.FromTable(store, scX, []float64{0.2, 0.8}, pt)
	require.NoError(t, err)

	scY, err := scope.NewScope(scope.Var{ID: varY, Card: 2})
	require.NoError(t, err)
	fy, err = function.FromTable(store, scY, []float64{0.3, 0.7}, pt)
	require.NoError(t, err)
	return store, fx, fy
}

func assign(t *testing.T, sc *scope.Scope, vals map[int]int) *scope.Assignment {
	t.Helper()
	a := scope.NewAssignment(sc)
	for v, val := range vals {
		require.NoError(t, a.SetVal(v, val))
	}
	return a
}

func TestAOMDDFunction_MultiplyAndEvaluate(t *testing.T) {
	_, fx, fy := buildPair(t)
	prod, err := fx.Multiply(fy)
	require.NoError(t, err)

	assert.True(t, prod.Domain().Contains(varX))
	assert.True(t, prod.Domain().Contains(varY))

	v, err := prod.GetVal(assign(t, prod.Domain(), map[int]int{varX: 1, varY: 1}), false)
	require.NoError(t, err)
	assert.InDelta(t, 0.56, v, 1e-9)
}

func TestAOMDDFunction_MarginalizeDropsVariable(t *testing.T) {
	_, fx, fy := buildPair(t)
	prod, err := fx.Multiply(fy)
	require.NoError(t, err)

	marg, err := prod.Marginalize([]int{varY})
	require.NoError(t, err)
	assert.False(t, marg.Domain().Contains(varY))
	assert.True(t, marg.Domain().Contains(varX))

	v, err := marg.GetVal(assign(t, marg.Domain(), map[int]int{varX: 0}), false)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-9)
}

func TestAOMDDFunction_ConditionDropsVariable(t *testing.T) {
	_, fx, fy := buildPair(t)
	prod, err := fx.Multiply(fy)
	require.NoError(t, err)

	sc, _ := scope.NewScope(scope.Var{ID: varX, Card: 2})
	evid := assign(t, sc, map[int]int{varX: 1})
	cond, err := prod.Condition(evid)
	require.NoError(t, err)
	assert.False(t, cond.Domain().Contains(varX))
	assert.True(t, cond.Domain().Contains(varY))
}

func TestAOMDDFunction_Size(t *testing.T) {
	_, fx, _ := buildPair(t)
	metaCount, andCount := fx.Size()
	assert.Greater(t, metaCount, 0)
	assert.Greater(t, andCount, 0)
}
