package vbe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechterlab/aomdd/scope"
	"github.com/dechterlab/aomdd/vbe"
)

const (
	varA = 1
	varB = 2
	varC = 3
)

func TestEliminate_ChainProbability(t *testing.T) {
	scA, err := scope.NewScope(scope.Var{ID: varA, Card: 2})
	require.NoError(t, err)
	fA, err := vbe.NewTableFunction(scA, []float64{0.4, 0.6})
	require.NoError(t, err)

	scAB, err := scope.NewScope(scope.Var{ID: varA, Card: 2}, scope.Var{ID: varB, Card: 2})
	require.NoError(t, err)
	// Under [A,B], A is least significant: index decodes to (a=i%2, b=i/2).
	// P(B=0|A=0)=0.1, P(B=0|A=1)=0.8, P(B=1|A=0)=0.9, P(B=1|A=1)=0.2.
	fBA, err := vbe.NewTableFunction(scAB, []float64{0.1, 0.8, 0.9, 0.2})
	require.NoError(t, err)

	scBC, err := scope.NewScope(scope.Var{ID: varB, Card: 2}, scope.Var{ID: varC, Card: 2})
	require.NoError(t, err)
	// P(C=0|B=0)=0.7, P(C=0|B=1)=0.5, P(C=1|B=0)=0.3, P(C=1|B=1)=0.5.
	fCB, err := vbe.NewTableFunction(scBC, []float64{0.7, 0.5, 0.3, 0.5})
	require.NoError(t, err)

	scC, err := scope.NewScope(scope.Var{ID: varC, Card: 2})
	require.NoError(t, err)
	evid := scope.NewAssignment(scC)
	require.NoError(t, evid.SetVal(varC, 0))
	fCB0, err := fCB.Condition(evid)
	require.NoError(t, err)

	prob, err := vbe.Eliminate([]*vbe.TableFunction{fA, fBA, fCB0}, []int{varA, varB, varC}, false)
	require.NoError(t, err)

	var want float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			pa := []float64{0.4, 0.6}[a]
			pBgivenA := map[[2]int]float64{{0, 0}: 0.1, {1, 0}: 0.8, {0, 1}: 0.9, {1, 1}: 0.2}[[2]int{a, b}]
			pCgivenB := map[int]float64{0: 0.7, 1: 0.5}[b]
			want += pa * pBgivenA * pCgivenB
		}
	}
	assert.InDelta(t, want, prob, 1e-9)
}

func TestEliminate_SingleFactor(t *testing.T) {
	sc, err := scope.NewScope(scope.Var{ID: varA, Card: 2})
	require.NoError(t, err)
	fA, err := vbe.NewTableFunction(sc, []float64{0.4, 0.6})
	require.NoError(t, err)

	prob, err := vbe.Eliminate([]*vbe.TableFunction{fA}, []int{varA}, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, prob, 1e-9)
}
