package bucket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dechterlab/aomdd/bucket"
	"github.com/dechterlab/aomdd/dd"
	"github.com/dechterlab/aomdd/function"
	"github.com/dechterlab/aomdd/pseudotree"
	"github.com/dechterlab/aomdd/scope"
)

const (
	varA = 1
	varB = 2
	varC = 3
)

// bruteForceProb sums P(A)*P(B|A)*P(C=0|B) over all (A,B) directly from
// the dense tables, independent of any diagram machinery, as the
// reference value CompileBucketTree's result is checked against.
func bruteForceProb(pa, pBgivenA, pCgivenB [2][2]float64, evidenceC int) float64 {
	var total float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			total += pa[0][a] * pBgivenA[a][b] * pCgivenB[b][evidenceC]
		}
	}
	return total
}

func TestCompileBucketTree_ChainProbability(t *testing.T) {
	store := dd.NewStore()

	pt, err := pseudotree.BuildFromOrdering(
		[]int{varA, varB, varC},
		[][]int{{varA}, {varA, varB}, {varB, varC}},
		dd.DummyVarID,
	)
	require.NoError(t, err)

	scA, err := scope.NewScope(scope.Var{ID: varA, Card: 2})
	require.NoError(t, err)
	fA, err := function.FromTable(store, scA, []float64{0.4, 0.6}, pt)
	require.NoError(t, err)

	scAB, err := scope.NewScope(scope.Var{ID: varA, Card: 2}, scope.Var{ID: varB, Card: 2})
	require.NoError(t, err)
	// Row-major under [A,B]: A outer, B inner — row A=0: [0.1,0.9], row A=1: [0.8,0.2].
	fBA, err := function.FromTable(store, scAB, []float64{0.1, 0.9, 0.8, 0.2}, pt)
	require.NoError(t, err)

	scBC, err := scope.NewScope(scope.Var{ID: varB, Card: 2}, scope.Var{ID: varC, Card: 2})
	require.NoError(t, err)
	// Row-major under [B,C]: row B=0: [0.7,0.3], row B=1: [0.5,0.5].
	fCB, err := function.FromTable(store, scBC, []float64{0.7, 0.3, 0.5, 0.5}, pt)
	require.NoError(t, err)

	scC, err := scope.NewScope(scope.Var{ID: varC, Card: 2})
	require.NoError(t, err)
	evidence := scope.NewAssignment(scC)
	require.NoError(t, evidence.SetVal(varC, 0))
	fCB0, err := fCB.Condition(evidence)
	require.NoError(t, err)
	assert.False(t, fCB0.Domain().Contains(varC))

	tree, err := bucket.CompileBucketTree(
		[]*function.AOMDDFunction{fA, fBA, fCB0},
		[]int{varA, varB, varC},
		pt, false, zap.NewNop(),
	)
	require.NoError(t, err)

	got, err := tree.Prob(false)
	require.NoError(t, err)

	want := bruteForceProb(
		[2][2]float64{{0.4, 0.6}},
		[2][2]float64{{0.1, 0.9}, {0.8, 0.2}},
		[2][2]float64{{0.7, 0.3}, {0.5, 0.5}},
		0,
	)
	assert.InDelta(t, want, got, 1e-9)
}

func TestCompileBucketTree_EmptyFactors(t *testing.T) {
	pt, err := pseudotree.BuildFromOrdering([]int{1}, [][]int{{1}}, -1)
	require.NoError(t, err)
	_, err = bucket.CompileBucketTree(nil, []int{1}, pt, false, nil)
	assert.ErrorIs(t, err, bucket.ErrEmptyFactors)
}
