package pseudotree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechterlab/aomdd/pseudotree"
)

func TestBuildFromOrdering_Chain(t *testing.T) {
	// Factors {1,2} and {2,3}: eliminating 1 then 2 then 3 chains
	// straight down with no forest and induced width 1.
	tr, err := pseudotree.BuildFromOrdering([]int{1, 2, 3}, [][]int{{1, 2}, {2, 3}}, -1)
	require.NoError(t, err)

	assert.False(t, tr.HasDummy())
	assert.Equal(t, 3, tr.Root())

	p1, ok := tr.Parent(1)
	require.True(t, ok)
	assert.Equal(t, 2, p1)

	p2, ok := tr.Parent(2)
	require.True(t, ok)
	assert.Equal(t, 3, p2)

	_, ok = tr.Parent(3)
	assert.False(t, ok)

	assert.ElementsMatch(t, []int{1}, tr.Children(2))
	assert.ElementsMatch(t, []int{2}, tr.Children(3))
	assert.Equal(t, 1, tr.InducedWidth())
	assert.Equal(t, 2, tr.Height())
}

func TestBuildFromOrdering_ForestGetsDummyRoot(t *testing.T) {
	// Two disjoint singleton factors never interact, so elimination
	// leaves two independent roots, joined under the dummy.
	tr, err := pseudotree.BuildFromOrdering([]int{10, 20}, [][]int{{10}, {20}}, -99)
	require.NoError(t, err)

	assert.True(t, tr.HasDummy())
	assert.Equal(t, -99, tr.Root())
	assert.ElementsMatch(t, []int{10, 20}, tr.Children(-99))

	p10, ok := tr.Parent(10)
	require.True(t, ok)
	assert.Equal(t, -99, p10)
}

func TestBuildFromOrdering_EmptyOrdering(t *testing.T) {
	_, err := pseudotree.BuildFromOrdering(nil, nil, -1)
	assert.ErrorIs(t, err, pseudotree.ErrEmptyOrdering)
}

func TestBuildFromOrdering_UnknownVariableInScope(t *testing.T) {
	_, err := pseudotree.BuildFromOrdering([]int{1, 2}, [][]int{{1, 99}}, -1)
	assert.ErrorIs(t, err, pseudotree.ErrUnknownVariable)
}

func TestBuildFromOrdering_DummyCollision(t *testing.T) {
	_, err := pseudotree.BuildFromOrdering([]int{1, 2}, [][]int{{1, 2}}, 1)
	assert.ErrorIs(t, err, pseudotree.ErrDummyCollision)
}

func TestBuildFromOrdering_HasVar(t *testing.T) {
	tr, err := pseudotree.BuildFromOrdering([]int{1, 2}, [][]int{{1, 2}}, -1)
	require.NoError(t, err)
	assert.True(t, tr.HasVar(1))
	assert.True(t, tr.HasVar(2))
	assert.False(t, tr.HasVar(3))
}
