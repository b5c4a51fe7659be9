package dd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechterlab/aomdd/scope"
)

func TestFullReduce_Idempotent(t *testing.T) {
	s := NewStore()
	sc, err := scope.NewScope(scope.Var{ID: 1, Card: 2}, scope.Var{ID: 2, Card: 2})
	require.NoError(t, err)
	m, err := s.CreateMetaNodeFromTable(sc, []float64{0.2, 0.3, 0.5, 0.7}, 1.0)
	require.NoError(t, err)

	once, err := s.FullReduce(m)
	require.NoError(t, err)
	twice, err := s.FullReduce(once)
	require.NoError(t, err)
	assert.Same(t, once, twice)
}

func TestFullReduce_CollapsesRedundantNode(t *testing.T) {
	s := NewStore()
	// Both branches of a two-valued variable lead to the identical
	// ANDNode: the node contributes nothing and should vanish.
	and := s.CreateANDNode(1.0, []*MetaNode{s.One()})
	m, err := s.CreateMetaNode(7, 2, []*ANDNode{and, and}, 1.0)
	require.NoError(t, err)

	reduced, err := s.FullReduce(m)
	require.NoError(t, err)
	assert.True(t, reduced.IsOne())
}

func TestFullReduce_MemoizesOperationCache(t *testing.T) {
	s := NewStore()
	sc, _ := scope.NewScope(scope.Var{ID: 1, Card: 2})
	m, err := s.CreateMetaNodeFromTable(sc, []float64{0.4, 0.6}, 1.0)
	require.NoError(t, err)

	a, err := s.FullReduce(m)
	require.NoError(t, err)
	b, err := s.FullReduce(m)
	require.NoError(t, err)
	assert.Same(t, a, b)
}
