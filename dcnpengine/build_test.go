package dcnpengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuebo100/pycnp/core"
)

func pathAdj(n int) core.AdjList {
	adj := core.NewAdjList(n)
	for i := 0; i < n-1; i++ {
		adj.AddEdge(i, i+1)
	}
	return adj
}

func starAdj(n int) core.AdjList {
	adj := core.NewAdjList(n)
	for i := 1; i < n; i++ {
		adj.AddEdge(0, i)
	}
	return adj
}

func TestBuildComputesInitialTreeSizes(t *testing.T) {
	e, err := Build(pathAdj(5), 2, 1, 1)
	require.NoError(t, err)
	// vertex 2 (middle) reaches 0,1,3,4 within 2 hops: tree_size = 4.
	assert.Equal(t, 4, e.TreeSize(2))
}

func TestRemovedVertexHasEmptyRowAndZeroTreeSize(t *testing.T) {
	e, err := Build(pathAdj(5), 2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, e.Remove(2))
	assert.Equal(t, 0, e.TreeSize(2))
	for u := 0; u < e.NumNodes(); u++ {
		assert.False(t, e.InTree(2, u))
	}
}

func TestInTreeIsSymmetric(t *testing.T) {
	e, err := Build(starAdj(6), 2, 1, 1)
	require.NoError(t, err)
	for v := 0; v < e.NumNodes(); v++ {
		for u := 0; u < e.NumNodes(); u++ {
			assert.Equal(t, e.InTree(v, u), e.InTree(u, v), "asymmetric at (%d,%d)", v, u)
		}
	}
}

func TestRemoveThenAddIsIdentity(t *testing.T) {
	e, err := Build(pathAdj(6), 2, 2, 1)
	require.NoError(t, err)
	before := e.Objective()

	require.NoError(t, e.Remove(3))
	require.NoError(t, e.Add(3))

	assert.Equal(t, before, e.Objective())
	assert.False(t, e.Removed(3))
}

func TestFindBestToRemoveReturnsInvalidWhenNoImprovement(t *testing.T) {
	// Three isolated vertices: nothing to improve by removal.
	e, err := Build(core.NewAdjList(3), 5, 1, 1)
	require.NoError(t, err)
	v, err := e.FindBestToRemove()
	require.NoError(t, err)
	assert.Equal(t, InvalidNode, v)
}

func TestFindBestToAddReturnsInvalidWhenNothingRemoved(t *testing.T) {
	e, err := Build(pathAdj(5), 2, 3, 1)
	require.NoError(t, err)
	v, err := e.FindBestToAdd()
	require.NoError(t, err)
	assert.Equal(t, InvalidNode, v)
}

func TestCloneIsIndependent(t *testing.T) {
	e, err := Build(pathAdj(6), 2, 2, 1)
	require.NoError(t, err)
	clone := e.Clone()

	require.NoError(t, clone.Remove(2))
	assert.False(t, e.Removed(2))
	assert.True(t, clone.Removed(2))
}

func TestGetReducedByShrinksBudgetAndClearsMask(t *testing.T) {
	e, err := Build(pathAdj(6), 2, 3, 1)
	require.NoError(t, err)
	require.NoError(t, e.Remove(1))
	require.NoError(t, e.GetReducedBy(map[int]struct{}{1: {}}))
	assert.Equal(t, 2, e.Budget())
	assert.Equal(t, 0, e.NumRemoved())
}

func TestBetweennessNonNegative(t *testing.T) {
	e, err := Build(starAdj(6), 3, 1, 1)
	require.NoError(t, err)
	bt := e.Betweenness()
	for _, v := range bt {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	// The hub sits on every shortest path between leaves.
	assert.Greater(t, bt[0], bt[1])
}
