package handle

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

func TestSelectComponentFailsOnDcnpHandle(t *testing.T) {
	h, err := NewDcnp(pathAdj(6), 2, 2, 1)
	require.NoError(t, err)
	_, err = h.SelectComponent()
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestFindBestToAddDelegatesToGreedyAddOnCnp(t *testing.T) {
	h, err := NewCnp(pathAdj(6), 2, 1)
	require.NoError(t, err)
	require.NoError(t, h.SetRemovedAll(map[int]struct{}{1: {}, 4: {}}))
	v, err := h.FindBestToAdd()
	require.NoError(t, err)
	assert.Contains(t, []int{1, 4}, v)
}

func TestFindBestToRemoveDelegatesToRandomRemoveOnCnp(t *testing.T) {
	h, err := NewCnp(pathAdj(6), 2, 1)
	require.NoError(t, err)
	v, err := h.FindBestToRemove()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, h.NumNodes())
}

func TestBuildTreeAndKhopSizeNoOpOnCnp(t *testing.T) {
	h, err := NewCnp(pathAdj(6), 2, 1)
	require.NoError(t, err)
	h.BuildTree() // must not panic
	assert.Equal(t, 0, h.KhopSize(0))
	assert.Empty(t, h.Betweenness())
}

func TestCnpOnlyPrimitivesFailOnDcnp(t *testing.T) {
	h, err := NewDcnp(pathAdj(6), 2, 2, 1)
	require.NoError(t, err)

	_, err = h.RandomNodeFrom(0)
	require.ErrorIs(t, err, ErrWrongKind)
	_, err = h.AgeNodeFrom(0)
	require.ErrorIs(t, err, ErrWrongKind)
	_, err = h.ImpactNodeFrom(0)
	require.ErrorIs(t, err, ErrWrongKind)
	_, err = h.ConnectionGain(0)
	require.ErrorIs(t, err, ErrWrongKind)
	_, err = h.GreedyAdd()
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestCloneProducesIndependentHandle(t *testing.T) {
	h, err := NewCnp(pathAdj(6), 2, 1)
	require.NoError(t, err)
	clone := h.Clone()

	require.NoError(t, clone.Remove(0))
	assert.False(t, h.Removed(0))
	assert.True(t, clone.Removed(0))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "cnp", Cnp.String())
	assert.Equal(t, "dcnp", Dcnp.String())
}
