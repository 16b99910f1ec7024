package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
)

func cliqueAdj(n int) core.AdjList {
	adj := core.NewAdjList(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adj.AddEdge(i, j)
		}
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

func initRemoved(h *handle.GraphHandle, k int, src *rng.Source) error {
	removed := make(map[int]struct{}, k)
	for len(removed) < k {
		idx, err := src.Index(h.NumNodes())
		if err != nil {
			return err
		}
		removed[idx] = struct{}{}
	}
	return h.SetRemovedAll(removed)
}

func TestCBNSOnClique(t *testing.T) {
	h, err := handle.NewCnp(cliqueAdj(5), 2, 1)
	require.NoError(t, err)
	require.NoError(t, initRemoved(h, 2, rng.New(1)))

	res, err := CBNS(h, rng.New(2), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Objective)
}

func TestCHNSOnStarRemovesHub(t *testing.T) {
	h, err := handle.NewCnp(starAdj(6), 1, 7)
	require.NoError(t, err)
	require.NoError(t, initRemoved(h, 1, rng.New(7)))

	res, err := CHNS(h, rng.New(8), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
}

func TestDLASOnClique(t *testing.T) {
	h, err := handle.NewCnp(cliqueAdj(5), 2, 3)
	require.NoError(t, err)
	require.NoError(t, initRemoved(h, 2, rng.New(3)))

	res, err := DLAS(h, rng.New(4), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Objective)
}

func TestRunUnknownStrategy(t *testing.T) {
	h, err := handle.NewCnp(cliqueAdj(4), 1, 1)
	require.NoError(t, err)
	_, err = Run("nonsense", h, rng.New(1), nil)
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestBCLSOnDcnpStar(t *testing.T) {
	h, err := handle.NewDcnp(starAdj(6), 2, 1, 9)
	require.NoError(t, err)
	require.NoError(t, initRemoved(h, 1, rng.New(9)))

	res, err := BCLS(h, rng.New(10), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Objective, 0)
}
