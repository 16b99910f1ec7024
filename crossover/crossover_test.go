package crossover

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

func pathAdj(n int) core.AdjList {
	adj := core.NewAdjList(n)
	for i := 0; i < n-1; i++ {
		adj.AddEdge(i, i+1)
	}
	return adj
}

func TestDBXProducesBudgetSizedOffspring(t *testing.T) {
	master, err := handle.NewCnp(cliqueAdj(8), 3, 1)
	require.NoError(t, err)

	p1 := map[int]struct{}{0: {}, 1: {}, 2: {}}
	p2 := map[int]struct{}{1: {}, 2: {}, 3: {}}

	offspring, err := DBX(master, p1, p2, rng.New(5))
	require.NoError(t, err)
	assert.Equal(t, 3, offspring.NumRemoved())
}

func TestRSCRejectsBetaOutOfRange(t *testing.T) {
	master, err := handle.NewCnp(cliqueAdj(6), 2, 1)
	require.NoError(t, err)
	_, err = RSC(master, map[int]struct{}{0: {}}, map[int]struct{}{0: {}}, 1.5, "", rng.New(1))
	require.ErrorIs(t, err, ErrBetaOutOfRange)
}

func TestRSCOnCnpProducesBudgetSizedOffspring(t *testing.T) {
	master, err := handle.NewCnp(pathAdj(10), 3, 1)
	require.NoError(t, err)

	p1 := map[int]struct{}{0: {}, 3: {}, 6: {}}
	p2 := map[int]struct{}{3: {}, 6: {}, 9: {}}

	offspring, err := RSC(master, p1, p2, 0.5, "", rng.New(2))
	require.NoError(t, err)
	assert.LessOrEqual(t, offspring.NumRemoved(), 3)
}

func TestIRROnDcnpKeepsBackboneWithinBudget(t *testing.T) {
	master, err := handle.NewDcnp(pathAdj(10), 2, 3, 3)
	require.NoError(t, err)

	parents := [3]map[int]struct{}{
		{0: {}, 3: {}, 6: {}},
		{3: {}, 6: {}, 9: {}},
		{3: {}, 6: {}, 1: {}},
	}

	offspring, err := IRR(master, parents, rng.New(4))
	require.NoError(t, err)
	assert.LessOrEqual(t, offspring.NumRemoved(), 3)
	assert.GreaterOrEqual(t, offspring.NumRemoved(), 2) // backbone {3,6} at minimum
}
