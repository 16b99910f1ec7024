package population

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

func newTestManager(t *testing.T, initial, max, increase, idleGens int, adaptive bool) *Manager {
	t.Helper()
	master, err := handle.NewCnp(cliqueAdj(8), 3, 11)
	require.NoError(t, err)
	cfg := Config{
		InitialPopSize:  initial,
		MaxPopSize:      max,
		IncreasePopSize: increase,
		MaxIdleGens:     idleGens,
		Adaptive:        adaptive,
		StrategyName:    "CBNS",
	}
	return New(master, cfg, 42)
}

func TestAddComputesSymmetricSimilarity(t *testing.T) {
	m := newTestManager(t, 0, 10, 1, 3, false)
	m.Add(map[int]struct{}{0: {}, 1: {}, 2: {}}, 1)
	m.Add(map[int]struct{}{1: {}, 2: {}, 3: {}}, 2)

	require.Len(t, m.items, 2)
	require.Len(t, m.items[0].Similarities, 1)
	require.Len(t, m.items[1].Similarities, 1)
	assert.Equal(t, m.items[0].Similarities[0].Similarity, m.items[1].Similarities[0].Similarity)
	assert.Equal(t, m.items[1].ID, m.items[0].Similarities[0].OtherID)
}

func TestIsDuplicate(t *testing.T) {
	m := newTestManager(t, 0, 10, 1, 3, false)
	m.Add(map[int]struct{}{0: {}, 1: {}, 2: {}}, 1)
	assert.True(t, m.IsDuplicate(map[int]struct{}{0: {}, 1: {}, 2: {}}))
	assert.False(t, m.IsDuplicate(map[int]struct{}{0: {}, 1: {}, 3: {}}))
}

func TestRemoveWorstShrinksByOneAndScrubsSimilarities(t *testing.T) {
	m := newTestManager(t, 0, 10, 1, 3, false)
	m.Add(map[int]struct{}{0: {}, 1: {}, 2: {}}, 5)
	m.Add(map[int]struct{}{1: {}, 2: {}, 3: {}}, 1)
	m.Add(map[int]struct{}{2: {}, 3: {}, 4: {}}, 3)

	before := m.Size()
	m.RemoveWorst()
	assert.Equal(t, before-1, m.Size())

	for _, it := range m.items {
		for _, s := range it.Similarities {
			found := false
			for _, other := range m.items {
				if other.ID == s.OtherID {
					found = true
				}
			}
			assert.True(t, found, "stale similarity entry for removed item")
		}
	}
}

func TestTournamentSelectTwoReturnsDistinctIndices(t *testing.T) {
	m := newTestManager(t, 0, 10, 1, 3, false)
	m.Add(map[int]struct{}{0: {}, 1: {}, 2: {}}, 5)
	m.Add(map[int]struct{}{1: {}, 2: {}, 3: {}}, 1)
	m.Add(map[int]struct{}{2: {}, 3: {}, 4: {}}, 3)

	src := rng.New(7)
	a, b, err := m.TournamentSelectTwo(src)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGetAllThreeFailsWhenSizeNotThree(t *testing.T) {
	m := newTestManager(t, 0, 10, 1, 3, false)
	m.Add(map[int]struct{}{0: {}, 1: {}, 2: {}}, 5)
	_, err := m.GetAllThree()
	require.ErrorIs(t, err, ErrPopulationSizeNotThree)
}

func TestFitnessMonotonicityForFixedDiversity(t *testing.T) {
	m := newTestManager(t, 0, 10, 1, 3, false)
	// Two items with identical solutions-shape similarity pattern but
	// different objectives: lower cost must get lower (better) fitness.
	m.Add(map[int]struct{}{0: {}, 1: {}, 2: {}}, 10)
	m.Add(map[int]struct{}{3: {}, 4: {}, 5: {}}, 2)
	m.UpdateFitness()
	assert.Less(t, m.items[1].Fitness, m.items[0].Fitness)
}

func TestInitializeProducesPopulation(t *testing.T) {
	m := newTestManager(t, 4, 10, 1, 3, false)
	sol, obj, err := m.Initialize(nil)
	require.NoError(t, err)
	assert.NotNil(t, sol)
	assert.GreaterOrEqual(t, obj, 0)
	assert.Equal(t, 4, m.Size())
}
