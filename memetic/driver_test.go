package memetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuebo100/pycnp/builder"
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/crossover"
	"github.com/xuebo100/pycnp/stop"
	"github.com/xuebo100/pycnp/strategy"
)

func emptyAdj(n int) core.AdjList { return core.NewAdjList(n) }

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

func pathAdj(n int) core.AdjList {
	adj := core.NewAdjList(n)
	for i := 0; i < n-1; i++ {
		adj.AddEdge(i, i+1)
	}
	return adj
}

func TestSolveEmptyGraphObjectiveIsZero(t *testing.T) {
	params, err := builder.NewMemeticParams(builder.WithStrategy(strategy.CBNSName), builder.WithCrossover(crossover.DBXName))
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(3), builder.WithAdaptive(false))
	require.NoError(t, err)

	res, err := Solve(CNP, 2, stop.NewMaxIterations(5), 1, params, popCfg, 0, emptyAdj(5))
	require.NoError(t, err)
	assert.Equal(t, 0, res.BestObjValue)
}

func TestSolveCliqueObjective(t *testing.T) {
	params, err := builder.NewMemeticParams(builder.WithStrategy(strategy.CBNSName), builder.WithCrossover(crossover.DBXName))
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(3), builder.WithAdaptive(false))
	require.NoError(t, err)

	res, err := Solve(CNP, 2, stop.NewMaxIterations(5), 1, params, popCfg, 0, cliqueAdj(5))
	require.NoError(t, err)
	assert.Equal(t, 3, res.BestObjValue)
}

func TestSolveStarHubIsCritical(t *testing.T) {
	params, err := builder.NewMemeticParams(builder.WithStrategy(strategy.CBNSName), builder.WithCrossover(crossover.DBXName))
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(3), builder.WithAdaptive(false))
	require.NoError(t, err)

	res, err := Solve(CNP, 1, stop.NewMaxIterations(5), 1, params, popCfg, 0, starAdj(6))
	require.NoError(t, err)
	assert.Equal(t, 0, res.BestObjValue)
}

func TestSolvePathGraphBoundedObjective(t *testing.T) {
	params, err := builder.NewMemeticParams(builder.WithStrategy(strategy.CHNSName), builder.WithCrossover(crossover.DBXName))
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(5), builder.WithAdaptive(false))
	require.NoError(t, err)

	res, err := Solve(CNP, 3, stop.NewNoImprovement(50), 42, params, popCfg, 0, pathAdj(10))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.BestObjValue, 4)
}

func TestSolveRejectsBudgetOverOrder(t *testing.T) {
	params, err := builder.NewMemeticParams()
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger)
	require.NoError(t, err)

	_, err = Solve(CNP, 100, stop.NewMaxIterations(1), 1, params, popCfg, 0, pathAdj(5))
	require.ErrorIs(t, err, core.ErrBudgetExceedsOrder)
}

func TestSolveIsSeedDeterministic(t *testing.T) {
	params, err := builder.NewMemeticParams(builder.WithStrategy(strategy.CBNSName), builder.WithCrossover(crossover.DBXName))
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(4), builder.WithAdaptive(false))
	require.NoError(t, err)

	res1, err := Solve(CNP, 3, stop.NewMaxIterations(10), 7, params, popCfg, 0, pathAdj(12))
	require.NoError(t, err)
	res2, err := Solve(CNP, 3, stop.NewMaxIterations(10), 7, params, popCfg, 0, pathAdj(12))
	require.NoError(t, err)

	assert.Equal(t, res1.BestObjValue, res2.BestObjValue)
	assert.Equal(t, res1.BestSolution, res2.BestSolution)
}

func TestSolveBestObjNonIncreasingAcrossIterations(t *testing.T) {
	params, err := builder.NewMemeticParams(
		builder.WithStrategy(strategy.CBNSName),
		builder.WithCrossover(crossover.DBXName),
		builder.WithStats(true),
	)
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(4), builder.WithAdaptive(false))
	require.NoError(t, err)

	res, err := Solve(CNP, 3, stop.NewMaxIterations(15), 3, params, popCfg, 0, pathAdj(10))
	require.NoError(t, err)
	require.NotNil(t, res.Stats)
	for i := 1; i < len(res.Stats.BestObjPerIteration); i++ {
		assert.LessOrEqual(t, res.Stats.BestObjPerIteration[i], res.Stats.BestObjPerIteration[i-1])
	}
	assert.Equal(t, len(res.Stats.BestObjPerIteration), res.NumIterations)
}

func TestSolveDcnpWithBcls(t *testing.T) {
	params, err := builder.NewMemeticParams(builder.WithStrategy(strategy.BCLSName), builder.WithCrossover(crossover.IRRName))
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger, builder.WithInitialPopSize(3), builder.WithAdaptive(false))
	require.NoError(t, err)

	res, err := Solve(DCNP, 2, stop.NewMaxIterations(3), 5, params, popCfg, 2, pathAdj(10))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.BestObjValue, 0)
}

func TestSolveUnknownProblemType(t *testing.T) {
	params, err := builder.NewMemeticParams()
	require.NoError(t, err)
	popCfg, err := builder.NewPopulationParams(params.StrategyName, params.Logger)
	require.NoError(t, err)

	_, err = Solve(ProblemType(99), 1, stop.NewMaxIterations(1), 1, params, popCfg, 0, pathAdj(5))
	require.ErrorIs(t, err, ErrUnknownProblemType)
}
