package memetic

import (
	"time"

	"github.com/xuebo100/pycnp/builder"
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/crossover"
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/population"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
	"github.com/xuebo100/pycnp/strategy"
)

// driverStream is the substream identifier the driver's own RNG
// (tournament draws, crossover coin flips) is derived from, kept well
// clear of the small counters population.Manager uses for its
// per-generation non-duplicate-solution sub-seeds so the two streams
// never collide despite sharing the same top-level seed.
const driverStream = uint64(1) << 62

// Solve builds a master handle.GraphHandle for problemType over adj
// with removal budget, initializes a population.Manager configured by
// popCfg, and runs the crossover-then-local-search loop described by
// params until sc fires. hopDistance is only meaningful for DCNP.
func Solve(problemType ProblemType, budget int, sc stop.Criterion, seed int64, params builder.MemeticParams, popCfg population.Config, hopDistance int, adj core.AdjList) (Result, error) {
	start := time.Now()

	if budget > adj.NumNodes() {
		return Result{}, core.ErrBudgetExceedsOrder
	}

	master, err := buildMaster(problemType, adj, hopDistance, budget, seed)
	if err != nil {
		return Result{}, err
	}

	popCfg.StrategyName = params.StrategyName
	popCfg.Logger = params.Logger
	pop := population.New(master, popCfg, seed)
	driverRNG := rng.New(rng.DeriveSeed(seed, driverStream))

	var stats *RunStats
	if params.CollectStats {
		stats = &RunStats{}
	}

	bestSol, bestObj, err := pop.Initialize(sc)
	if err != nil {
		return Result{}, err
	}
	bestFoundAt := time.Since(start)
	params.Logger.Info().Int("popSize", pop.Size()).Int("bestObj", bestObj).Msg("population initialized")

	if pop.Size() < popCfg.InitialPopSize {
		// Initialize returned early: a candidate tripped sc before it
		// was even added to the population.
		return Result{
			BestSolution:    bestSol,
			BestObjValue:    bestObj,
			Runtime:         time.Since(start),
			BestFoundAtTime: bestFoundAt,
			Stats:           stats,
		}, nil
	}

	iterations := 0
	idle := 0
	lastDisplay := start
	for {
		sol, obj, err := runGeneration(master, pop, params, driverRNG)
		if err != nil {
			return Result{}, err
		}

		if obj < bestObj {
			bestObj = obj
			bestSol = sol
			bestFoundAt = time.Since(start)
			idle = 0
		} else {
			idle++
		}

		if err := pop.Update(sol, obj, idle); err != nil {
			return Result{}, err
		}
		iterations++

		if stats != nil {
			stats.BestObjPerIteration = append(stats.BestObjPerIteration, bestObj)
			stats.PopSizePerIteration = append(stats.PopSizePerIteration, pop.Size())
			stats.IdleGensPerIteration = append(stats.IdleGensPerIteration, idle)
		}
		params.Logger.Debug().Int("iteration", iterations).Int("bestObj", bestObj).Int("idle", idle).Msg("generation complete")
		if params.Display && time.Since(lastDisplay) >= params.DisplayInterval {
			lastDisplay = time.Now()
			params.Logger.Info().Int("iteration", iterations).Int("bestObj", bestObj).Int("idle", idle).Msg("progress")
		}

		if sc != nil && sc.ShouldStop(float64(bestObj)) {
			break
		}
	}

	return Result{
		BestSolution:    bestSol,
		BestObjValue:    bestObj,
		NumIterations:   iterations,
		Runtime:         time.Since(start),
		BestFoundAtTime: bestFoundAt,
		Stats:           stats,
	}, nil
}

func buildMaster(pt ProblemType, adj core.AdjList, hopDistance, budget int, seed int64) (*handle.GraphHandle, error) {
	switch pt {
	case CNP:
		return handle.NewCnp(adj, budget, seed)
	case DCNP:
		return handle.NewDcnp(adj, hopDistance, budget, seed)
	default:
		return nil, ErrUnknownProblemType
	}
}

// runGeneration selects parents via tournament (DBX, RSC) or
// GetAllThree (IRR), runs the configured crossover to produce an
// offspring handle, and improves it with one run of the configured
// local-search strategy. It returns the strategy's best-found solution
// and objective directly, without re-applying them to the now-discarded
// offspring handle.
func runGeneration(master *handle.GraphHandle, pop *population.Manager, params builder.MemeticParams, driverRNG *rng.Source) (map[int]struct{}, int, error) {
	offspring, err := cross(master, pop, params, driverRNG)
	if err != nil {
		return nil, 0, err
	}

	res, err := strategy.Run(params.StrategyName, offspring, driverRNG, nil)
	if err != nil {
		return nil, 0, err
	}
	return res.Solution, res.Objective, nil
}

func cross(master *handle.GraphHandle, pop *population.Manager, params builder.MemeticParams, driverRNG *rng.Source) (*handle.GraphHandle, error) {
	switch params.CrossoverName {
	case crossover.DBXName:
		p1, p2, err := selectTwoSolutions(pop, driverRNG)
		if err != nil {
			return nil, err
		}
		return crossover.DBX(master, p1, p2, driverRNG)
	case crossover.RSCName:
		p1, p2, err := selectTwoSolutions(pop, driverRNG)
		if err != nil {
			return nil, err
		}
		return crossover.RSC(master, p1, p2, params.RSCBeta, params.RSCStrategyName, driverRNG)
	case crossover.IRRName:
		parents, err := pop.GetAllThree()
		if err != nil {
			return nil, err
		}
		return crossover.IRR(master, parents, driverRNG)
	default:
		return nil, crossover.ErrUnknownCrossover
	}
}

func selectTwoSolutions(pop *population.Manager, driverRNG *rng.Source) (map[int]struct{}, map[int]struct{}, error) {
	i, j, err := pop.TournamentSelectTwo(driverRNG)
	if err != nil {
		return nil, nil, err
	}
	items := pop.Items()
	return items[i].Solution, items[j].Solution, nil
}
