// Command cnpsolve is a thin CLI wiring a graph reader, memetic.Solve
// and a result printer together: it parses a graph file, resolves the
// requested strategy/crossover/stopping criterion, runs the solver,
// and prints the resulting removal set and objective. All of the
// actual solving logic lives in the memetic, strategy and crossover
// packages; this command owns none of it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/xuebo100/pycnp/builder"
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/memetic"
	"github.com/xuebo100/pycnp/reader"
	"github.com/xuebo100/pycnp/stop"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cnpsolve:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cnpsolve", flag.ExitOnError)
	var (
		graphPath    = fs.String("graph", "", "path to a graph file (adjacency-list or DIMACS-like edge-list format)")
		format       = fs.String("format", "adjlist", "graph file format: \"adjlist\" or \"edgelist\"")
		problem      = fs.String("problem", memetic.CNPName, "problem type: CNP or DCNP")
		budget       = fs.Int("k", 1, "removal budget k")
		hopDistance  = fs.Int("hop", 2, "DCNP hop limit K (ignored for CNP)")
		strategyName = fs.String("strategy", "CBNS", "local-search strategy: CBNS, CHNS, DLAS or BCLS")
		crossName    = fs.String("crossover", "DBX", "crossover operator: DBX, IRR or RSC")
		rscBeta      = fs.Float64("rsc-beta", builder.DefaultRSCBeta, "RSC backbone-retention probability beta in [0,1]")
		seed         = fs.Int64("seed", 1, "RNG seed")
		maxIters     = fs.Int("max-iterations", 0, "stop after this many generations (0 disables)")
		maxRuntime   = fs.Duration("max-runtime", 0, "stop after this wall-clock duration (0 disables)")
		noImprove    = fs.Int("no-improvement", 0, "stop after this many idle generations (0 disables)")
		verbose      = fs.Bool("verbose", false, "log per-generation progress at debug level")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *graphPath == "" {
		return fmt.Errorf("cnpsolve: -graph is required")
	}

	f, err := os.Open(*graphPath)
	if err != nil {
		return fmt.Errorf("cnpsolve: %w", err)
	}
	defer f.Close()

	var adj core.AdjList
	switch *format {
	case "adjlist":
		adj, _, err = reader.ReadAdjacencyList(f)
	case "edgelist":
		adj, _, err = reader.ReadEdgeList(f)
	default:
		return fmt.Errorf("cnpsolve: unknown -format %q", *format)
	}
	if err != nil {
		return fmt.Errorf("cnpsolve: %w", err)
	}

	problemType, err := memetic.ParseProblemType(*problem)
	if err != nil {
		return fmt.Errorf("cnpsolve: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	params, err := builder.NewMemeticParams(
		builder.WithStrategy(*strategyName),
		builder.WithCrossover(*crossName),
		builder.WithRSCBeta(*rscBeta),
		builder.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("cnpsolve: %w", err)
	}
	popCfg, err := builder.NewPopulationParams(params.StrategyName, logger)
	if err != nil {
		return fmt.Errorf("cnpsolve: %w", err)
	}

	sc := resolveStoppingCriterion(*maxIters, *maxRuntime, *noImprove)

	res, err := memetic.Solve(problemType, *budget, sc, *seed, params, popCfg, *hopDistance, adj)
	if err != nil {
		return fmt.Errorf("cnpsolve: %w", err)
	}

	printResult(res)
	return nil
}

// resolveStoppingCriterion OR-combines every criterion whose flag was
// given a positive value; a MaxIterations(1000) safety net is always
// included so an all-zero flag set still terminates.
func resolveStoppingCriterion(maxIters int, maxRuntime time.Duration, noImprove int) stop.Criterion {
	members := []stop.Criterion{stop.NewMaxIterations(1000)}
	if maxIters > 0 {
		members = append(members, stop.NewMaxIterations(maxIters))
	}
	if maxRuntime > 0 {
		members = append(members, stop.NewMaxRuntime(maxRuntime))
	}
	if noImprove > 0 {
		members = append(members, stop.NewNoImprovement(noImprove))
	}
	return stop.NewCombined(members...)
}

func printResult(res memetic.Result) {
	fmt.Printf("best objective:      %d\n", res.BestObjValue)
	fmt.Printf("generations run:     %d\n", res.NumIterations)
	fmt.Printf("runtime:             %s\n", res.Runtime)
	fmt.Printf("best found at:       %s\n", res.BestFoundAtTime)
	fmt.Printf("removed vertices (%d): ", len(res.BestSolution))
	first := true
	for v := range res.BestSolution {
		if !first {
			fmt.Print(", ")
		}
		fmt.Print(v)
		first = false
	}
	fmt.Println()
}
