package crossover

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/strategy"
)

// RSC (Reduce-and-Search Crossover, two-sided): excises the
// probabilistically-chosen backbone intersection from a throwaway
// working clone's search space via GetReducedBy, generates a random
// feasible solution over the reduced graph, improves it with the
// named local-search strategy (defaulting to CHNS for CNP and BCLS
// for DCNP), and reassembles the offspring as backbone ∪ search
// result on a fresh clone of the original graph.
//
// strategyName may be empty to use the per-kind default. beta must
// lie in [0,1].
func RSC(master *handle.GraphHandle, parent1, parent2 map[int]struct{}, beta float64, strategyName string, rngSrc *rng.Source) (*handle.GraphHandle, error) {
	if beta < 0 || beta > 1 {
		return nil, ErrBetaOutOfRange
	}

	t := make(map[int]struct{})
	for v := range parent1 {
		if _, inBoth := parent2[v]; inBoth && rngSrc.Bool(beta) {
			t[v] = struct{}{}
		}
	}

	working := master.Clone()
	if err := working.GetReducedBy(t); err != nil {
		return nil, err
	}

	available := working.AvailableNodes()
	reducedK := working.Budget()
	removed := make(map[int]struct{}, reducedK)
	for len(removed) < reducedK {
		idx, err := rngSrc.Index(len(available))
		if err != nil {
			return nil, err
		}
		removed[available[idx]] = struct{}{}
	}
	if err := working.SetRemovedAll(removed); err != nil {
		return nil, err
	}

	name := strategyName
	if name == "" {
		if working.Kind() == handle.Cnp {
			name = strategy.CHNSName
		} else {
			name = strategy.BCLSName
		}
	}
	res, err := strategy.Run(name, working, rngSrc, nil)
	if err != nil {
		return nil, err
	}

	final := make(map[int]struct{}, len(t)+len(res.Solution))
	for v := range t {
		final[v] = struct{}{}
	}
	for v := range res.Solution {
		final[v] = struct{}{}
	}

	offspring := master.Clone()
	if err := offspring.SetRemovedAll(final); err != nil {
		return nil, err
	}
	return offspring, nil
}

