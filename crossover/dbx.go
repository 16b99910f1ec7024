package crossover

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
)

// dbxTheta is DBX's backbone-retention probability (spec §4.F).
const dbxTheta = 0.85

// DBX (Double-Backbone Crossover, CNP-oriented): backbone vertices
// present in both parents are kept with certainty; vertices unique to
// either parent are kept with probability θ. The resulting candidate
// set is then trimmed or padded to exactly k via component-based
// removal or greedy add-back.
func DBX(master *handle.GraphHandle, parent1, parent2 map[int]struct{}, rngSrc *rng.Source) (*handle.GraphHandle, error) {
	t := make(map[int]struct{})
	for v := range parent1 {
		if _, inBoth := parent2[v]; inBoth {
			t[v] = struct{}{}
		} else if rngSrc.Bool(dbxTheta) {
			t[v] = struct{}{}
		}
	}
	for v := range parent2 {
		if _, already := t[v]; already {
			continue
		}
		if rngSrc.Bool(dbxTheta) {
			t[v] = struct{}{}
		}
	}

	offspring := master.Clone()
	if err := offspring.SetRemovedAll(t); err != nil {
		return nil, err
	}
	k := offspring.Budget()

	for offspring.NumRemoved() < k {
		ci, err := offspring.SelectComponent()
		if err != nil {
			return nil, err
		}
		v, err := offspring.RandomNodeFrom(ci)
		if err != nil {
			return nil, err
		}
		if err := offspring.Remove(v); err != nil {
			return nil, err
		}
	}
	for offspring.NumRemoved() > k {
		v, err := offspring.GreedyAdd()
		if err != nil {
			return nil, err
		}
		if err := offspring.Add(v); err != nil {
			return nil, err
		}
	}
	return offspring, nil
}
