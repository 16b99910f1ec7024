package crossover

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
)

// IRR tunables (spec §4.F): seed the offspring with every
// frequency-3 vertex, then fill by frequency tier up to
// irrTargetRatio·k before letting find_best_to_remove finish the job.
const (
	irrTargetRatio = 0.9
	irrP2          = 0.5
	irrP1          = 0.9
)

// IRR (Intersection-Ratio Recombination, DCNP-oriented): seeds the
// offspring with vertices removed by all three parents, fills toward
// 0.9·k by preferring frequency-2 then frequency-1 then frequency-0
// vertices, and completes to exactly k via repeated find_best_to_remove.
func IRR(master *handle.GraphHandle, parents [3]map[int]struct{}, rngSrc *rng.Source) (*handle.GraphHandle, error) {
	n := master.NumNodes()
	freq := make([]int, n)
	for _, p := range parents {
		for v := range p {
			freq[v]++
		}
	}

	t := make(map[int]struct{})
	var freq2, freq1, freq0 []int
	for v := 0; v < n; v++ {
		switch freq[v] {
		case 3:
			t[v] = struct{}{}
		case 2:
			freq2 = append(freq2, v)
		case 1:
			freq1 = append(freq1, v)
		case 0:
			freq0 = append(freq0, v)
		}
	}

	k := master.Budget()
	target := int(irrTargetRatio * float64(k))

	for len(t) < target {
		if len(freq2) == 0 && len(freq1) == 0 && len(freq0) == 0 {
			break
		}
		r := rngSrc.Probability()
		switch {
		case r < irrP2 && len(freq2) > 0:
			freq2 = pickAndDrop(freq2, rngSrc, t)
		case r < irrP2+(1-irrP2)*irrP1 && len(freq1) > 0:
			freq1 = pickAndDrop(freq1, rngSrc, t)
		case len(freq0) > 0:
			freq0 = pickAndDrop(freq0, rngSrc, t)
		}
	}

	offspring := master.Clone()
	if err := offspring.SetRemovedAll(t); err != nil {
		return nil, err
	}

	for offspring.NumRemoved() < k {
		v, err := offspring.FindBestToRemove()
		if err != nil {
			return nil, err
		}
		if v == handle.InvalidNode {
			break
		}
		if err := offspring.Remove(v); err != nil {
			return nil, err
		}
	}
	return offspring, nil
}

// pickAndDrop uniformly picks a vertex from pool, adds it to t, and
// returns pool with that entry removed (swap-with-last).
func pickAndDrop(pool []int, rngSrc *rng.Source, t map[int]struct{}) []int {
	idx, err := rngSrc.Index(len(pool))
	if err != nil {
		return pool
	}
	v := pool[idx]
	t[v] = struct{}{}
	pool[idx] = pool[len(pool)-1]
	return pool[:len(pool)-1]
}
