package population

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
	"github.com/xuebo100/pycnp/strategy"
)

// maxDedupRetries bounds the "nudge and retry" loop in
// generateNonDuplicate (spec §4.G).
const maxDedupRetries = 10

// generateNonDuplicate clones the master graph, fills a fresh
// uniformly-chosen removed mask of size k, runs the configured
// strategy once, and — if the result duplicates an existing item — up
// to maxDedupRetries times nudges it with one best-add plus one
// random-remove and retries. Each call derives its own sub-seed from
// the driver seed and a monotonically increasing counter, never from
// a process-wide global (spec §9).
func (m *Manager) generateNonDuplicate() (map[int]struct{}, int, error) {
	subSeed := rng.DeriveSeed(m.driverSeed, m.genCounter)
	m.genCounter++
	src := rng.New(subSeed)

	clone := m.master.Clone()
	k := clone.Budget()
	removed := make(map[int]struct{}, k)
	for len(removed) < k {
		idx, err := src.Index(clone.NumNodes())
		if err != nil {
			return nil, 0, err
		}
		removed[idx] = struct{}{}
	}
	if err := clone.SetRemovedAll(removed); err != nil {
		return nil, 0, err
	}

	res, err := strategy.Run(m.cfg.StrategyName, clone, src, nil)
	if err != nil {
		return nil, 0, err
	}

	sol, obj := res.Solution, res.Objective
	for attempt := 0; attempt < maxDedupRetries && m.IsDuplicate(sol); attempt++ {
		if err := clone.SetRemovedAll(sol); err != nil {
			return nil, 0, err
		}
		if addV, err := clone.FindBestToAdd(); err != nil {
			return nil, 0, err
		} else if addV != handle.InvalidNode {
			if err := clone.Add(addV); err != nil {
				return nil, 0, err
			}
		}
		remV, err := clone.RandomRemove()
		if err != nil {
			return nil, 0, err
		}
		if err := clone.Remove(remV); err != nil {
			return nil, 0, err
		}
		sol = clone.RemovedMask()
		obj = clone.Objective()
	}
	return sol, obj, nil
}

// Initialize clears the population and generates up to
// cfg.InitialPopSize non-duplicate solutions, adding each one. It
// returns early with the solution/objective of any candidate that
// trips sc, before that candidate is added to the population.
func (m *Manager) Initialize(sc stop.Criterion) (map[int]struct{}, int, error) {
	m.items = m.items[:0]
	for i := 0; i < m.cfg.InitialPopSize; i++ {
		sol, obj, err := m.generateNonDuplicate()
		if err != nil {
			return nil, 0, err
		}
		if sc != nil && sc.ShouldStop(float64(obj)) {
			return sol, obj, nil
		}
		m.Add(sol, obj)
	}
	best := m.BestItem()
	return best.Solution, best.Objective, nil
}
