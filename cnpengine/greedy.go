package cnpengine

import (
	"errors"

	"github.com/xuebo100/pycnp/core"
)

// ErrNoRemovedNodes is returned by GreedyAdd when the removed mask is
// empty (nothing to add back).
var ErrNoRemovedNodes = errors.New("cnpengine: no removed nodes to add")

// ConnectionGain returns the pair-count delta that would result from
// adding v back: C(T,2) minus the sum of C(size,2) over the distinct
// neighboring components v would join, where T is 1 plus the combined
// size of those components.
func (e *Engine) ConnectionGain(v int) int {
	seen := make(map[int]struct{})
	total := 1
	oldSum := 0
	for u := range e.adj[v] {
		ci := e.nodeToComponent[u]
		if ci == -1 {
			continue
		}
		if _, ok := seen[ci]; ok {
			continue
		}
		seen[ci] = struct{}{}
		size := e.components[ci].Size
		total += size
		oldSum += core.PairCount(size)
	}
	return core.PairCount(total) - oldSum
}

// GreedyAdd selects, among currently removed vertices, the one whose
// reinsertion minimizes the resulting pair-count gain, breaking ties
// uniformly. Returns ErrNoRemovedNodes if the removed mask is empty.
func (e *Engine) GreedyAdd() (int, error) {
	if len(e.removed) == 0 {
		return 0, ErrNoRemovedNodes
	}
	removedIDs := make([]int, 0, len(e.removed))
	for v := range e.removed {
		removedIDs = append(removedIDs, v)
	}
	sortInts(removedIDs)

	minGain := 0
	candidates := make([]int, 0, 4)
	for i, v := range removedIDs {
		gain := e.ConnectionGain(v)
		if i == 0 || gain < minGain {
			minGain = gain
			candidates = candidates[:0]
			candidates = append(candidates, v)
		} else if gain == minGain {
			candidates = append(candidates, v)
		}
	}
	return e.pickUniform(candidates)
}

// RandomRemove uniformly picks a vertex from a uniformly-chosen
// component (spec §4.B: "uniformly pick a vertex from a random
// component").
func (e *Engine) RandomRemove() (int, error) {
	if len(e.components) == 0 {
		return 0, core.ErrEmptyComponentSelection
	}
	ci, err := e.rng.Index(len(e.components))
	if err != nil {
		return 0, err
	}
	return e.RandomNodeFrom(ci)
}
