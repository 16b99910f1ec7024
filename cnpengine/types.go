package cnpengine

import (
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/rng"
)

// Component is a maximal set of mutually-reachable non-removed
// vertices under the current adjacency. Members carry the component's
// vertices in discovery order; order is otherwise insignificant.
type Component struct {
	Size    int
	Members []int
}

// Engine is the incremental CNP connectivity structure described in
// spec §4.B: it owns a mutable current adjacency, a removed mask, the
// component decomposition, a per-vertex age table, and scratch space
// reused by Tarjan-based impact selection.
type Engine struct {
	n   int
	k   int
	adj core.AdjList // original snapshot captured at Build; mutated in place only by GetReducedBy
	cur core.AdjList // current = adj minus edges incident to removed vertices

	removed         map[int]struct{}
	excised         map[int]struct{} // vertices permanently cut by GetReducedBy
	components      []Component
	nodeToComponent []int
	connectedPairs  int
	age             []int64
	step            int64

	rng *rng.Source

	// dfs scratch: visited epoch marker, avoids re-zeroing on every call.
	visitEpoch []int64
	curEpoch   int64
	dfsStack   []int

	// tj is not read or written by any method: ImpactNodeFrom
	// allocates its Tarjan bookkeeping arrays afresh on every call.
	tj tarjanScratch
}

type tarjanScratch struct {
	dfn, low, stSize, cutSize, impact []int
	isCut                             []bool
	flag                              []int
	stack                             []tarjanFrame
}

// NumNodes returns n, the fixed vertex universe size.
func (e *Engine) NumNodes() int { return e.n }

// AvailableNodes returns every vertex not yet permanently excised by
// GetReducedBy, in ascending order. On an engine that has never had
// GetReducedBy called it is every vertex in [0,n).
func (e *Engine) AvailableNodes() []int {
	out := make([]int, 0, e.n-len(e.excised))
	for v := 0; v < e.n; v++ {
		if _, cut := e.excised[v]; !cut {
			out = append(out, v)
		}
	}
	return out
}

// Budget returns k, the maximum number of vertices that may be removed.
func (e *Engine) Budget() int { return e.k }

// Removed reports whether v is currently in the removed mask.
func (e *Engine) Removed(v int) bool {
	_, ok := e.removed[v]
	return ok
}

// RemovedMask returns a copy of the current removed-vertex set.
func (e *Engine) RemovedMask() map[int]struct{} {
	return core.CloneMask(e.removed)
}

// NumRemoved returns |S|, the size of the current removed mask.
func (e *Engine) NumRemoved() int { return len(e.removed) }

// Objective returns connected_pairs, the CNP objective for the current
// removed mask.
func (e *Engine) Objective() int { return e.connectedPairs }

// Components returns the current component decomposition. Callers must
// not mutate the returned slice or its Members slices.
func (e *Engine) Components() []Component { return e.components }

// SetNodeAge records step as the last add/remove timestamp for v. Used
// by strategy.CBNS after each move.
func (e *Engine) SetNodeAge(v int, step int64) { e.age[v] = step }

// Step returns and increments the engine's internal move counter,
// mirroring the strategies' numSteps used for age-stamping.
func (e *Engine) Step() int64 {
	e.step++
	return e.step
}
