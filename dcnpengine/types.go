package dcnpengine

import (
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/rng"
)

// InvalidNode is the sentinel "no candidate" node id returned by
// FindBestToRemove and FindBestToAdd when no valid move exists.
const InvalidNode = -1

// Engine is the incremental DCNP K-hop structure described in spec
// §4.C: a packed n*n bitset of per-vertex K-hop reachability, a
// removed mask, and reusable BFS/betweenness scratch buffers.
type Engine struct {
	n int
	k int
	K int

	adj core.AdjList // original snapshot; mutated in place only by GetReducedBy
	cur core.AdjList

	removed  map[int]struct{}
	excised  map[int]struct{} // vertices permanently cut by GetReducedBy
	intree   []uint64         // packed bitset, n*n bits, row-major
	treeSize []int

	rng *rng.Source

	bfsVisited []int64
	bfsEpoch   int64
	bfsLevel   []int
	bfsQueue   []int

	betweenness []float64
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

// Budget returns k, the current removal budget (mutated by
// GetReducedBy).
func (e *Engine) Budget() int { return e.k }

// HopLimit returns K, the BFS depth limit.
func (e *Engine) HopLimit() int { return e.K }

// Removed reports whether v is currently in the removed mask.
func (e *Engine) Removed(v int) bool {
	_, ok := e.removed[v]
	return ok
}

// RemovedMask returns a copy of the current removed-vertex set.
func (e *Engine) RemovedMask() map[int]struct{} {
	return core.CloneMask(e.removed)
}

// NumRemoved returns |S|.
func (e *Engine) NumRemoved() int { return len(e.removed) }

// TreeSize returns tree_size[v]: the number of u != v with
// intree[v][u] == 1.
func (e *Engine) TreeSize(v int) int { return e.treeSize[v] }

func bitIndex(n, v, u int) (word int, bit uint) {
	idx := v*n + u
	return idx / 64, uint(idx % 64)
}

func (e *Engine) getBit(v, u int) bool {
	w, b := bitIndex(e.n, v, u)
	return e.intree[w]&(1<<b) != 0
}

func (e *Engine) setBit(v, u int) {
	w, b := bitIndex(e.n, v, u)
	e.intree[w] |= 1 << b
}

func (e *Engine) clearRow(v int) {
	for u := 0; u < e.n; u++ {
		w, b := bitIndex(e.n, v, u)
		e.intree[w] &^= 1 << b
	}
}

// InTree reports whether u is within K hops of v in the current graph
// (intree[v][u]).
func (e *Engine) InTree(v, u int) bool { return e.getBit(v, u) }
