package dcnpengine

import (
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/rng"
)

// Build captures an adjacency snapshot for n vertices, sets the hop
// limit K, and computes every vertex's initial K-hop row.
func Build(adj core.AdjList, K, k int, seed int64) (*Engine, error) {
	n := adj.NumNodes()
	if k < 0 || k > n {
		return nil, core.ErrBudgetExceedsOrder
	}
	e := &Engine{
		n:          n,
		k:          k,
		K:          K,
		adj:        adj.Clone(),
		removed:    make(map[int]struct{}),
		excised:    make(map[int]struct{}),
		intree:     make([]uint64, (n*n+63)/64),
		treeSize:   make([]int, n),
		rng:        rng.New(seed),
		bfsVisited: make([]int64, n),
		bfsLevel:   make([]int, n),
		bfsQueue:   make([]int, n),
	}
	e.cur = e.adj.Clone()
	e.buildTree()
	return e, nil
}

func (e *Engine) buildTree() {
	for v := 0; v < e.n; v++ {
		e.bfsK(v)
	}
}

// bfsK recomputes row v from scratch: a bounded BFS over e.cur up to
// depth K, skipping removed vertices.
func (e *Engine) bfsK(v int) {
	e.clearRow(v)
	if e.Removed(v) {
		e.treeSize[v] = 0
		return
	}

	e.bfsEpoch++
	epoch := e.bfsEpoch
	head, tail := 0, 0
	e.bfsQueue[tail] = v
	tail++
	e.bfsVisited[v] = epoch
	e.bfsLevel[v] = 0

	visited := 0
	for head < tail {
		cur := e.bfsQueue[head]
		head++

		if e.bfsLevel[cur] < e.K {
			for _, nb := range core.SortedNeighbors(e.cur, cur) {
				if e.Removed(nb) || e.bfsVisited[nb] == epoch {
					continue
				}
				e.bfsQueue[tail] = nb
				tail++
				e.bfsVisited[nb] = epoch
				e.bfsLevel[nb] = e.bfsLevel[cur] + 1
			}
		}
		e.setBit(v, cur)
		visited++
	}
	if visited > 0 {
		e.treeSize[v] = visited - 1
	} else {
		e.treeSize[v] = 0
	}
}

// SetRemovedAll resets the removed mask to exactly S and rebuilds
// every row from the immutable original adjacency snapshot.
func (e *Engine) SetRemovedAll(s map[int]struct{}) error {
	for v := range s {
		if v < 0 || v >= e.n {
			return core.ErrNodeOutOfBounds
		}
	}
	e.removed = core.CloneMask(s)
	e.cur = e.adj.Clone()
	e.buildTree()
	return nil
}

// GetReducedBy permanently deletes S from the original adjacency
// (decrementing the budget by |S|), clears the removed mask, and
// rebuilds every row. Per spec §4.C this is used only by RSC, and only
// ever on a throwaway clone the caller creates for that purpose —
// callers must not reuse the receiver for anything else afterward.
func (e *Engine) GetReducedBy(s map[int]struct{}) error {
	for v := range s {
		if v < 0 || v >= e.n {
			return core.ErrNodeOutOfBounds
		}
	}
	e.removed = make(map[int]struct{})
	e.k -= len(s)
	for v := range s {
		e.adj.RemoveIncident(v)
		e.excised[v] = struct{}{}
	}
	e.cur = e.adj.Clone()
	e.buildTree()
	return nil
}
