package cnpengine

import (
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/rng"
)

// Build captures an immutable adjacency snapshot for n vertices,
// computes the initial (empty-removal) component decomposition, and
// returns a ready-to-use Engine. k is the removal budget; seed drives
// every tie-breaking choice the Engine makes.
func Build(adj core.AdjList, k int, seed int64) (*Engine, error) {
	n := adj.NumNodes()
	if k < 0 || k > n {
		return nil, core.ErrBudgetExceedsOrder
	}

	e := &Engine{
		n:               n,
		k:               k,
		adj:             adj.Clone(),
		removed:         make(map[int]struct{}),
		excised:         make(map[int]struct{}),
		nodeToComponent: make([]int, n),
		age:             make([]int64, n),
		rng:             rng.New(seed),
		visitEpoch:      make([]int64, n),
		dfsStack:        make([]int, 0, n),
	}
	e.cur = e.adj.Clone()
	e.rebuildComponents()
	return e, nil
}

// SetRemovedAll resets the removed mask to exactly S: current adjacency
// is rebuilt from the immutable original snapshot with S's incident
// edges elided, and the component decomposition is recomputed from
// scratch.
func (e *Engine) SetRemovedAll(s map[int]struct{}) error {
	for v := range s {
		if v < 0 || v >= e.n {
			return core.ErrNodeOutOfBounds
		}
	}
	e.removed = core.CloneMask(s)
	e.cur = e.adj.Clone()
	for v := range e.removed {
		e.cur.RemoveIncident(v)
	}
	e.rebuildComponents()
	return nil
}

func (e *Engine) rebuildComponents() {
	for i := range e.nodeToComponent {
		e.nodeToComponent[i] = -1
	}
	e.components = e.components[:0]
	e.connectedPairs = 0

	for v := 0; v < e.n; v++ {
		if e.nodeToComponent[v] != -1 || e.Removed(v) {
			continue
		}
		members := e.dfsComponent(v)
		idx := len(e.components)
		for _, u := range members {
			e.nodeToComponent[u] = idx
		}
		e.components = append(e.components, Component{Size: len(members), Members: members})
		e.connectedPairs += core.PairCount(len(members))
	}
}

// dfsComponent runs an iterative DFS from start over e.cur, skipping
// removed vertices, and returns the discovered member list. It uses
// the reusable visit-epoch buffer so no per-call allocation or reset
// pass over the whole vertex universe is needed.
func (e *Engine) dfsComponent(start int) []int {
	e.curEpoch++
	epoch := e.curEpoch
	stack := e.dfsStack[:0]
	stack = append(stack, start)
	members := make([]int, 0, 8)

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.visitEpoch[v] == epoch || e.Removed(v) {
			continue
		}
		e.visitEpoch[v] = epoch
		members = append(members, v)
		for _, u := range core.SortedNeighbors(e.cur, v) {
			if e.visitEpoch[u] != epoch && !e.Removed(u) {
				stack = append(stack, u)
			}
		}
	}
	e.dfsStack = stack[:0]
	return members
}
