package dcnpengine

import "github.com/xuebo100/pycnp/core"

// Remove adds v to the removed mask and rebuilds the row of every
// vertex that previously reached v within K hops. v must not already
// be removed. Current adjacency is left untouched (spec §4.C).
func (e *Engine) Remove(v int) error {
	if v < 0 || v >= e.n {
		return core.ErrNodeOutOfBounds
	}
	if e.Removed(v) {
		return core.ErrNodeAlreadyRemoved
	}
	e.removed[v] = struct{}{}

	toRebuild := e.rowsReaching(v)
	for _, u := range toRebuild {
		e.bfsK(u)
	}
	return nil
}

// Add removes v from the removed mask, rebuilds v's own row, then
// rebuilds the row of every vertex freshly within v's K-hop reach.
// v must currently be removed.
func (e *Engine) Add(v int) error {
	if v < 0 || v >= e.n {
		return core.ErrNodeOutOfBounds
	}
	if !e.Removed(v) {
		return core.ErrNodeNotRemoved
	}
	delete(e.removed, v)
	e.bfsK(v)

	toRebuild := make([]int, 0)
	for u := 0; u < e.n; u++ {
		if e.getBit(v, u) {
			toRebuild = append(toRebuild, u)
		}
	}
	for _, u := range toRebuild {
		e.bfsK(u)
	}
	return nil
}

// rowsReaching returns every vertex u (including, transiently, v
// itself) with intree[u][v] == 1 before v's own row is touched.
func (e *Engine) rowsReaching(v int) []int {
	out := make([]int, 0)
	for u := 0; u < e.n; u++ {
		if e.getBit(u, v) {
			out = append(out, u)
		}
	}
	return out
}

// Objective returns (Σ_{v not in S} tree_size[v]) / 2, the DCNP
// connected-pairs count.
func (e *Engine) Objective() int {
	sum := 0
	for v := 0; v < e.n; v++ {
		if !e.Removed(v) {
			sum += e.treeSize[v]
		}
	}
	return sum / 2
}
