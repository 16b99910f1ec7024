package cnpengine

import "github.com/xuebo100/pycnp/core"

// Remove elides v's incident edges and updates the component
// decomposition and connected_pairs in place, per spec §4.B. v must
// not already be removed.
func (e *Engine) Remove(v int) error {
	if err := e.adj.Validate(v); err != nil {
		return err
	}
	if e.Removed(v) {
		return core.ErrNodeAlreadyRemoved
	}

	oldIdx := e.nodeToComponent[v]
	oldComp := e.components[oldIdx]

	e.cur.RemoveIncident(v)
	e.removed[v] = struct{}{}
	e.nodeToComponent[v] = -1

	if oldComp.Size == 1 {
		e.removeComponentAt(oldIdx)
		return nil
	}

	remaining := make([]int, 0, oldComp.Size-1)
	var start = -1
	for _, u := range oldComp.Members {
		if u == v {
			continue
		}
		remaining = append(remaining, u)
		if start == -1 {
			start = u
		}
	}

	newPiece := e.dfsComponent(start)
	newSize := len(newPiece)
	oldRemainingSize := len(remaining)

	if newSize == oldRemainingSize {
		// No split. The documented (preserved, not "fixed") rule:
		// decrement by newSize rather than recomputing
		// C(oldSize,2)-C(newSize,2); the two coincide here because
		// newSize == oldSize-1, but the arithmetic path matters for
		// the open-question regression test.
		e.connectedPairs -= newSize
		e.components[oldIdx] = Component{Size: newSize, Members: newPiece}
		for _, u := range newPiece {
			e.nodeToComponent[u] = oldIdx
		}
		return nil
	}

	// Split: oldComp minus v breaks into newPiece plus one-or-more
	// additional pieces.
	e.connectedPairs -= core.PairCount(oldComp.Size)
	e.connectedPairs += core.PairCount(newSize)

	e.components[oldIdx] = Component{Size: newSize, Members: newPiece}
	visited := make(map[int]struct{}, oldRemainingSize)
	for _, u := range newPiece {
		e.nodeToComponent[u] = oldIdx
		visited[u] = struct{}{}
	}

	for _, u := range remaining {
		if _, ok := visited[u]; ok {
			continue
		}
		piece := e.dfsComponent(u)
		idx := len(e.components)
		for _, w := range piece {
			e.nodeToComponent[w] = idx
			visited[w] = struct{}{}
		}
		e.components = append(e.components, Component{Size: len(piece), Members: piece})
		e.connectedPairs += core.PairCount(len(piece))
	}
	return nil
}

// removeComponentAt drops the singleton component at idx and shifts
// every higher component index down by one.
func (e *Engine) removeComponentAt(idx int) {
	for i := idx + 1; i < len(e.components); i++ {
		for _, u := range e.components[i].Members {
			e.nodeToComponent[u]--
		}
	}
	e.components = append(e.components[:idx], e.components[idx+1:]...)
}

// Add restores v and every edge of v whose other endpoint currently
// belongs to a component, merging components as needed. v must
// currently be removed.
func (e *Engine) Add(v int) error {
	if err := e.adj.Validate(v); err != nil {
		return err
	}
	if !e.Removed(v) {
		return core.ErrNodeNotRemoved
	}

	delete(e.removed, v)

	hostIdx := -1
	for u := range e.adj[v] {
		if e.nodeToComponent[u] != -1 {
			e.cur.AddEdge(u, v)
			if hostIdx == -1 {
				hostIdx = e.nodeToComponent[u]
			}
		}
	}

	if hostIdx == -1 {
		idx := len(e.components)
		e.components = append(e.components, Component{Size: 1, Members: []int{v}})
		e.nodeToComponent[v] = idx
		return nil
	}

	host := e.components[hostIdx]
	host.Members = append(host.Members, v)
	host.Size++
	e.components[hostIdx] = host
	e.nodeToComponent[v] = hostIdx

	merged := e.dfsComponent(v)

	if len(merged) == host.Size {
		// No other component reached: v only extended the host.
		e.connectedPairs += host.Size - 1
		return nil
	}

	// Merge: the piece reachable from v engulfs one or more other
	// components in addition to the (already-extended) host.
	host.Size--
	e.components[hostIdx] = host

	toMerge := make(map[int]struct{})
	for _, u := range merged {
		if idx := e.nodeToComponent[u]; idx != -1 {
			toMerge[idx] = struct{}{}
		}
	}

	mergedIdxs := make([]int, 0, len(toMerge))
	for idx := range toMerge {
		mergedIdxs = append(mergedIdxs, idx)
	}
	sortInts(mergedIdxs)

	for i := len(mergedIdxs) - 1; i >= 0; i-- {
		idx := mergedIdxs[i]
		e.connectedPairs -= core.PairCount(e.components[idx].Size)
		e.components = append(e.components[:idx], e.components[idx+1:]...)
	}

	e.components = append(e.components, Component{Size: len(merged), Members: merged})
	e.connectedPairs += core.PairCount(len(merged))

	// mergedIdxs were spliced out (descending) leaving every other
	// component at a possibly new index; the cheapest correct fixup
	// is to remap every surviving member to its component's current
	// slice index in one pass.
	for compIdx := range e.components {
		for _, u := range e.components[compIdx].Members {
			e.nodeToComponent[u] = compIdx
		}
	}
	return nil
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
