package cnpengine

import "github.com/xuebo100/pycnp/core"

// GetReducedBy permanently deletes s from the original adjacency
// (decrementing the budget by |s|), clears the removed mask, and
// rebuilds the component decomposition from scratch. Mirrors
// dcnpengine.Engine.GetReducedBy so RSC can treat both engine kinds
// uniformly through handle.GraphHandle. Per spec §4.C this is used
// only by RSC, and only ever on a throwaway clone — callers must not
// reuse the receiver for anything else afterward.
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
	e.rebuildComponents()
	return nil
}
