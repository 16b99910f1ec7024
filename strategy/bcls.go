package strategy

import (
	"container/list"
	"sort"

	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
)

// bclsMaxIdleSteps and bclsSelectionProb are BCLS's tunables (spec
// §4.E's table); BCLS is DCNP-only.
const (
	bclsMaxIdleSteps  = 150
	bclsSelectionProb = 0.8
)

// BCLS (Betweenness-Centrality Local Search): pre-sorts all vertices
// by descending betweenness into a candidate ring; each move pops the
// front candidate and either commits a remove-then-best-add swap or
// demotes the candidate to just past the ring's 5th element.
func BCLS(h *handle.GraphHandle, rngSrc *rng.Source, sc stop.Criterion) (Result, error) {
	bt := h.Betweenness()
	order := make([]int, h.NumNodes())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return bt[order[i]] > bt[order[j]] })

	ring := list.New()
	for _, v := range order {
		ring.PushBack(v)
	}
	it5 := fifthElement(ring)

	bestObj := h.Objective()
	bestSol := h.RemovedMask()
	idle := 0

	for idle < bclsMaxIdleSteps {
		if shouldStop(sc, bestObj) {
			break
		}

		v, found := popNextLive(h, ring)
		if !found {
			break
		}

		committed := false
		if rngSrc.Bool(bclsSelectionProb) {
			if err := h.Remove(v); err != nil {
				return Result{}, err
			}
			bestAdd, err := h.FindBestToAdd()
			if err != nil {
				return Result{}, err
			}
			if bestAdd != handle.InvalidNode {
				if err := h.Add(bestAdd); err != nil {
					return Result{}, err
				}
				ring.PushBack(bestAdd)
				committed = true
			} else if err := h.Add(v); err != nil {
				return Result{}, err
			}
		}

		if !committed {
			if it5 != nil {
				ring.InsertAfter(v, it5)
			} else {
				ring.PushBack(v)
			}
		}
		it5 = fifthElement(ring)

		obj := h.Objective()
		if obj < bestObj {
			bestObj = obj
			bestSol = h.RemovedMask()
			idle = 0
		} else {
			idle++
		}
	}
	return Result{Solution: bestSol, Objective: bestObj}, nil
}

// popNextLive pops elements off the front of ring, discarding any
// already-removed vertex, until it finds one still present in the
// graph (or the ring is exhausted).
func popNextLive(h *handle.GraphHandle, ring *list.List) (int, bool) {
	for {
		front := ring.Front()
		if front == nil {
			return 0, false
		}
		ring.Remove(front)
		v := front.Value.(int)
		if h.Removed(v) {
			continue
		}
		return v, true
	}
}

// fifthElement returns the ring's 5th element, or its last element if
// the ring holds fewer than 5.
func fifthElement(ring *list.List) *list.Element {
	e := ring.Front()
	if e == nil {
		return nil
	}
	for i := 0; i < 4 && e.Next() != nil; i++ {
		e = e.Next()
	}
	return e
}
