package strategy

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
)

// chnsTheta is CHNS's probability of picking the impact-based removal
// candidate over the age-based one (spec §4.E's table).
const chnsTheta = 0.3

// CHNS (Component-Heuristic Neighborhood Search): select a component,
// then with probability θ remove its impact-based (cut-vertex-aware)
// candidate, the vertex whose removal leaves the fewest connected
// pairs in the component, else its oldest-touched one; greedily add
// back.
func CHNS(h *handle.GraphHandle, rngSrc *rng.Source, sc stop.Criterion) (Result, error) {
	bestObj := h.Objective()
	bestSol := h.RemovedMask()
	idle := 0
	var step int64

	for idle < maxIdleStepsDefault {
		if shouldStop(sc, bestObj) {
			break
		}
		step++

		ci, err := h.SelectComponent()
		if err != nil {
			return Result{}, err
		}

		var v int
		if rngSrc.Bool(chnsTheta) {
			v, err = h.ImpactNodeFrom(ci)
		} else {
			v, err = h.AgeNodeFrom(ci)
		}
		if err != nil {
			return Result{}, err
		}

		if err := h.Remove(v); err != nil {
			return Result{}, err
		}
		h.SetNodeAge(v, step)

		add, err := h.GreedyAdd()
		if err != nil {
			return Result{}, err
		}
		if err := h.Add(add); err != nil {
			return Result{}, err
		}
		h.SetNodeAge(add, step)

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
