package strategy

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
)

// maxIdleStepsDefault is the shared default tunable for CBNS, CHNS and
// DLAS (spec §4.E's table).
const maxIdleStepsDefault = 1000

// CBNS (Component-Based Neighborhood Search): select a component,
// remove its oldest-touched vertex, stamp its age, then greedily add
// back the cheapest removed vertex.
func CBNS(h *handle.GraphHandle, _ *rng.Source, sc stop.Criterion) (Result, error) {
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
		v, err := h.AgeNodeFrom(ci)
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
