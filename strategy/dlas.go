package strategy

import (
	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
)

// dlasHistoryLength is DLAS's late-acceptance history size (spec
// §4.E's table).
const dlasHistoryLength = 5

// DLAS (Diversified Late Acceptance Search): select a component,
// remove a uniformly-chosen vertex from it, greedily add back, then
// accept or reject the resulting objective against a sliding-window
// late-acceptance history.
func DLAS(h *handle.GraphHandle, _ *rng.Source, sc stop.Criterion) (Result, error) {
	bestObj := h.Objective()
	bestSol := h.RemovedMask()

	history := make([]int, dlasHistoryLength)
	for i := range history {
		history[i] = bestObj
	}
	maxInHistory := bestObj
	tieCount := dlasHistoryLength

	idle := 0
	step := 0

	for idle < maxIdleStepsDefault {
		if shouldStop(sc, bestObj) {
			break
		}

		prevMask := h.RemovedMask()
		prevObj := h.Objective()

		ci, err := h.SelectComponent()
		if err != nil {
			return Result{}, err
		}
		v, err := h.RandomNodeFrom(ci)
		if err != nil {
			return Result{}, err
		}
		if err := h.Remove(v); err != nil {
			return Result{}, err
		}
		add, err := h.GreedyAdd()
		if err != nil {
			return Result{}, err
		}
		if err := h.Add(add); err != nil {
			return Result{}, err
		}

		newObj := h.Objective()
		cur := newObj
		if !(newObj == prevObj || newObj < maxInHistory) {
			if err := h.SetRemovedAll(prevMask); err != nil {
				return Result{}, err
			}
			cur = prevObj
		}

		idx := step % dlasHistoryLength
		switch {
		case cur > history[idx]:
			history[idx] = cur
		case cur < history[idx] && cur < prevObj:
			if history[idx] == maxInHistory {
				tieCount--
			}
			history[idx] = cur
			if tieCount == 0 {
				maxInHistory, tieCount = recomputeHistoryMax(history)
			}
		}

		if cur < bestObj {
			bestObj = cur
			bestSol = h.RemovedMask()
			idle = 0
		} else {
			idle++
		}
		step++
	}
	return Result{Solution: bestSol, Objective: bestObj}, nil
}

func recomputeHistoryMax(history []int) (max, count int) {
	max = history[0]
	for _, v := range history[1:] {
		if v > max {
			max = v
		}
	}
	for _, v := range history {
		if v == max {
			count++
		}
	}
	return max, count
}
