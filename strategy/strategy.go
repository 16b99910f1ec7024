package strategy

import (
	"errors"

	"github.com/xuebo100/pycnp/handle"
	"github.com/xuebo100/pycnp/rng"
	"github.com/xuebo100/pycnp/stop"
)

// Names exposed to consumers (spec §6).
const (
	CBNSName = "CBNS"
	CHNSName = "CHNS"
	DLASName = "DLAS"
	BCLSName = "BCLS"
)

// ErrUnknownStrategy is returned by Run for a name not in the registry.
var ErrUnknownStrategy = errors.New("strategy: unknown strategy name")

// Result is the outcome of running a strategy to completion: the best
// removed-vertex set found and its objective value.
type Result struct {
	Solution  map[int]struct{}
	Objective int
}

// Func is the common shape every strategy implements. rngSrc supplies
// the strategy-level probability draws (CHNS's θ coin, BCLS's
// selection_prob coin) that sit above the engine's own internal tie-
// breaking stream. sc may be nil, in which case only the strategy's
// own max-idle-steps budget bounds the loop.
type Func func(h *handle.GraphHandle, rngSrc *rng.Source, sc stop.Criterion) (Result, error)

var registry = map[string]Func{
	CBNSName: CBNS,
	CHNSName: CHNS,
	DLASName: DLAS,
	BCLSName: BCLS,
}

// Run dispatches to the named strategy. Returns ErrUnknownStrategy for
// any name outside {CBNS, CHNS, DLAS, BCLS}.
func Run(name string, h *handle.GraphHandle, rngSrc *rng.Source, sc stop.Criterion) (Result, error) {
	fn, ok := registry[name]
	if !ok {
		return Result{}, ErrUnknownStrategy
	}
	return fn(h, rngSrc, sc)
}

func shouldStop(sc stop.Criterion, bestObj int) bool {
	return sc != nil && sc.ShouldStop(float64(bestObj))
}
