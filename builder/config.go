package builder

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/xuebo100/pycnp/crossover"
	"github.com/xuebo100/pycnp/strategy"
)

// MemeticParams configures memetic.Solve's generate-select-cross-improve
// loop: which local-search strategy drives both population
// initialization and offspring improvement, which crossover
// recombines parents, the RSC-specific tunables, and the ambient
// logging/statistics knobs.
type MemeticParams struct {
	StrategyName  string
	CrossoverName string

	// ReduceEnabled records whether the driver's crossover choice is
	// understood to permanently shrink the search space (true whenever
	// CrossoverName is RSC — RSC always calls GetReducedBy on its own
	// throwaway clone). It is surfaced on MemeticParams rather than
	// inferred silently so a caller reading back a resolved config can
	// tell RSC's reduction semantics are in play without string-matching
	// CrossoverName themselves.
	ReduceEnabled bool

	RSCBeta         float64
	RSCStrategyName string

	CollectStats    bool
	Display         bool
	DisplayInterval time.Duration
	Logger          zerolog.Logger
}

// MemeticOption customizes a MemeticParams value before NewMemeticParams
// resolves and validates it.
type MemeticOption func(*MemeticParams)

// WithStrategy sets the local-search strategy name (CBNS, CHNS, DLAS
// or BCLS) used both for population initialization and for improving
// every generation's offspring.
func WithStrategy(name string) MemeticOption {
	return func(p *MemeticParams) { p.StrategyName = name }
}

// WithCrossover sets the crossover operator name (DBX, IRR or RSC).
func WithCrossover(name string) MemeticOption {
	return func(p *MemeticParams) {
		p.CrossoverName = name
		p.ReduceEnabled = name == crossover.RSCName
	}
}

// WithRSCBeta sets RSC's backbone-retention probability β ∈ [0,1].
// Ignored by every other crossover.
func WithRSCBeta(beta float64) MemeticOption {
	return func(p *MemeticParams) { p.RSCBeta = beta }
}

// WithRSCStrategy overrides the local-search strategy RSC runs on its
// reduced working clone; empty means "use the per-kind default"
// (CHNS for CNP, BCLS for DCNP).
func WithRSCStrategy(name string) MemeticOption {
	return func(p *MemeticParams) { p.RSCStrategyName = name }
}

// WithStats enables per-generation RunStats collection on the Result.
func WithStats(collect bool) MemeticOption {
	return func(p *MemeticParams) { p.CollectStats = collect }
}

// WithDisplay enables progress logging at Info level every interval;
// interval is advisory (the driver logs once per generation at Debug
// regardless and additionally at Info at this cadence).
func WithDisplay(interval time.Duration) MemeticOption {
	return func(p *MemeticParams) { p.Display = true; p.DisplayInterval = interval }
}

// WithLogger attaches the zerolog.Logger the driver and population
// manager emit progress/diagnostic events through. Defaults to
// zerolog.Nop() (silent) when never called.
func WithLogger(l zerolog.Logger) MemeticOption {
	return func(p *MemeticParams) { p.Logger = l }
}

// NewMemeticParams resolves opts against deterministic defaults and
// validates the result: unknown strategy/crossover names and an
// out-of-range RSC beta fail here rather than deep inside a run.
func NewMemeticParams(opts ...MemeticOption) (MemeticParams, error) {
	p := MemeticParams{
		StrategyName:  strategy.CBNSName,
		CrossoverName: crossover.DBXName,
		RSCBeta:       DefaultRSCBeta,
		Logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&p)
	}

	if !knownStrategy(p.StrategyName) {
		return MemeticParams{}, ErrUnknownStrategy
	}
	if p.RSCStrategyName != "" && !knownStrategy(p.RSCStrategyName) {
		return MemeticParams{}, ErrUnknownStrategy
	}
	if !knownCrossover(p.CrossoverName) {
		return MemeticParams{}, ErrUnknownCrossover
	}
	if p.RSCBeta < 0 || p.RSCBeta > 1 {
		return MemeticParams{}, ErrBetaOutOfRange
	}
	return p, nil
}

func knownStrategy(name string) bool {
	switch name {
	case strategy.CBNSName, strategy.CHNSName, strategy.DLASName, strategy.BCLSName:
		return true
	default:
		return false
	}
}

func knownCrossover(name string) bool {
	switch name {
	case crossover.DBXName, crossover.IRRName, crossover.RSCName:
		return true
	default:
		return false
	}
}
