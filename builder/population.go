package builder

import (
	"github.com/rs/zerolog"

	"github.com/xuebo100/pycnp/population"
)

// PopulationOption customizes a population.Config value before
// NewPopulationParams resolves and validates it.
type PopulationOption func(*population.Config)

// WithInitialPopSize sets the number of non-duplicate solutions
// Manager.Initialize generates.
func WithInitialPopSize(n int) PopulationOption {
	return func(c *population.Config) { c.InitialPopSize = n }
}

// WithMaxPopSize sets the ceiling adaptive sizing expands toward
// before Rebuild takes over.
func WithMaxPopSize(n int) PopulationOption {
	return func(c *population.Config) { c.MaxPopSize = n }
}

// WithIncreasePopSize sets how many items Expand adds per call.
func WithIncreasePopSize(n int) PopulationOption {
	return func(c *population.Config) { c.IncreasePopSize = n }
}

// WithMaxIdleGens sets the idle-generation multiple that triggers
// Expand or Rebuild under adaptive sizing.
func WithMaxIdleGens(n int) PopulationOption {
	return func(c *population.Config) { c.MaxIdleGens = n }
}

// WithAdaptive toggles adaptive population resizing.
func WithAdaptive(enabled bool) PopulationOption {
	return func(c *population.Config) { c.Adaptive = enabled }
}

// NewPopulationParams resolves opts against deterministic defaults.
// strategyName and logger are threaded in from the driver's resolved
// MemeticParams so the population's own non-duplicate generation runs
// the same local search and logs through the same sink as the driver;
// memetic.Solve overwrites both fields again just before use, so
// passing mismatched values here has no lasting effect beyond
// validation.
func NewPopulationParams(strategyName string, logger zerolog.Logger, opts ...PopulationOption) (population.Config, error) {
	c := population.Config{
		InitialPopSize:  DefaultInitialPopSize,
		MaxPopSize:      DefaultMaxPopSize,
		IncreasePopSize: DefaultIncreasePopSize,
		MaxIdleGens:     DefaultMaxIdleGens,
		Adaptive:        true,
		StrategyName:    strategyName,
		Logger:          logger,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.InitialPopSize <= 0 {
		return population.Config{}, ErrNonPositivePopSize
	}
	if c.MaxPopSize < c.InitialPopSize {
		return population.Config{}, ErrMaxPopSizeTooSmall
	}
	if c.Adaptive && c.IncreasePopSize <= 0 {
		return population.Config{}, ErrNonPositiveIncrease
	}
	if !knownStrategy(c.StrategyName) {
		return population.Config{}, ErrUnknownStrategy
	}
	return c, nil
}
