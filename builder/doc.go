// Package builder resolves functional options into the immutable
// configuration values memetic.Solve and population.Manager consume:
// builder.MemeticParams (strategy/crossover choice, RSC tunables,
// logging and statistics knobs) and population.Config (population
// sizing and adaptive-resize tunables). Every option is validated at
// resolution time — an unknown strategy/crossover name or an
// out-of-range tunable fails the New* call rather than surfacing deep
// inside a running search.
package builder
