package builder

// Deterministic defaults for MemeticParams and population.Config.
// These mirror the reference tunables the local-search and population
// tables document; callers override the ones their scenario needs.
const (
	DefaultInitialPopSize  = 10
	DefaultMaxPopSize      = 20
	DefaultIncreasePopSize = 2
	DefaultMaxIdleGens     = 50
	DefaultRSCBeta         = 0.5
)
