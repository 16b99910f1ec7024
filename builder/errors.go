package builder

import "errors"

var (
	// ErrUnknownStrategy is returned when a MemeticParams/population.Config
	// strategy name is outside {CBNS, CHNS, DLAS, BCLS}.
	ErrUnknownStrategy = errors.New("builder: unknown strategy name")

	// ErrUnknownCrossover is returned when a MemeticParams crossover
	// name is outside {DBX, IRR, RSC}.
	ErrUnknownCrossover = errors.New("builder: unknown crossover name")

	// ErrBetaOutOfRange is returned when RSCBeta lies outside [0,1].
	ErrBetaOutOfRange = errors.New("builder: RSC beta out of [0,1]")

	// ErrNonPositivePopSize is returned when InitialPopSize <= 0.
	ErrNonPositivePopSize = errors.New("builder: initial population size must be positive")

	// ErrMaxPopSizeTooSmall is returned when MaxPopSize < InitialPopSize.
	ErrMaxPopSizeTooSmall = errors.New("builder: max population size below initial population size")

	// ErrNonPositiveIncrease is returned when IncreasePopSize <= 0 while
	// adaptive sizing is enabled (Expand would be a no-op loop).
	ErrNonPositiveIncrease = errors.New("builder: increase population size must be positive when adaptive sizing is enabled")
)
