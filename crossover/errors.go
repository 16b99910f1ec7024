package crossover

import "errors"

// Names exposed to consumers.
const (
	DBXName = "DBX"
	IRRName = "IRR"
	RSCName = "RSC"
)

// ErrBetaOutOfRange is returned by RSC when β is outside [0,1].
var ErrBetaOutOfRange = errors.New("crossover: beta out of [0,1]")

// ErrUnknownCrossover is returned by dispatchers (the memetic driver's
// crossover switch, the builder package's validation) for a name
// outside {DBX, IRR, RSC}. DBX/IRR/RSC are exposed as plain functions
// rather than a registry, since their parent-count and extra-argument
// shapes differ too much for one common Func type, but the sentinel
// for an unrecognized name still belongs here.
var ErrUnknownCrossover = errors.New("crossover: unknown crossover name")
