package memetic

import (
	"errors"
	"time"
)

// ProblemType selects which engine kind Solve builds: a plain
// connectivity count (CNP) or a hop-limited K-hop reach count (DCNP).
type ProblemType int

const (
	CNP ProblemType = iota
	DCNP
)

// Names exposed to consumers.
const (
	CNPName  = "CNP"
	DCNPName = "DCNP"
)

func (p ProblemType) String() string {
	if p == DCNP {
		return DCNPName
	}
	return CNPName
}

// ParseProblemType maps "CNP"/"DCNP" to a ProblemType, case-sensitive.
func ParseProblemType(name string) (ProblemType, error) {
	switch name {
	case CNPName:
		return CNP, nil
	case DCNPName:
		return DCNP, nil
	default:
		return 0, ErrUnknownProblemType
	}
}

// ErrUnknownProblemType is returned by Solve/ParseProblemType for a
// name outside {CNP, DCNP}.
var ErrUnknownProblemType = errors.New("memetic: unknown problem type")

// Result is the outcome of a Solve call: the best removed-vertex set
// found, its objective, how many generations ran, and timing.
type Result struct {
	BestSolution    map[int]struct{}
	BestObjValue    int
	NumIterations   int
	Runtime         time.Duration
	BestFoundAtTime time.Duration
	Stats           *RunStats
}

// RunStats collects per-generation telemetry when
// builder.MemeticParams.CollectStats is set: the running best
// objective, population size, and idle-generation count observed
// after each completed generation.
type RunStats struct {
	BestObjPerIteration  []int
	PopSizePerIteration  []int
	IdleGensPerIteration []int
}
