package population

import "errors"

// ErrPopulationSizeNotThree is returned by GetAllThree when the
// population does not hold exactly three items (required by IRR).
var ErrPopulationSizeNotThree = errors.New("population: size must be exactly 3 for IRR")
