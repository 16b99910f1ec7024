// Package memetic implements the generate-select-cross-improve search
// loop that drives the CNP/DCNP engines: it builds the master
// handle.GraphHandle, hands it to a population.Manager for
// initialization, then repeatedly selects parents by tournament, runs
// the configured crossover operator, improves the offspring with the
// configured local-search strategy, and folds the result back into
// the population until a stop.Criterion fires.
package memetic
