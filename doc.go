// Package pycnp is a heuristic solver for the Critical Node Problem
// (CNP) and its distance-based variant (DCNP): given an undirected,
// unweighted graph and a removal budget k, find a set of at most k
// vertices whose removal minimizes the number of surviving connected
// pairs.
//
// The solver is a memetic algorithm: a population of candidate
// removal sets is evolved by crossover (recombining two or three
// parent solutions) and local search (hill-climbing a single
// solution), with the two incremental graph engines in cnpengine and
// dcnpengine doing the per-move connectivity bookkeeping that makes
// both operations cheap.
//
// Package layout:
//
//	core/         — shared adjacency type and sentinel errors
//	rng/          — seeded, reproducible random source
//	cnpengine/    — incremental connected-component engine (CNP)
//	dcnpengine/   — incremental K-hop reachability engine (DCNP)
//	handle/       — tagged-variant facade over both engines
//	strategy/     — local-search strategies: CBNS, CHNS, DLAS, BCLS
//	crossover/    — crossover operators: DBX, IRR, RSC
//	population/   — memetic population manager
//	memetic/      — the generate-select-cross-improve driver; Solve is
//	                the package's public entry point
//	builder/      — functional-options configuration for memetic.Solve
//	reader/       — adjacency-list and DIMACS-like edge-list parsers
//	stop/         — stopping-criterion predicates
//	cmd/cnpsolve/ — CLI wiring a reader, memetic.Solve and a printer together
//
//	go get github.com/xuebo100/pycnp
package pycnp
