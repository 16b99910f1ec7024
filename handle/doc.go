// Package handle provides GraphHandle, a tagged-variant facade over
// cnpengine.Engine and dcnpengine.Engine. Local-search strategies and
// crossover operators depend on this single type rather than branching
// on problem type themselves; GraphHandle forwards calls common to
// both engines and implements the documented CNP/DCNP primitive
// fallbacks (spec §4.D) for calls that only make sense on one side.
package handle
