// Package strategy implements the four local-search strategies (spec
// §4.E): CBNS, CHNS, DLAS and BCLS. Each is an idle-step loop over a
// handle.GraphHandle's move primitives that maintains a running best
// solution and objective, stopping once either the strategy's own
// max-idle-steps budget is exhausted or the supplied stop.Criterion
// fires. BCLS is DCNP-only; CBNS, CHNS and DLAS are CNP-only, since
// they call component primitives that return handle.ErrWrongKind on a
// DCNP handle (spec §4.E's table).
package strategy
