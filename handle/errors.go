package handle

import "errors"

// ErrWrongKind is returned when a caller invokes a CNP-only or
// DCNP-only primitive on a handle of the other kind. The move
// strategies and crossover operators that call these never cross
// kinds in practice (spec §4.D), so callers should treat this as a
// programming error rather than something to recover from.
var ErrWrongKind = errors.New("handle: primitive not valid for this graph kind")
