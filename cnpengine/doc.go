// Package cnpengine implements the incremental connectivity engine for
// the Critical Node Problem: it maintains connected components over a
// mutable adjacency view as vertices are removed and re-added, and
// exposes the neighborhood-move primitives the local-search strategies
// and crossover operators in strategy/crossover drive.
//
// The engine keeps a "removed mask" separate from the original
// adjacency snapshot captured at Build: current adjacency always
// mirrors the original minus edges incident to removed vertices. The
// DFS scratch buffers (visited epochs, stack) are owned by the Engine
// and reused across calls; the Tarjan bookkeeping used by
// ImpactNodeFrom is allocated per call. See Engine.Clone for how an
// independent copy is produced without aliasing the DFS buffers.
package cnpengine
