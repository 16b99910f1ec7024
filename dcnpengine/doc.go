// Package dcnpengine implements the incremental K-hop reachability
// engine for the Distance-based Critical Node Problem: for every
// vertex v it maintains a boolean row of which vertices are reachable
// from v within K hops over the current (non-removed) adjacency,
// packed as a bitset and rebuilt incrementally as vertices are removed
// or re-added.
//
// Unlike cnpengine, this engine never tracks components directly — the
// DCNP objective is derived from per-vertex tree sizes (spec §3,
// "TreeSize"), and the move primitives FindBestToRemove and
// FindBestToAdd operate by tentative mutation and rollback rather than
// incremental bookkeeping, mirroring the original's O(n) per-candidate
// scan. Betweenness is a read-only Brandes pass over the current graph.
package dcnpengine
