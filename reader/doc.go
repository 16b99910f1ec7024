// Package reader parses the two graph input formats named in spec §6
// into a core.AdjList: the adjacency-list text format and the
// DIMACS-like edge-list format. Parsing is the external collaborator
// spec §1 carves out of the core engine — the engine itself only ever
// consumes an already-built core.AdjList.
package reader
