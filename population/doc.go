// Package population implements the memetic population manager (spec
// §4.G): a flat slice of items carrying a solution, objective, rank-
// blended fitness, a unique id, and Jaccard-similarity entries to every
// other item, keyed by id rather than direct cross-references (spec §9
// design note: "cycles of ownership ... best expressed as a flat
// vector plus integer ids").
package population
