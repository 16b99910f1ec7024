// Package crossover implements the three crossover operators (spec
// §4.F): DBX, IRR and RSC. Each consumes parent solutions (as vertex
// sets) plus the master handle.GraphHandle and returns a freshly
// owned offspring GraphHandle the caller consumes (reads solution and
// objective) and discards.
package crossover
