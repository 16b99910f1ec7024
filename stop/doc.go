// Package stop implements the stopping-criterion predicates the
// memetic driver polls between generations, the population manager
// polls during initialization, and the local-search strategies poll
// between moves (spec §5, §6). Each Criterion is stateful: it is
// invoked once per poll with the current best objective and tracks
// whatever counters it needs (iteration count, elapsed wall time, idle
// streak) internally, since the predicate signature itself only ever
// carries the objective.
package stop
