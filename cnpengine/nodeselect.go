package cnpengine

import "github.com/xuebo100/pycnp/core"

// RandomNodeFrom uniformly selects a vertex from component ci.
func (e *Engine) RandomNodeFrom(ci int) (int, error) {
	c := e.components[ci]
	if c.Size == 0 {
		return 0, core.ErrEmptyComponentSelection
	}
	idx, err := e.rng.Index(c.Size)
	if err != nil {
		return 0, err
	}
	return c.Members[idx], nil
}

// AgeNodeFrom selects the minimum-age vertex from component ci,
// breaking ties uniformly.
func (e *Engine) AgeNodeFrom(ci int) (int, error) {
	c := e.components[ci]
	if c.Size == 0 {
		return 0, core.ErrEmptyComponentSelection
	}
	minAge := e.age[c.Members[0]]
	candidates := []int{c.Members[0]}
	for _, v := range c.Members[1:] {
		switch {
		case e.age[v] < minAge:
			minAge = e.age[v]
			candidates = candidates[:0]
			candidates = append(candidates, v)
		case e.age[v] == minAge:
			candidates = append(candidates, v)
		}
	}
	return e.pickUniform(candidates)
}

func (e *Engine) pickUniform(candidates []int) (int, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	idx, err := e.rng.Index(len(candidates))
	if err != nil {
		return 0, err
	}
	return candidates[idx], nil
}

// tarjanFrame is one explicit-stack call frame for the iterative
// Tarjan walk used by ImpactNodeFrom; it mirrors the local state a
// recursive tarjanInComponent(nodeIdx) call would keep on the native
// call stack.
type tarjanFrame struct {
	node    int   // component-local index, 1-based as in the original
	nodeID  int   // global vertex id
	parent  int   // component-local index of the caller, 0 if root
	nbrIter []int // remaining neighbor global ids to visit
}

// ImpactNodeFrom selects the vertex in component ci minimizing the
// pair-count impact of its removal, using an iterative Tarjan
// articulation-point walk (spec §9: recursion is unsafe for large
// graphs). Ties broken uniformly.
func (e *Engine) ImpactNodeFrom(ci int) (int, error) {
	c := e.components[ci]
	size := c.Size
	if size == 0 {
		return 0, core.ErrEmptyComponentSelection
	}

	nodeToIdx := make(map[int]int, size)
	for i, v := range c.Members {
		nodeToIdx[v] = i + 1
	}

	dfn := make([]int, size+1)
	low := make([]int, size+1)
	stSize := make([]int, size+1)
	cutSize := make([]int, size+1)
	impact := make([]int, size+1)
	isCut := make([]bool, size+1)
	flag := make([]int, size+1)
	for i := 1; i <= size; i++ {
		stSize[i] = 1
		cutSize[i] = 1
	}

	timestamp := 0
	root := 1

	e.tarjanWalk(ci, c, root, nodeToIdx, dfn, low, stSize, cutSize, impact, isCut, flag, &timestamp)

	minImpact := 0
	candidates := make([]int, 0, size)
	for i := 1; i <= size; i++ {
		cur := impact[i]
		if isCut[i] {
			cur += core.PairCount(timestamp - cutSize[i])
		} else {
			cur += core.PairCount(timestamp - 1)
		}
		if len(candidates) == 0 || cur < minImpact {
			minImpact = cur
			candidates = candidates[:0]
			candidates = append(candidates, c.Members[i-1])
		} else if cur == minImpact {
			candidates = append(candidates, c.Members[i-1])
		}
	}
	return e.pickUniform(candidates)
}

// tarjanWalk runs the articulation-point / subtree-size computation
// iteratively using an explicit frame stack, equivalent to a recursive
// DFS from root over component ci restricted to e.cur.
func (e *Engine) tarjanWalk(
	ci int, c Component, root int, nodeToIdx map[int]int,
	dfn, low, stSize, cutSize, impact []int, isCut []bool, flag []int,
	timestamp *int,
) {
	stack := []tarjanFrame{}
	start := tarjanFrame{node: root, nodeID: c.Members[root-1], parent: 0}
	*timestamp++
	dfn[root], low[root] = *timestamp, *timestamp
	start.nbrIter = e.neighborsInComponent(start.nodeID, ci)
	stack = append(stack, start)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if len(top.nbrIter) == 0 {
			// Done with top: pop and propagate to parent.
			stack = stack[:len(stack)-1]
			if top.parent != 0 {
				parentIdx := top.parent
				if dfn[parentIdx] < dfn[top.node] {
					stSize[parentIdx] += stSize[top.node]
				}
				if low[top.node] < low[parentIdx] {
					low[parentIdx] = low[top.node]
				}
				if low[top.node] >= dfn[parentIdx] {
					flag[parentIdx]++
					if parentIdx != root {
						isCut[parentIdx] = true
						cutSize[parentIdx] += stSize[top.node]
						impact[parentIdx] += core.PairCount(stSize[top.node])
					} else if flag[parentIdx] > 1 {
						isCut[parentIdx] = true
					}
				}
			}
			continue
		}

		neighbor := top.nbrIter[0]
		top.nbrIter = top.nbrIter[1:]
		neighborIdx := nodeToIdx[neighbor]

		if dfn[neighborIdx] == 0 {
			*timestamp++
			dfn[neighborIdx], low[neighborIdx] = *timestamp, *timestamp
			stack = append(stack, tarjanFrame{
				node:    neighborIdx,
				nodeID:  neighbor,
				parent:  top.node,
				nbrIter: e.neighborsInComponent(neighbor, ci),
			})
		} else if dfn[neighborIdx] < low[top.node] {
			low[top.node] = dfn[neighborIdx]
		}
	}
}

// neighborsInComponent returns nodeID's current neighbors that belong
// to component ci and are not removed, fully materialized (spec §9:
// no lazy sequences).
func (e *Engine) neighborsInComponent(nodeID, ci int) []int {
	all := core.SortedNeighbors(e.cur, nodeID)
	out := make([]int, 0, len(all))
	for _, u := range all {
		if !e.Removed(u) && e.nodeToComponent[u] == ci {
			out = append(out, u)
		}
	}
	return out
}
