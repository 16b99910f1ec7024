package dcnpengine

// Clone returns an independent deep copy of e, with its own RNG stream
// derived from e's (spec §5).
func (e *Engine) Clone() *Engine {
	c := &Engine{
		n:          e.n,
		k:          e.k,
		K:          e.K,
		adj:        e.adj.Clone(),
		cur:        e.cur.Clone(),
		removed:    make(map[int]struct{}, len(e.removed)),
		excised:    make(map[int]struct{}, len(e.excised)),
		intree:     append([]uint64(nil), e.intree...),
		treeSize:   append([]int(nil), e.treeSize...),
		rng:        e.rng.Derive(0xD2 ^ uint64(len(e.removed))),
		bfsVisited: make([]int64, e.n),
		bfsLevel:   make([]int, e.n),
		bfsQueue:   make([]int, e.n),
	}
	for v := range e.removed {
		c.removed[v] = struct{}{}
	}
	for v := range e.excised {
		c.excised[v] = struct{}{}
	}
	return c
}
