package cnpengine

// Clone returns an independent deep copy of e: mutating the clone
// never affects e and vice versa. The clone's RNG stream is derived
// from e's (spec §5: "Clones do not share random state with their
// parent handle"), consuming one draw from e's stream to decorrelate
// successive clones.
func (e *Engine) Clone() *Engine {
	c := &Engine{
		n:              e.n,
		k:              e.k,
		adj:            e.adj.Clone(),
		cur:            e.cur.Clone(),
		removed:        make(map[int]struct{}, len(e.removed)),
		excised:        make(map[int]struct{}, len(e.excised)),
		connectedPairs: e.connectedPairs,
		step:           e.step,
		rng:            e.rng.Derive(0xC7 ^ uint64(e.step)),
		visitEpoch:     make([]int64, e.n),
		dfsStack:       make([]int, 0, e.n),
	}
	for v := range e.removed {
		c.removed[v] = struct{}{}
	}
	for v := range e.excised {
		c.excised[v] = struct{}{}
	}
	c.nodeToComponent = append([]int(nil), e.nodeToComponent...)
	c.age = append([]int64(nil), e.age...)
	c.components = make([]Component, len(e.components))
	for i, comp := range e.components {
		c.components[i] = Component{Size: comp.Size, Members: append([]int(nil), comp.Members...)}
	}
	return c
}
