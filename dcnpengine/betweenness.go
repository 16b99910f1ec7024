package dcnpengine

import "github.com/xuebo100/pycnp/core"

// Betweenness computes standard Brandes betweenness centrality over
// the current graph, skipping removed vertices, and returns a view
// into a buffer reused across calls (spec §5: large buffers are
// engine-owned and never aliased across clones). Callers must not
// retain the returned slice past the next call that mutates the
// engine.
func (e *Engine) Betweenness() []float64 {
	if e.betweenness == nil {
		e.betweenness = make([]float64, e.n)
	}
	for i := range e.betweenness {
		e.betweenness[i] = 0
	}

	sigma := make([]int, e.n)
	d := make([]int, e.n)
	delta := make([]float64, e.n)
	preds := make([][]int, e.n)
	stack := make([]int, 0, e.n)
	queue := make([]int, 0, e.n)

	for s := 0; s < e.n; s++ {
		if e.Removed(s) {
			continue
		}
		for i := 0; i < e.n; i++ {
			d[i] = -1
			sigma[i] = 0
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		sigma[s] = 1
		d[s] = 0
		stack = stack[:0]
		queue = queue[:0]
		queue = append(queue, s)

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range core.SortedNeighbors(e.cur, v) {
				if e.Removed(w) {
					continue
				}
				if d[w] < 0 {
					queue = append(queue, w)
					d[w] = d[v] + 1
				}
				if d[w] == d[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += (float64(sigma[v]) / float64(sigma[w])) * (1.0 + delta[w])
			}
			if w != s {
				e.betweenness[w] += delta[w]
			}
		}
	}
	return e.betweenness
}
