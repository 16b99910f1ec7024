package dcnpengine

// FindBestToRemove tentatively removes each non-removed vertex in
// turn, measures the objective improvement, and returns the vertex
// achieving the maximum positive improvement (ties broken uniformly).
// Returns InvalidNode if no positive improvement exists.
func (e *Engine) FindBestToRemove() (int, error) {
	current := e.Objective()
	maxImprovement := 0
	candidates := make([]int, 0)

	for v := 0; v < e.n; v++ {
		if e.Removed(v) {
			continue
		}
		if err := e.Remove(v); err != nil {
			return 0, err
		}
		improvement := current - e.Objective()
		if err := e.Add(v); err != nil {
			return 0, err
		}

		if improvement > maxImprovement {
			maxImprovement = improvement
			candidates = candidates[:0]
			candidates = append(candidates, v)
		} else if improvement == maxImprovement && improvement > 0 {
			candidates = append(candidates, v)
		}
	}

	if len(candidates) == 0 {
		return InvalidNode, nil
	}
	return e.pickUniform(candidates)
}

// FindBestToAdd tentatively adds back each removed vertex in turn,
// measures the objective deterioration, and returns the vertex with
// minimum deterioration (ties broken uniformly). Returns InvalidNode
// if the removed mask is empty.
func (e *Engine) FindBestToAdd() (int, error) {
	if len(e.removed) == 0 {
		return InvalidNode, nil
	}
	current := e.Objective()
	minDeterioration := int(^uint(0) >> 1) // math.MaxInt
	candidates := make([]int, 0)

	removedIDs := make([]int, 0, len(e.removed))
	for v := range e.removed {
		removedIDs = append(removedIDs, v)
	}
	sortInts(removedIDs)

	for _, v := range removedIDs {
		if err := e.Add(v); err != nil {
			return 0, err
		}
		deterioration := e.Objective() - current
		if err := e.Remove(v); err != nil {
			return 0, err
		}

		if deterioration < minDeterioration {
			minDeterioration = deterioration
			candidates = candidates[:0]
			candidates = append(candidates, v)
		} else if deterioration == minDeterioration {
			candidates = append(candidates, v)
		}
	}
	return e.pickUniform(candidates)
}

// RandomRemove uniformly picks a non-removed vertex.
func (e *Engine) RandomRemove() (int, error) {
	if e.n-len(e.removed) <= 0 {
		return InvalidNode, nil
	}
	for {
		idx, err := e.rng.Index(e.n)
		if err != nil {
			return 0, err
		}
		if !e.Removed(idx) {
			return idx, nil
		}
	}
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

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
