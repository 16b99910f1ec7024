package population

import "sort"

// UpdateFitness recomputes every item's fitness: rank-of-cost blended
// with rank-of-diversity (spec §4.G). With zero or one items, fitness
// is defined to be 0 for all (nothing to rank against).
func (m *Manager) UpdateFitness() {
	n := len(m.items)
	if n <= 1 {
		for i := range m.items {
			m.items[i].Fitness = 0
		}
		return
	}

	costs := make([]float64, n)
	diversity := make([]float64, n)
	for i, it := range m.items {
		costs[i] = float64(it.Objective)
		diversity[i] = meanSimilarity(it)
	}

	costRank := rankAscending(costs)
	divRank := rankAscending(diversity)
	for i := range m.items {
		m.items[i].Fitness = alpha*float64(costRank[i]) + (1-alpha)*float64(divRank[i])
	}
}

func meanSimilarity(it Item) float64 {
	if len(it.Similarities) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range it.Similarities {
		sum += s.Similarity
	}
	return sum / float64(len(it.Similarities))
}

// rankAscending assigns 1..n ranks by ascending value, a stable sort
// so ties break by original index (spec §4.G: "stable ascending, ties
// broken by original index").
func rankAscending(values []float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] < values[idx[j]] })

	ranks := make([]int, len(values))
	for r, i := range idx {
		ranks[i] = r + 1
	}
	return ranks
}
