package population

import "github.com/xuebo100/pycnp/rng"

// tournamentArity is the k-ary tournament size used by
// TournamentSelectTwo (spec §4.G: "k=2").
const tournamentArity = 2

// TournamentSelectTwo recomputes fitness, then runs two k-ary
// uniform-with-replacement tournaments (each entrant drawn uniformly,
// the lowest-fitness entrant winning), the second disallowing the
// first's winning index so the two parents are distinct whenever the
// population holds at least two items (with one item, both are 0).
func (m *Manager) TournamentSelectTwo(rngSrc *rng.Source) (int, int, error) {
	m.UpdateFitness()

	first, err := m.tournamentPick(rngSrc, -1)
	if err != nil {
		return 0, 0, err
	}
	second, err := m.tournamentPick(rngSrc, first)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func (m *Manager) tournamentPick(rngSrc *rng.Source, exclude int) (int, error) {
	best := -1
	for i := 0; i < tournamentArity; i++ {
		idx, err := m.drawExcluding(rngSrc, exclude)
		if err != nil {
			return 0, err
		}
		if best == -1 || m.items[idx].Fitness < m.items[best].Fitness {
			best = idx
		}
	}
	return best, nil
}

func (m *Manager) drawExcluding(rngSrc *rng.Source, exclude int) (int, error) {
	if len(m.items) <= 1 {
		return 0, nil
	}
	for {
		idx, err := rngSrc.Index(len(m.items))
		if err != nil {
			return 0, err
		}
		if idx != exclude {
			return idx, nil
		}
	}
}

// GetAllThree returns the three solutions currently in the population
// in stored order. Fails unless the population size is exactly 3
// (required by IRR).
func (m *Manager) GetAllThree() ([3]map[int]struct{}, error) {
	if len(m.items) != 3 {
		return [3]map[int]struct{}{}, ErrPopulationSizeNotThree
	}
	var out [3]map[int]struct{}
	for i, it := range m.items {
		out[i] = it.Solution
	}
	return out, nil
}

// BestItem returns the item with minimum objective.
func (m *Manager) BestItem() Item {
	best := m.items[0]
	for _, it := range m.items[1:] {
		if it.Objective < best.Objective {
			best = it
		}
	}
	return best
}
