package population

// RemoveWorst recomputes fitness, drops the item with MAX fitness
// (lower is better), and scrubs its id from every remaining item's
// similarity list.
func (m *Manager) RemoveWorst() {
	m.UpdateFitness()
	if len(m.items) == 0 {
		return
	}
	worst := 0
	for i := 1; i < len(m.items); i++ {
		if m.items[i].Fitness > m.items[worst].Fitness {
			worst = i
		}
	}
	removedID := m.items[worst].ID
	m.items = append(m.items[:worst], m.items[worst+1:]...)
	for i := range m.items {
		m.items[i].Similarities = scrubSimEntry(m.items[i].Similarities, removedID)
	}
}

func scrubSimEntry(entries []SimEntry, id int) []SimEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.OtherID != id {
			out = append(out, e)
		}
	}
	return out
}

// Update folds a freshly-produced offspring into the population: add
// it, drop the worst item, and — if adaptive sizing is enabled and
// idleGens is a positive multiple of cfg.MaxIdleGens — either expand
// the population or rebuild it around its best item.
func (m *Manager) Update(sol map[int]struct{}, obj int, idleGens int) error {
	m.Add(sol, obj)
	m.RemoveWorst()

	if !m.cfg.Adaptive || idleGens <= 0 || m.cfg.MaxIdleGens <= 0 || idleGens%m.cfg.MaxIdleGens != 0 {
		return nil
	}
	if len(m.items) < m.cfg.MaxPopSize {
		return m.Expand()
	}
	return m.Rebuild()
}

// Expand adds cfg.IncreasePopSize new non-duplicate items.
func (m *Manager) Expand() error {
	for i := 0; i < m.cfg.IncreasePopSize; i++ {
		sol, obj, err := m.generateNonDuplicate()
		if err != nil {
			return err
		}
		m.Add(sol, obj)
	}
	m.cfg.Logger.Debug().Int("size", len(m.items)).Msg("population expanded")
	return nil
}

// Rebuild keeps the best item (by objective, not fitness), drops the
// rest, and adds one freshly-generated non-duplicate item.
func (m *Manager) Rebuild() error {
	best := m.BestItem()
	m.items = []Item{{ID: best.ID, Solution: best.Solution, Objective: best.Objective}}

	sol, obj, err := m.generateNonDuplicate()
	if err != nil {
		return err
	}
	m.Add(sol, obj)
	m.cfg.Logger.Debug().Int("bestObj", best.Objective).Msg("population rebuilt")
	return nil
}
