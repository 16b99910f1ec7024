package population

import (
	"github.com/rs/zerolog"

	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/handle"
)

// alpha is the fitness blend weight (spec §4.G): fitness = α·cost_rank
// + (1−α)·diversity_rank, lower is better.
const alpha = 0.6

// similarityReserveHint is the capacity hint reserved for each item's
// similarity slice, sized for the common small-population case (spec
// §4.G).
const similarityReserveHint = 30

// SimEntry is one pairwise-similarity record, paired with the id of
// the other item it was computed against (spec §9: ids rather than
// direct cross-links avoid an ownership cycle).
type SimEntry struct {
	OtherID    int
	Similarity float64
}

// Item is one population member: a solution, its objective, its
// rank-blended fitness, a lifetime-unique id, and its similarity
// entries against every other current item.
type Item struct {
	ID           int
	Solution     map[int]struct{}
	Objective    int
	Fitness      float64
	Similarities []SimEntry
}

// Config holds the population manager's tunables, normally resolved
// by the builder package's functional options.
type Config struct {
	InitialPopSize  int
	MaxPopSize      int
	IncreasePopSize int
	MaxIdleGens     int
	Adaptive        bool
	StrategyName    string
	Logger          zerolog.Logger
}

// Manager maintains the memetic population described in spec §4.G: a
// flat slice of Item plus the master GraphHandle each non-duplicate
// solution is generated against.
type Manager struct {
	cfg        Config
	master     *handle.GraphHandle
	items      []Item
	nextID     int
	driverSeed int64
	genCounter uint64
}

// New returns a Manager that clones master to generate candidate
// solutions and derives its non-duplicate-generation sub-seeds from
// driverSeed (spec §9's design-note resolution: no process-wide
// counter, full reproducibility across process restarts).
func New(master *handle.GraphHandle, cfg Config, driverSeed int64) *Manager {
	return &Manager{
		cfg:        cfg,
		master:     master,
		driverSeed: driverSeed,
	}
}

// Size returns the current population size.
func (m *Manager) Size() int { return len(m.items) }

// Items returns the current items. Callers must not mutate the
// returned slice or its Solution/Similarities fields.
func (m *Manager) Items() []Item { return m.items }

// IsDuplicate reports whether sol equals (by set membership) an
// existing item's solution.
func (m *Manager) IsDuplicate(sol map[int]struct{}) bool {
	for _, it := range m.items {
		if setsEqual(it.Solution, sol) {
			return true
		}
	}
	return false
}

func setsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}

func jaccard(a, b map[int]struct{}) float64 {
	inter := 0
	for v := range a {
		if _, ok := b[v]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Add assigns sol a fresh lifetime-unique id, computes its Jaccard
// similarity against every existing item, pushes the paired entries
// symmetrically into both sides, and appends the new item.
func (m *Manager) Add(sol map[int]struct{}, obj int) {
	id := m.nextID
	m.nextID++
	item := Item{
		ID:           id,
		Solution:     core.CloneMask(sol),
		Objective:    obj,
		Similarities: make([]SimEntry, 0, similarityReserveHint),
	}
	for i := range m.items {
		sim := jaccard(sol, m.items[i].Solution)
		m.items[i].Similarities = append(m.items[i].Similarities, SimEntry{OtherID: id, Similarity: sim})
		item.Similarities = append(item.Similarities, SimEntry{OtherID: m.items[i].ID, Similarity: sim})
	}
	m.items = append(m.items, item)
}
