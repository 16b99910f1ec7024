package handle

import (
	"github.com/xuebo100/pycnp/cnpengine"
	"github.com/xuebo100/pycnp/core"
	"github.com/xuebo100/pycnp/dcnpengine"
)

// InvalidNode is the sentinel "no candidate" node id returned by
// FindBestToAdd/FindBestToRemove when no valid move exists.
const InvalidNode = dcnpengine.InvalidNode

// Kind tags which concrete engine a GraphHandle wraps.
type Kind int

const (
	Cnp Kind = iota
	Dcnp
)

func (k Kind) String() string {
	if k == Dcnp {
		return "dcnp"
	}
	return "cnp"
}

// GraphHandle is a tagged-variant facade over cnpengine.Engine and
// dcnpengine.Engine (spec §4.D). Exactly one of cnp/dcnp is non-nil,
// selected by kind. Strategies and crossover operators hold a
// *GraphHandle rather than branching on problem type themselves.
type GraphHandle struct {
	kind Kind
	cnp  *cnpengine.Engine
	dcnp *dcnpengine.Engine
}

// NewCnp builds a GraphHandle wrapping a fresh CnpEngine.
func NewCnp(adj core.AdjList, k int, seed int64) (*GraphHandle, error) {
	e, err := cnpengine.Build(adj, k, seed)
	if err != nil {
		return nil, err
	}
	return &GraphHandle{kind: Cnp, cnp: e}, nil
}

// NewDcnp builds a GraphHandle wrapping a fresh DcnpEngine with hop
// limit hopDistance.
func NewDcnp(adj core.AdjList, hopDistance, k int, seed int64) (*GraphHandle, error) {
	e, err := dcnpengine.Build(adj, hopDistance, k, seed)
	if err != nil {
		return nil, err
	}
	return &GraphHandle{kind: Dcnp, dcnp: e}, nil
}

// Kind reports which engine this handle wraps.
func (h *GraphHandle) Kind() Kind { return h.kind }

// NumNodes returns the fixed vertex universe size.
func (h *GraphHandle) NumNodes() int {
	if h.kind == Cnp {
		return h.cnp.NumNodes()
	}
	return h.dcnp.NumNodes()
}

// Budget returns the current removal budget k.
func (h *GraphHandle) Budget() int {
	if h.kind == Cnp {
		return h.cnp.Budget()
	}
	return h.dcnp.Budget()
}

// Removed reports whether v is currently in the removed mask.
func (h *GraphHandle) Removed(v int) bool {
	if h.kind == Cnp {
		return h.cnp.Removed(v)
	}
	return h.dcnp.Removed(v)
}

// RemovedMask returns a copy of the current removed-vertex set.
func (h *GraphHandle) RemovedMask() map[int]struct{} {
	if h.kind == Cnp {
		return h.cnp.RemovedMask()
	}
	return h.dcnp.RemovedMask()
}

// NumRemoved returns |S|.
func (h *GraphHandle) NumRemoved() int {
	if h.kind == Cnp {
		return h.cnp.NumRemoved()
	}
	return h.dcnp.NumRemoved()
}

// Objective returns the current objective value for the wrapped
// engine (connected_pairs for CNP, the reduced pair-count for DCNP).
func (h *GraphHandle) Objective() int {
	if h.kind == Cnp {
		return h.cnp.Objective()
	}
	return h.dcnp.Objective()
}

// SetRemovedAll resets the removed mask to exactly s, rebuilding
// whatever incremental structure the wrapped engine maintains.
func (h *GraphHandle) SetRemovedAll(s map[int]struct{}) error {
	if h.kind == Cnp {
		return h.cnp.SetRemovedAll(s)
	}
	return h.dcnp.SetRemovedAll(s)
}

// Remove removes v from the surviving graph.
func (h *GraphHandle) Remove(v int) error {
	if h.kind == Cnp {
		return h.cnp.Remove(v)
	}
	return h.dcnp.Remove(v)
}

// Add restores v to the surviving graph.
func (h *GraphHandle) Add(v int) error {
	if h.kind == Cnp {
		return h.cnp.Add(v)
	}
	return h.dcnp.Add(v)
}

// AvailableNodes returns every vertex not yet permanently excised by
// GetReducedBy, in ascending order.
func (h *GraphHandle) AvailableNodes() []int {
	if h.kind == Cnp {
		return h.cnp.AvailableNodes()
	}
	return h.dcnp.AvailableNodes()
}

// GetReducedBy permanently excises s from the wrapped engine's
// adjacency and decrements its budget by |s| (spec §4.C, §4.F RSC).
// Both engines support this directly; callers must only ever invoke
// it on a throwaway clone, per design note 2 in DESIGN.md.
func (h *GraphHandle) GetReducedBy(s map[int]struct{}) error {
	if h.kind == Cnp {
		return h.cnp.GetReducedBy(s)
	}
	return h.dcnp.GetReducedBy(s)
}

// Clone returns an independent deep copy of h, with its own RNG
// stream (spec §5).
func (h *GraphHandle) Clone() *GraphHandle {
	if h.kind == Cnp {
		return &GraphHandle{kind: Cnp, cnp: h.cnp.Clone()}
	}
	return &GraphHandle{kind: Dcnp, dcnp: h.dcnp.Clone()}
}

// NumComponents returns the CNP component count, or 0 on a DCNP handle
// (spec §4.D: CNP-only primitives no-op on the other kind).
func (h *GraphHandle) NumComponents() int {
	if h.kind == Cnp {
		return len(h.cnp.Components())
	}
	return 0
}

// SelectComponent delegates to cnpengine.Engine.SelectComponent.
// Returns ErrWrongKind on a DCNP handle: the move strategies that call
// this never run on DCNP handles, per spec §4.D.
func (h *GraphHandle) SelectComponent() (int, error) {
	if h.kind != Cnp {
		return 0, ErrWrongKind
	}
	return h.cnp.SelectComponent()
}

// RandomNodeFrom delegates to cnpengine.Engine.RandomNodeFrom.
func (h *GraphHandle) RandomNodeFrom(ci int) (int, error) {
	if h.kind != Cnp {
		return 0, ErrWrongKind
	}
	return h.cnp.RandomNodeFrom(ci)
}

// AgeNodeFrom delegates to cnpengine.Engine.AgeNodeFrom.
func (h *GraphHandle) AgeNodeFrom(ci int) (int, error) {
	if h.kind != Cnp {
		return 0, ErrWrongKind
	}
	return h.cnp.AgeNodeFrom(ci)
}

// ImpactNodeFrom delegates to cnpengine.Engine.ImpactNodeFrom.
func (h *GraphHandle) ImpactNodeFrom(ci int) (int, error) {
	if h.kind != Cnp {
		return 0, ErrWrongKind
	}
	return h.cnp.ImpactNodeFrom(ci)
}

// ConnectionGain delegates to cnpengine.Engine.ConnectionGain.
func (h *GraphHandle) ConnectionGain(v int) (int, error) {
	if h.kind != Cnp {
		return 0, ErrWrongKind
	}
	return h.cnp.ConnectionGain(v), nil
}

// SetNodeAge delegates to cnpengine.Engine.SetNodeAge; a no-op on a
// DCNP handle, since CBNS/CHNS (the only age-stamping strategies)
// never run on DCNP handles.
func (h *GraphHandle) SetNodeAge(v int, step int64) {
	if h.kind == Cnp {
		h.cnp.SetNodeAge(v, step)
	}
}

// GreedyAdd delegates to cnpengine.Engine.GreedyAdd.
func (h *GraphHandle) GreedyAdd() (int, error) {
	if h.kind != Cnp {
		return 0, ErrWrongKind
	}
	return h.cnp.GreedyAdd()
}

// RandomRemove delegates to the wrapped engine's RandomRemove — both
// engines implement it directly, so no fallback is needed.
func (h *GraphHandle) RandomRemove() (int, error) {
	if h.kind == Cnp {
		return h.cnp.RandomRemove()
	}
	return h.dcnp.RandomRemove()
}

// FindBestToAdd delegates to dcnpengine.Engine.FindBestToAdd on a DCNP
// handle; on a CNP handle it falls back to GreedyAdd, per spec §4.D.
func (h *GraphHandle) FindBestToAdd() (int, error) {
	if h.kind == Cnp {
		return h.cnp.GreedyAdd()
	}
	return h.dcnp.FindBestToAdd()
}

// FindBestToRemove delegates to dcnpengine.Engine.FindBestToRemove on
// a DCNP handle; on a CNP handle it falls back to RandomRemove, per
// spec §4.D.
func (h *GraphHandle) FindBestToRemove() (int, error) {
	if h.kind == Cnp {
		return h.cnp.RandomRemove()
	}
	return h.dcnp.FindBestToRemove()
}

// BuildTree forces a full K-hop row rebuild on a DCNP handle; a no-op
// on CNP, per spec §4.D.
func (h *GraphHandle) BuildTree() {
	if h.kind == Dcnp {
		_ = h.dcnp.SetRemovedAll(h.dcnp.RemovedMask())
	}
}

// KhopSize returns tree_size[v] on a DCNP handle, or 0 on CNP, per
// spec §4.D.
func (h *GraphHandle) KhopSize(v int) int {
	if h.kind == Dcnp {
		return h.dcnp.TreeSize(v)
	}
	return 0
}

// Betweenness returns the DCNP betweenness-centrality buffer, or an
// empty view on CNP, per spec §4.D.
func (h *GraphHandle) Betweenness() []float64 {
	if h.kind == Dcnp {
		return h.dcnp.Betweenness()
	}
	return []float64{}
}

