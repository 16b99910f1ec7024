package cnpengine

import (
	"math"

	"github.com/xuebo100/pycnp/core"
)

// largeComponentThreshold is the component-count cutoff above which
// SelectComponent switches to the size-weighted "larger" variant.
const largeComponentThreshold = 50

// SelectComponent picks one component index heuristically, favoring
// larger components, per spec §4.B. It falls back to the single
// largest component when the heuristic candidate set is empty, and
// returns core.ErrEmptyComponentSelection only when there is no
// component at all.
func (e *Engine) SelectComponent() (int, error) {
	if len(e.components) == 0 {
		return 0, core.ErrEmptyComponentSelection
	}
	if len(e.components) > largeComponentThreshold {
		return e.selectLargerComponent()
	}

	minSz, maxSz := math.MaxInt, 0
	for _, c := range e.components {
		if c.Size > 2 {
			if c.Size < minSz {
				minSz = c.Size
			}
			if c.Size > maxSz {
				maxSz = c.Size
			}
		}
	}

	idxDraw, err := e.rng.Index(3)
	if err != nil {
		return 0, err
	}
	threshold := float64(maxSz) - float64(maxSz-minSz)*0.5 - float64(idxDraw)

	candidates := make([]int, 0, len(e.components))
	for i, c := range e.components {
		if float64(c.Size) >= threshold {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return e.largestComponentIndex(), nil
	}
	pick, err := e.rng.Index(len(candidates))
	if err != nil {
		return 0, err
	}
	return candidates[pick], nil
}

func (e *Engine) largestComponentIndex() int {
	best, bestSize := 0, -1
	for i, c := range e.components {
		if c.Size > bestSize {
			bestSize = c.Size
			best = i
		}
	}
	return best
}

// selectLargerComponent implements the alternative roulette-wheel
// variant used once the component count exceeds
// largeComponentThreshold, per spec §4.B.
func (e *Engine) selectLargerComponent() (int, error) {
	total := e.n - len(e.removed)
	avg := int(math.Round(float64(total) / float64(len(e.components))))
	if avg < 2 {
		avg = 2
	}

	// Global largest/second-largest, tracked across every component
	// regardless of the avg threshold below, so the probability-0.5
	// fallback in the single-candidate branch has a real target.
	maxSize, maxIdx := -1, -1
	secondSize, secondIdx := -1, -1
	for i, c := range e.components {
		if c.Size > maxSize {
			secondSize, secondIdx = maxSize, maxIdx
			maxSize, maxIdx = c.Size, i
		} else if c.Size > secondSize {
			secondSize, secondIdx = c.Size, i
		}
	}

	var candidates, sizes []int
	var totalInBig int
	for i, c := range e.components {
		if c.Size <= avg {
			continue
		}
		candidates = append(candidates, i)
		sizes = append(sizes, c.Size)
		totalInBig += c.Size
	}

	if len(candidates) == 0 {
		return e.largestComponentIndex(), nil
	}
	if len(candidates) == 1 {
		if e.rng.Bool(0.5) && secondIdx != -1 {
			return secondIdx, nil
		}
		return candidates[0], nil
	}

	draw, err := e.rng.Index(totalInBig)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, idx := range candidates {
		sum += sizes[i]
		if draw < sum {
			return idx, nil
		}
	}
	return candidates[len(candidates)-1], nil
}
