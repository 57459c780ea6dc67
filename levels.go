package halftone

import (
	"fmt"
	"math"
)

// quantizationLevels builds the evenly spaced level set spanning [0, 255]
// inclusive: level[i] = i * 255 / (levels-1). Recomputed per call, never
// cached; the set is strictly increasing with exact 0 and 255 endpoints.
func quantizationLevels(levels int) ([]float64, error) {
	if levels < 2 {
		return nil, fmt.Errorf("%w: levels must be at least 2, got %d", ErrInvalidParameter, levels)
	}
	if levels > 256 {
		return nil, fmt.Errorf("%w: levels must be at most 256, got %d", ErrInvalidParameter, levels)
	}
	set := make([]float64, levels)
	for i := range set {
		set[i] = float64(i) * 255 / float64(levels-1)
	}
	return set, nil
}

// nearestLevel returns the level closest to v. Candidates may lie outside
// [0, 255] after error accumulation; they resolve to the nearest endpoint.
// Exact ties go to the lower-indexed level: the scan replaces the running
// best only on strict improvement.
func nearestLevel(v float64, set []float64) float64 {
	best := set[0]
	bestDist := math.Abs(v - set[0])
	for _, l := range set[1:] {
		if d := math.Abs(v - l); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}
