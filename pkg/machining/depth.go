// Package machining holds pure machining-parameter calculations.
package machining

import (
	"math"
	"sort"
)

// DefaultTolerance is the diameter tolerance (mm) for fuzzy depth-limit
// matching when callers pass a non-positive tolerance.
const DefaultTolerance = 0.1

// EffectiveDepth resolves the drill depth to emit for a hole of the given
// diameter, clamping the nominal depth to any per-diameter ceiling in limits.
//
// Resolution order:
//  1. Exact limit for the diameter → min(nominal, limit).
//  2. Nearest limit within tol millimeters → min(nominal, limit). Ties in
//     distance go to the smaller configured diameter so the result does not
//     depend on map iteration order.
//  3. No limit in range → nominal unchanged.
//
// The limits map is never mutated.
func EffectiveDepth(nominal, diameter float64, limits map[float64]float64, tol float64) float64 {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	if limit, ok := limits[diameter]; ok {
		return math.Min(nominal, limit)
	}

	keys := make([]float64, 0, len(limits))
	for k := range limits {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	best := math.NaN()
	bestDist := math.Inf(1)
	for _, k := range keys {
		dist := math.Abs(k - diameter)
		if dist <= tol && dist < bestDist {
			best = limits[k]
			bestDist = dist
		}
	}
	if !math.IsNaN(best) {
		return math.Min(nominal, best)
	}
	return nominal
}
