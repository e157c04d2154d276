// Package layout computes drill-test hole positions and panel bounds.
//
// The layout is a simple grid: each bit diameter becomes one row (ascending
// diameter order, bottom row first), and each spindle in the diameter's group
// becomes one hole in that row, left to right in group-list order. A label
// anchor to the right of the widest row reserves space for the per-row
// engraved text.
//
// The computation is deterministic and order-sensitive: reordering a group's
// spindle list changes the emitted coordinates even though the hole set is
// identical. That matches the operators' physical layout expectations and
// must be preserved.
package layout

import (
	"math"
	"sort"
)

// Grid constants, all in millimeters. These match the drill-test sheets the
// machine operators already know, so they are not configurable.
const (
	StartX   = 20.0 // x of the first hole in every row
	StartY   = 20.0 // y of the first (smallest-diameter) row
	ColPitch = 32.0 // center-to-center spacing within a row
	RowPitch = 50.0 // center-to-center spacing between rows

	LabelGap     = 40.0 // gap between the rightmost hole center and the label anchor
	LabelReserve = 50.0 // width reserved for the engraved label text
)

// Position is one planned hole: where to drill, with what, and how wide.
type Position struct {
	Diameter float64
	Spindle  int
	X, Y     float64
}

// Bounds is the minimal rectangle covering all drill bit extents plus the
// reserved label area.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Layout is the computed drill-test geometry for one generation run.
type Layout struct {
	Positions []Position
	Bounds    Bounds

	// MaxXCenter is the largest hole-center x across all rows.
	MaxXCenter float64
	// LabelX is the x anchor where every row's label text starts.
	LabelX float64
}

// fallbackBounds is returned for an empty selection: a degenerate but
// non-empty default panel rather than an error.
var fallbackBounds = Bounds{MinX: StartX, MinY: StartY, MaxX: LabelReserve, MaxY: LabelReserve}

// Diameters returns the keys of a diameter grouping in ascending order,
// which is also row order (bottom to top).
func Diameters(groups map[float64][]int) []float64 {
	out := make([]float64, 0, len(groups))
	for d := range groups {
		out = append(out, d)
	}
	sort.Float64s(out)
	return out
}

// Compute lays out one hole per selected spindle and derives the panel
// bounds. The input grouping is not modified. Repeated spindle ids in a
// group produce repeated holes; nothing is deduplicated.
func Compute(groups map[float64][]int) Layout {
	var lay Layout
	lay.MaxXCenter = StartX

	y := StartY
	for _, dia := range Diameters(groups) {
		x := StartX
		for _, spindle := range groups[dia] {
			lay.Positions = append(lay.Positions, Position{
				Diameter: dia,
				Spindle:  spindle,
				X:        x,
				Y:        y,
			})
			lay.MaxXCenter = math.Max(lay.MaxXCenter, x)
			x += ColPitch
		}
		y += RowPitch
	}

	lay.LabelX = lay.MaxXCenter + LabelGap

	if len(lay.Positions) == 0 {
		lay.Bounds = fallbackBounds
		return lay
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxXDrill, maxYDrill := math.Inf(-1), math.Inf(-1)
	for _, p := range lay.Positions {
		r := p.Diameter / 2
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxXDrill = math.Max(maxXDrill, p.X+r)
		maxYDrill = math.Max(maxYDrill, p.Y+r)
	}

	lay.Bounds = Bounds{
		MinX: math.Min(0, minX),
		MinY: math.Min(0, minY),
		MaxX: math.Max(maxXDrill, lay.LabelX+LabelReserve),
		MaxY: maxYDrill,
	}
	return lay
}

// RowY returns the baseline y of the row drilled at the given diameter, or
// false if the layout has no such row.
func (l Layout) RowY(diameter float64) (float64, bool) {
	for _, p := range l.Positions {
		if p.Diameter == diameter {
			return p.Y, true
		}
	}
	return 0, false
}

// HoleCount returns the number of planned holes.
func (l Layout) HoleCount() int { return len(l.Positions) }
