package tooling

import (
	"math"
	"sort"
)

// DefaultTolerance is the absolute diameter tolerance (mm) used by
// LookupByDiameter when callers pass a non-positive tolerance.
const DefaultTolerance = 0.1

// Table is the in-memory tool table built from one catalog file. It is
// read-only after construction; reload the catalog to pick up changes.
type Table struct {
	path  string
	tools map[int]Tool
}

// Path returns the catalog file this table was loaded from.
func (t *Table) Path() string { return t.path }

// Len returns the number of tools in the table.
func (t *Table) Len() int { return len(t.tools) }

// Lookup returns the tool mounted on the given spindle.
func (t *Table) Lookup(spindleID int) (Tool, bool) {
	tool, ok := t.tools[spindleID]
	return tool, ok
}

// LookupByDiameter returns all tools whose diameter is within tol millimeters
// of the target. A non-positive tol falls back to DefaultTolerance. Result
// order is unspecified.
func (t *Table) LookupByDiameter(diameter, tol float64) []Tool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var out []Tool
	for _, tool := range t.tools {
		if math.Abs(tool.Diameter-diameter) <= tol {
			out = append(out, tool)
		}
	}
	return out
}

// All returns every tool in the table, ordered by spindle id.
func (t *Table) All() []Tool {
	out := make([]Tool, 0, len(t.tools))
	for _, tool := range t.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpindleID < out[j].SpindleID })
	return out
}

// DiameterGroups groups spindles by their exact parsed diameter. Spindle ids
// within each group are sorted ascending. Grouping uses float equality on the
// parsed values; tolerance merging happens nowhere in this stage.
func (t *Table) DiameterGroups() map[float64][]int {
	groups := make(map[float64][]int)
	for _, tool := range t.tools {
		groups[tool.Diameter] = append(groups[tool.Diameter], tool.SpindleID)
	}
	for dia := range groups {
		sort.Ints(groups[dia])
	}
	return groups
}
