// Package generate orchestrates the drill-test pipeline: load a tool catalog,
// resolve the tool selection, compute the hole layout, render the CIX text,
// and write the program file.
//
// The pipeline is synchronous and stateless per call; a Runner only carries a
// logger and a clock. One Generate call reads one catalog and one
// configuration snapshot and produces one document.
package generate

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tmelzer/cixforge/pkg/cix"
	"github.com/tmelzer/cixforge/pkg/config"
	"github.com/tmelzer/cixforge/pkg/errors"
	"github.com/tmelzer/cixforge/pkg/layout"
	"github.com/tmelzer/cixforge/pkg/tooling"
)

// Runner executes generation runs. Multiple goroutines may share a Runner;
// each call builds its own tool table and layout.
type Runner struct {
	Logger *log.Logger

	// Now supplies timestamps for output filenames. Tests override it.
	Now func() time.Time
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Now: time.Now}
}

// Stats carries per-stage timings for one generation run.
type Stats struct {
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Result is the outcome of one successful generation run.
type Result struct {
	Text  string // the full CIX document
	Path  string // where the document was written
	Rows  int    // diameter rows in the layout
	Holes int    // drill operations emitted
	Tools int    // tools loaded from the catalog
	Stats Stats
}

// Generate runs the full pipeline for one catalog. The configuration must
// validate cleanly, otherwise generation refuses to start and the error
// carries every problem found.
func (r *Runner) Generate(ctx context.Context, catalogPath string, cfg config.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return nil, errors.Validation(problems)
	}

	parseStart := time.Now()
	table, err := tooling.LoadTable(catalogPath)
	if err != nil {
		return nil, err
	}
	parseTime := time.Since(parseStart)
	r.Logger.Debug("loaded tool catalog", "path", catalogPath, "tools", table.Len())

	groups, err := resolveSelection(table, cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.TestAllTools {
		for _, warning := range ValidateSelection(table, groups) {
			r.Logger.Warn(warning)
		}
	}

	layoutStart := time.Now()
	lay := layout.Compute(groups)
	layoutTime := time.Since(layoutStart)

	renderStart := time.Now()
	text := cix.Render(groups, lay, cfg)
	renderTime := time.Since(renderStart)

	path := cfg.OutputFilename(r.Now())
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "write program %s", path)
	}

	res := &Result{
		Text:  text,
		Path:  path,
		Rows:  len(groups),
		Holes: lay.HoleCount(),
		Tools: table.Len(),
		Stats: Stats{ParseTime: parseTime, LayoutTime: layoutTime, RenderTime: renderTime},
	}
	r.Logger.Info("generated drill test",
		"catalog", catalogPath,
		"output", path,
		"rows", res.Rows,
		"holes", res.Holes)
	return res, nil
}

// resolveSelection picks the diameter grouping for this run. The two
// strategies are mutually exclusive: either every catalog tool is tested, or
// the caller supplied an explicit grouping.
func resolveSelection(table *tooling.Table, cfg config.Config) (map[float64][]int, error) {
	switch {
	case cfg.TestAllTools:
		return table.DiameterGroups(), nil
	case len(cfg.CustomGroups) > 0:
		return cfg.CustomGroups, nil
	default:
		return nil, errors.New(errors.ErrCodeSelectionMissing, "no tool selection: enable all-tools testing or supply custom groups")
	}
}

// ValidateSelection checks a custom grouping against the catalog: every
// spindle must exist and its catalog diameter must be within 0.1mm of the
// group's diameter. Returns one warning per problem; an empty slice means
// the selection matches the catalog.
func ValidateSelection(table *tooling.Table, groups map[float64][]int) []string {
	var warnings []string
	for _, dia := range layout.Diameters(groups) {
		for _, spindle := range groups[dia] {
			tool, ok := table.Lookup(spindle)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("spindle %d not found in %s", spindle, table.Path()))
				continue
			}
			if math.Abs(tool.Diameter-dia) > tooling.DefaultTolerance {
				warnings = append(warnings,
					fmt.Sprintf("spindle %d diameter mismatch: expected %gmm, got %gmm", spindle, dia, tool.Diameter))
			}
		}
	}
	return warnings
}
