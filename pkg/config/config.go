// Package config defines the drill-test generation configuration.
//
// A Config is an immutable value object constructed once per generation call
// through a Builder. The Builder replaces ad-hoc setters: every range check
// runs at Build time and all problems are collected into one CONFIG_INVALID
// error instead of failing on the first.
package config

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/tmelzer/cixforge/pkg/errors"
)

// Default values for a drill-test run. Speeds of 0 mean "machine default".
const (
	DefaultXSpacing       = 32.0
	DefaultYSpacing       = 50.0
	DefaultMinSpacing     = 20.0
	DefaultDepth          = 19.0
	DefaultMaxDepth       = 20.0
	DefaultMaxHolesPerRow = 99
	DefaultPanelThickness = 19.0
	DefaultPanelMargin    = 5.0
	DefaultManualWidth    = 438.0
	DefaultManualHeight   = 640.0
	DefaultEngravingTool  = "V45D22MM"
	DefaultEngravingDepth = 0.5
	DefaultOutputFile     = "R2_Drill_Test.cix"

	// DefaultTimestampLayout renders as MM_DD_YYYY.
	DefaultTimestampLayout = "01_02_2006"
)

// Config is a validated, read-only parameter bag for one generation call.
// Construct it with a Builder; do not mutate it afterwards.
type Config struct {
	// Hole grid
	XSpacing   float64 // reserved for future grids; the layout pitch is fixed
	YSpacing   float64
	MinSpacing float64

	// Depths (mm)
	Depth       float64 // nominal drill depth
	MaxDepth    float64 // global ceiling, also bounds every per-diameter limit
	DepthLimits map[float64]float64

	// Panel
	PanelThickness float64 // LPZ
	AutoSizePanel  bool
	PanelMargin    float64
	ManualWidth    float64 // LPX when AutoSizePanel is false
	ManualHeight   float64 // LPY when AutoSizePanel is false

	// Engraving
	EngravingTool  string
	EngravingDepth float64

	// Speeds; 0 leaves the machine default in place
	DrillSpeed     int
	EngravingSpeed int
	FeedRate       int

	// Tool selection: exactly one of the two strategies applies
	TestAllTools bool
	CustomGroups map[float64][]int

	// Safety
	MaxHolesPerRow int

	// Output
	OutputFile      string
	AutoTimestamp   bool
	TimestampLayout string
}

// HasSelection reports whether a tool selection strategy is configured.
func (c Config) HasSelection() bool {
	return c.TestAllTools || len(c.CustomGroups) > 0
}

// OutputFilename returns the destination filename, inserting the timestamp
// before the extension when AutoTimestamp is set.
func (c Config) OutputFilename(now time.Time) string {
	if !c.AutoTimestamp {
		return c.OutputFile
	}
	stamp := now.Format(c.TimestampLayout)
	if i := strings.LastIndex(c.OutputFile, "."); i >= 0 {
		return c.OutputFile[:i] + "_" + stamp + c.OutputFile[i:]
	}
	return c.OutputFile + "_" + stamp
}

// Validate collects every configuration problem. An empty slice means the
// configuration is safe to generate from.
func (c Config) Validate() []string {
	var problems []string

	if c.XSpacing < c.MinSpacing {
		problems = append(problems, fmt.Sprintf("x spacing too small: %g < %g", c.XSpacing, c.MinSpacing))
	}
	if c.YSpacing < c.MinSpacing {
		problems = append(problems, fmt.Sprintf("y spacing too small: %g < %g", c.YSpacing, c.MinSpacing))
	}
	if c.Depth <= 0 || c.Depth > c.MaxDepth {
		problems = append(problems, fmt.Sprintf("invalid drill depth: %g (must be 0 < depth <= %g)", c.Depth, c.MaxDepth))
	}
	if c.PanelThickness <= 0 {
		problems = append(problems, "panel thickness must be positive")
	} else if c.PanelThickness > 1000 {
		problems = append(problems, fmt.Sprintf("panel thickness is unreasonably large: %g", c.PanelThickness))
	}
	if c.PanelMargin < 0 {
		problems = append(problems, fmt.Sprintf("panel margin must not be negative: %g", c.PanelMargin))
	}
	if !c.AutoSizePanel && (c.ManualWidth <= 0 || c.ManualHeight <= 0) {
		problems = append(problems, fmt.Sprintf("manual panel size must be positive: %gx%g", c.ManualWidth, c.ManualHeight))
	}

	if strings.TrimSpace(c.EngravingTool) == "" {
		problems = append(problems, "engraving tool name must not be empty")
	}
	if c.EngravingDepth < 0.1 || c.EngravingDepth > 2.0 {
		problems = append(problems, fmt.Sprintf("engraving depth must be between 0.1-2.0 mm: %g", c.EngravingDepth))
	}

	if c.DrillSpeed != 0 && (c.DrillSpeed < 1000 || c.DrillSpeed > 24000) {
		problems = append(problems, fmt.Sprintf("drill speed must be between 1000-24000 RPM: %d", c.DrillSpeed))
	}
	if c.EngravingSpeed != 0 && (c.EngravingSpeed < 1000 || c.EngravingSpeed > 24000) {
		problems = append(problems, fmt.Sprintf("engraving speed must be between 1000-24000 RPM: %d", c.EngravingSpeed))
	}
	if c.FeedRate != 0 && (c.FeedRate < 100 || c.FeedRate > 5000) {
		problems = append(problems, fmt.Sprintf("feed rate must be between 100-5000 mm/min: %d", c.FeedRate))
	}

	for dia, spindles := range c.CustomGroups {
		if dia <= 0 {
			problems = append(problems, fmt.Sprintf("invalid diameter: %g", dia))
		}
		if len(spindles) == 0 {
			problems = append(problems, fmt.Sprintf("no spindles specified for diameter %g", dia))
		}
		if len(spindles) > c.MaxHolesPerRow {
			problems = append(problems, fmt.Sprintf("too many spindles for diameter %g: %d > %d", dia, len(spindles), c.MaxHolesPerRow))
		}
	}

	for dia, limit := range c.DepthLimits {
		if dia <= 0 {
			problems = append(problems, fmt.Sprintf("invalid diameter for depth limit: %g", dia))
		}
		if limit <= 0 {
			problems = append(problems, fmt.Sprintf("invalid max depth for diameter %g: %g", dia, limit))
		}
		if limit > c.MaxDepth {
			problems = append(problems, fmt.Sprintf("max depth for diameter %g exceeds global max (%g > %g)", dia, limit, c.MaxDepth))
		}
	}

	if strings.TrimSpace(c.OutputFile) == "" {
		problems = append(problems, "output file must not be empty")
	}

	return problems
}

// Builder assembles a Config. Zero value is not usable; call NewBuilder.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder seeded with the standard drill-test defaults:
// 19mm depth on 19mm panels, auto-sized with a 5mm margin, timestamped
// output filename, and a 2mm ceiling for 2mm bits.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		XSpacing:        DefaultXSpacing,
		YSpacing:        DefaultYSpacing,
		MinSpacing:      DefaultMinSpacing,
		Depth:           DefaultDepth,
		MaxDepth:        DefaultMaxDepth,
		DepthLimits:     map[float64]float64{2.0: 2.0},
		PanelThickness:  DefaultPanelThickness,
		AutoSizePanel:   true,
		PanelMargin:     DefaultPanelMargin,
		ManualWidth:     DefaultManualWidth,
		ManualHeight:    DefaultManualHeight,
		EngravingTool:   DefaultEngravingTool,
		EngravingDepth:  DefaultEngravingDepth,
		MaxHolesPerRow:  DefaultMaxHolesPerRow,
		OutputFile:      DefaultOutputFile,
		AutoTimestamp:   true,
		TimestampLayout: DefaultTimestampLayout,
	}}
}

// Spacing sets the hole grid spacing in millimeters.
func (b *Builder) Spacing(x, y float64) *Builder {
	b.cfg.XSpacing, b.cfg.YSpacing = x, y
	return b
}

// Depth sets the nominal drill depth in millimeters.
func (b *Builder) Depth(d float64) *Builder {
	b.cfg.Depth = d
	return b
}

// PanelThickness sets the panel thickness (LPZ) in millimeters.
func (b *Builder) PanelThickness(t float64) *Builder {
	b.cfg.PanelThickness = t
	return b
}

// AutoSize enables automatic panel sizing with the given margin.
func (b *Builder) AutoSize(margin float64) *Builder {
	b.cfg.AutoSizePanel = true
	b.cfg.PanelMargin = margin
	return b
}

// ManualSize sets an explicit panel size and disables auto-sizing.
func (b *Builder) ManualSize(width, height float64) *Builder {
	b.cfg.AutoSizePanel = false
	b.cfg.ManualWidth = width
	b.cfg.ManualHeight = height
	return b
}

// EngravingTool sets the tool name used for the row labels. A depth of 0
// keeps the current engraving depth.
func (b *Builder) EngravingTool(name string, depth float64) *Builder {
	b.cfg.EngravingTool = strings.TrimSpace(name)
	if depth != 0 {
		b.cfg.EngravingDepth = depth
	}
	return b
}

// Speeds sets machining speeds. A value of 0 keeps the machine default.
func (b *Builder) Speeds(drill, engrave, feed int) *Builder {
	b.cfg.DrillSpeed = drill
	b.cfg.EngravingSpeed = engrave
	b.cfg.FeedRate = feed
	return b
}

// DepthLimit sets a per-diameter depth ceiling in millimeters.
func (b *Builder) DepthLimit(diameter, maxDepth float64) *Builder {
	b.cfg.DepthLimits[diameter] = maxDepth
	return b
}

// ClearDepthLimit removes a per-diameter ceiling if present.
func (b *Builder) ClearDepthLimit(diameter float64) *Builder {
	delete(b.cfg.DepthLimits, diameter)
	return b
}

// AllTools selects every tool from the catalog, clearing any custom groups.
func (b *Builder) AllTools() *Builder {
	b.cfg.TestAllTools = true
	b.cfg.CustomGroups = nil
	return b
}

// CustomTools selects an explicit diameter to spindle-list mapping, clearing
// the all-tools flag. The mapping is copied.
func (b *Builder) CustomTools(groups map[float64][]int) *Builder {
	b.cfg.TestAllTools = false
	b.cfg.CustomGroups = make(map[float64][]int, len(groups))
	for dia, spindles := range groups {
		b.cfg.CustomGroups[dia] = append([]int(nil), spindles...)
	}
	return b
}

// Output sets the destination filename and timestamping behavior. An empty
// layout keeps the current timestamp layout.
func (b *Builder) Output(file string, timestamp bool, layout string) *Builder {
	b.cfg.OutputFile = file
	b.cfg.AutoTimestamp = timestamp
	if layout != "" {
		b.cfg.TimestampLayout = layout
	}
	return b
}

// Build validates and returns the configuration. On failure it returns a
// CONFIG_INVALID error carrying every problem found.
func (b *Builder) Build() (Config, error) {
	cfg := b.cfg
	cfg.DepthLimits = maps.Clone(b.cfg.DepthLimits)
	if cfg.CustomGroups != nil {
		groups := make(map[float64][]int, len(cfg.CustomGroups))
		for dia, spindles := range cfg.CustomGroups {
			groups[dia] = append([]int(nil), spindles...)
		}
		cfg.CustomGroups = groups
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return Config{}, errors.Validation(problems)
	}
	return cfg, nil
}
