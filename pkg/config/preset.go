package config

import (
	"os"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/tmelzer/cixforge/pkg/errors"
)

// Preset is a named, ready-made drill-test setup.
type Preset struct {
	Name        string
	Description string
	apply       func(*Builder)
}

// Apply configures a builder with the preset's settings.
func (p Preset) Apply(b *Builder) { p.apply(b) }

// Builtin presets covering the shop's common test scenarios.
var presets = map[string]Preset{
	"small-holes": {
		Name:        "small-holes",
		Description: "Test small diameter holes (3-6mm)",
		apply: func(b *Builder) {
			b.CustomTools(map[float64][]int{
				3.0: {6, 16, 27},
				4.0: {4, 24, 27},
				5.0: {7, 8, 9, 13, 14, 16, 23, 25},
				6.0: {20},
			}).Spacing(25.0, 40.0).Depth(12.0)
		},
	},
	"medium-holes": {
		Name:        "medium-holes",
		Description: "Test medium diameter holes (8-12mm)",
		apply: func(b *Builder) {
			b.CustomTools(map[float64][]int{
				8.0:  {10, 12, 15, 17},
				10.0: {1, 3},
				12.0: {2},
			}).Spacing(35.0, 50.0).Depth(15.0)
		},
	},
	"large-holes": {
		Name:        "large-holes",
		Description: "Test large diameter holes (15-35mm)",
		apply: func(b *Builder) {
			b.CustomTools(map[float64][]int{
				15.0: {5},
				20.0: {26},
				35.0: {11},
			}).Spacing(50.0, 70.0).Depth(18.0)
		},
	},
	"all-available": {
		Name:        "all-available",
		Description: "Test all available tools from the catalog",
		apply: func(b *Builder) {
			b.AllTools().Spacing(40.0, 60.0).Depth(19.0)
		},
	},
}

// Presets returns the builtin presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPreset returns the builtin preset with the given name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetUnknown, "unknown preset: %q", name)
	}
	return p, nil
}

// presetFile is the on-disk TOML shape of a user preset.
type presetFile struct {
	Description string  `toml:"description"`
	Depth       float64 `toml:"depth"`
	AllTools    bool    `toml:"all_tools"`

	Spacing struct {
		X float64 `toml:"x"`
		Y float64 `toml:"y"`
	} `toml:"spacing"`

	// Diameter keys are strings because TOML tables cannot key on floats.
	Tools  map[string][]int   `toml:"tools"`
	Limits map[string]float64 `toml:"limits"`
}

// LoadPresetFile reads a user preset from a TOML file.
//
// Example:
//
//	description = "Thin stock test"
//	depth = 8.0
//	all_tools = false
//
//	[spacing]
//	x = 25.0
//	y = 40.0
//
//	[tools]
//	"3.0" = [6, 16]
//	"5.0" = [7, 8, 9]
//
//	[limits]
//	"2.0" = 2.0
func LoadPresetFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodePresetInvalid, err, "read preset file %s", path)
	}

	var pf presetFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodePresetInvalid, err, "parse preset file %s", path)
	}

	groups, err := parseDiameterKeys(pf.Tools, path)
	if err != nil {
		return Preset{}, err
	}
	limits, err := parseDiameterKeys(pf.Limits, path)
	if err != nil {
		return Preset{}, err
	}

	apply := func(b *Builder) {
		if pf.AllTools {
			b.AllTools()
		} else if len(groups) > 0 {
			b.CustomTools(groups)
		}
		if pf.Spacing.X != 0 || pf.Spacing.Y != 0 {
			b.Spacing(pf.Spacing.X, pf.Spacing.Y)
		}
		if pf.Depth != 0 {
			b.Depth(pf.Depth)
		}
		for dia, limit := range limits {
			b.DepthLimit(dia, limit)
		}
	}
	return Preset{Name: path, Description: pf.Description, apply: apply}, nil
}

// parseDiameterKeys converts string diameter keys ("3.0") to floats.
func parseDiameterKeys[V any](in map[string]V, path string) (map[float64]V, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[float64]V, len(in))
	for key, v := range in {
		dia, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodePresetInvalid, err, "bad diameter key %q in %s", key, path)
		}
		out[dia] = v
	}
	return out, nil
}
