package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tmelzer/cixforge/pkg/errors"
)

func TestBuilderDefaults(t *testing.T) {
	cfg, err := NewBuilder().AllTools().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if cfg.Depth != DefaultDepth {
		t.Errorf("Depth = %g, want %g", cfg.Depth, DefaultDepth)
	}
	if !cfg.AutoSizePanel || cfg.PanelMargin != DefaultPanelMargin {
		t.Errorf("auto sizing defaults wrong: %v margin %g", cfg.AutoSizePanel, cfg.PanelMargin)
	}
	if cfg.EngravingTool != DefaultEngravingTool {
		t.Errorf("EngravingTool = %q, want %q", cfg.EngravingTool, DefaultEngravingTool)
	}
	if got := cfg.DepthLimits[2.0]; got != 2.0 {
		t.Errorf("default depth limit for 2mm = %g, want 2", got)
	}
	if !cfg.AutoTimestamp || cfg.OutputFile != DefaultOutputFile {
		t.Errorf("output defaults wrong: %q timestamp %v", cfg.OutputFile, cfg.AutoTimestamp)
	}
}

func TestBuildWithoutSelection(t *testing.T) {
	cfg, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.HasSelection() {
		t.Error("HasSelection() = true for a bare builder")
	}
}

func TestBuildCollectsAllProblems(t *testing.T) {
	_, err := NewBuilder().
		Spacing(5.0, 5.0).
		Depth(-1).
		EngravingTool(" ", 5.0).
		Speeds(500, 0, 50).
		Build()
	if err == nil {
		t.Fatal("Build() should fail")
	}
	if !errors.Is(err, errors.ErrCodeConfigInvalid) {
		t.Errorf("code = %s, want CONFIG_INVALID", errors.GetCode(err))
	}

	problems := errors.Problems(err)
	// x spacing, y spacing, depth, empty tool name, engraving depth,
	// drill speed, feed rate.
	if len(problems) != 7 {
		t.Errorf("got %d problems, want 7:\n%s", len(problems), strings.Join(problems, "\n"))
	}
}

func TestBuildValidatesCustomGroups(t *testing.T) {
	_, err := NewBuilder().
		CustomTools(map[float64][]int{-4.0: {1}, 5.0: {}}).
		Build()
	if err == nil {
		t.Fatal("Build() should fail")
	}
	problems := errors.Problems(err)
	if len(problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(problems), problems)
	}
}

func TestBuildValidatesDepthLimits(t *testing.T) {
	_, err := NewBuilder().
		AllTools().
		DepthLimit(8.0, 50.0).
		Build()
	if err == nil {
		t.Fatal("Build() should reject a limit above the global max")
	}
	if got := errors.Problems(err); len(got) != 1 || !strings.Contains(got[0], "exceeds global max") {
		t.Errorf("problems = %v", got)
	}
}

func TestBuildCopiesMaps(t *testing.T) {
	groups := map[float64][]int{5.0: {1, 2}}
	b := NewBuilder().CustomTools(groups)
	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	groups[5.0][0] = 99
	b.DepthLimit(12.0, 6.0)

	if cfg.CustomGroups[5.0][0] != 1 {
		t.Error("Config aliases the caller's group slice")
	}
	if _, ok := cfg.DepthLimits[12.0]; ok {
		t.Error("Config aliases the builder's depth limit map")
	}
}

func TestEngravingToolKeepsDepth(t *testing.T) {
	cfg, err := NewBuilder().AllTools().EngravingTool("V60D20MM", 0).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.EngravingTool != "V60D20MM" || cfg.EngravingDepth != DefaultEngravingDepth {
		t.Errorf("got %q depth %g", cfg.EngravingTool, cfg.EngravingDepth)
	}
}

func TestOutputFilename(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		file      string
		timestamp bool
		want      string
	}{
		{"timestamped", "R2_Drill_Test.cix", true, "R2_Drill_Test_03_07_2025.cix"},
		{"plain", "R2_Drill_Test.cix", false, "R2_Drill_Test.cix"},
		{"no extension", "drilltest", true, "drilltest_03_07_2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				OutputFile:      tt.file,
				AutoTimestamp:   tt.timestamp,
				TimestampLayout: DefaultTimestampLayout,
			}
			if got := cfg.OutputFilename(now); got != tt.want {
				t.Errorf("OutputFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCustomToolsClearsAllToolsFlag(t *testing.T) {
	cfg, err := NewBuilder().
		AllTools().
		CustomTools(map[float64][]int{3.0: {6}}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.TestAllTools {
		t.Error("CustomTools() must clear TestAllTools")
	}
	if !reflect.DeepEqual(cfg.CustomGroups, map[float64][]int{3.0: {6}}) {
		t.Errorf("CustomGroups = %v", cfg.CustomGroups)
	}
}
