// Package cli implements the cixforge command-line interface.
//
// This package provides commands for generating CIX drill-test programs from
// Biesse spindle tooling catalogs, inspecting catalogs, and listing the
// builtin configuration presets. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Produce a drill-test program from one tool catalog
//   - batch: Produce one program per catalog in a tooling folder
//   - tools: Show a per-diameter summary of a tool catalog
//   - presets: List the builtin configuration presets
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tmelzer/cixforge/pkg/buildinfo"
)

// Execute runs the cixforge CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cixforge",
		Short:        "cixforge generates CIX drill-test programs for Biesse routers",
		Long:         `cixforge reads spindle tooling catalogs (XML) and generates drill-test programs in the CIX (CID3) format, so every mounted tool can be verified before production runs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newToolsCmd())
	root.AddCommand(newPresetsCmd())

	return root.ExecuteContext(ctx)
}
