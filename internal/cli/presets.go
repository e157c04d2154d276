package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmelzer/cixforge/pkg/config"
)

// newPresetsCmd creates the presets command listing the builtin setups.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the builtin configuration presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Builtin presets"))
			for _, p := range config.Presets() {
				fmt.Printf("  %s  %s\n",
					StyleHighlight.Render(fmt.Sprintf("%-14s", p.Name)),
					StyleDim.Render(p.Description))
			}
			return nil
		},
	}
}
