package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmelzer/cixforge/pkg/layout"
	"github.com/tmelzer/cixforge/pkg/tooling"
)

// newToolsCmd creates the tools command: a per-diameter catalog summary.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools <catalog.xml>",
		Short: "Show a per-diameter summary of a tool catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tooling.LoadTable(args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Tool summary: " + args[0]))
			groups := table.DiameterGroups()
			for _, dia := range layout.Diameters(groups) {
				spindles := make([]string, len(groups[dia]))
				for i, id := range groups[dia] {
					spindles[i] = fmt.Sprintf("T%d", id)
				}
				fmt.Printf("  %s  %s\n",
					StyleNumber.Render(fmt.Sprintf("%5.1fmm", dia)),
					StyleValue.Render(strings.Join(spindles, " ")))
			}

			printDetail("%d tools, %d diameters", table.Len(), len(groups))
			return nil
		},
	}
}
