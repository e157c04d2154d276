package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmelzer/cixforge/pkg/errors"
	"github.com/tmelzer/cixforge/pkg/generate"
)

// newBatchCmd creates the batch command: one program per catalog in a folder.
func newBatchCmd() *cobra.Command {
	opts := genOpts{}

	cmd := &cobra.Command{
		Use:   "batch <tooling-folder>",
		Short: "Generate one drill-test program per catalog in a folder",
		Long: `Generate a drill-test program for every *.xml catalog in a tooling folder.

Each catalog writes its own output file named after the catalog. A failing
catalog is reported and skipped; the batch continues with the rest.

Examples:
  cixforge batch tooling/ --all
  cixforge batch tooling/ --preset all-available -o out/programs.cix`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig(cmd)
			if err != nil {
				return describeConfigError(err)
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			printInfo("Scanning %s for tool catalogs", StyleHighlight.Render(args[0]))

			runner := generate.NewRunner(logger)
			batch, err := runner.GenerateFolder(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}

			for _, item := range batch.Items {
				if item.Err != nil {
					printError("%s: %s", item.Catalog, errors.UserMessage(item.Err))
					continue
				}
				printSuccess("%s %s %s",
					item.Catalog, StyleDim.Render("→"), StyleHighlight.Render(item.Result.Path))
			}

			prog.done(fmt.Sprintf("Generated %d of %d programs", batch.Generated(), len(batch.Items)))
			if batch.Failed() > 0 {
				printWarning("%d catalog(s) failed", batch.Failed())
			}
			return nil
		},
	}

	addConfigFlags(cmd, &opts)
	return cmd
}
