package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmelzer/cixforge/pkg/config"
	"github.com/tmelzer/cixforge/pkg/errors"
	"github.com/tmelzer/cixforge/pkg/generate"
)

// genOpts holds the command-line flags shared by generate and batch.
type genOpts struct {
	preset       string  // builtin preset name
	presetFile   string  // TOML preset file path
	allTools     bool    // test every tool in the catalog
	depth        float64 // nominal drill depth (mm)
	thickness    float64 // panel thickness (mm)
	margin       float64 // auto-size panel margin (mm)
	width        float64 // manual panel width (mm); with height, disables auto-size
	height       float64 // manual panel height (mm)
	engraveTool  string  // tool name for label engraving
	engraveDepth float64 // label engraving depth (mm)
	drillSpeed   int     // drill RPM, 0 = machine default
	output       string  // output file path
	noTimestamp  bool    // skip the timestamp filename suffix
}

// addConfigFlags registers the shared configuration flags on cmd.
func addConfigFlags(cmd *cobra.Command, opts *genOpts) {
	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "builtin preset (see 'cixforge presets')")
	f.StringVar(&opts.presetFile, "preset-file", "", "TOML preset file")
	f.BoolVar(&opts.allTools, "all", false, "test every tool in the catalog")
	f.Float64Var(&opts.depth, "depth", 0, "nominal drill depth in mm")
	f.Float64Var(&opts.thickness, "thickness", 0, "panel thickness (LPZ) in mm")
	f.Float64Var(&opts.margin, "margin", 0, "auto-size panel margin in mm")
	f.Float64Var(&opts.width, "width", 0, "manual panel width in mm (disables auto-size, needs --height)")
	f.Float64Var(&opts.height, "height", 0, "manual panel height in mm (disables auto-size, needs --width)")
	f.StringVar(&opts.engraveTool, "engrave-tool", "", "tool name for label engraving")
	f.Float64Var(&opts.engraveDepth, "engrave-depth", 0, "label engraving depth in mm")
	f.IntVar(&opts.drillSpeed, "drill-speed", 0, "drill RPM (0 = machine default)")
	f.StringVarP(&opts.output, "output", "o", "", "output file path")
	f.BoolVar(&opts.noTimestamp, "no-timestamp", false, "do not append a date suffix to the filename")
}

// buildConfig assembles the generation configuration: defaults, then preset,
// then explicit flags on top.
func (o *genOpts) buildConfig(cmd *cobra.Command) (config.Config, error) {
	b := config.NewBuilder()

	if o.preset != "" && o.presetFile != "" {
		return config.Config{}, errors.New(errors.ErrCodeConfigInvalid, "--preset and --preset-file are mutually exclusive")
	}
	if o.preset != "" {
		p, err := config.LookupPreset(o.preset)
		if err != nil {
			return config.Config{}, err
		}
		p.Apply(b)
	}
	if o.presetFile != "" {
		p, err := config.LoadPresetFile(o.presetFile)
		if err != nil {
			return config.Config{}, err
		}
		p.Apply(b)
	}

	if o.allTools {
		b.AllTools()
	}
	if cmd.Flags().Changed("depth") {
		b.Depth(o.depth)
	}
	if cmd.Flags().Changed("thickness") {
		b.PanelThickness(o.thickness)
	}
	if cmd.Flags().Changed("margin") {
		b.AutoSize(o.margin)
	}
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
		b.ManualSize(o.width, o.height)
	}
	if o.engraveTool != "" || cmd.Flags().Changed("engrave-depth") {
		name := o.engraveTool
		if name == "" {
			name = config.DefaultEngravingTool
		}
		b.EngravingTool(name, o.engraveDepth)
	}
	if cmd.Flags().Changed("drill-speed") {
		b.Speeds(o.drillSpeed, 0, 0)
	}

	out := config.DefaultOutputFile
	if o.output != "" {
		out = o.output
	}
	b.Output(out, !o.noTimestamp, "")

	return b.Build()
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	opts := genOpts{}

	cmd := &cobra.Command{
		Use:   "generate <catalog.xml>",
		Short: "Generate a CIX drill-test program from a tool catalog",
		Long: `Generate a drill-test program from a spindle tooling catalog.

By default nothing is selected; pick tools with --all, --preset, or --preset-file.

Examples:
  cixforge generate tooling/r2_spindle_tooling.xml --all
  cixforge generate tooling/r2_spindle_tooling.xml --preset small-holes -o small_test.cix
  cixforge generate tooling/r2_spindle_tooling.xml --preset-file thin_stock.toml --no-timestamp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig(cmd)
			if err != nil {
				return describeConfigError(err)
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			runner := generate.NewRunner(logger)
			res, err := runner.Generate(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Generated %d drill operations", res.Holes))
			printSuccess("CIX drill test generated: %s", StyleHighlight.Render(res.Path))
			printDetail("%d tools, %d diameter rows, %d holes", res.Tools, res.Rows, res.Holes)
			return nil
		},
	}

	addConfigFlags(cmd, &opts)
	return cmd
}

// describeConfigError prints each collected validation problem before
// returning the error, so the operator sees everything to fix at once.
func describeConfigError(err error) error {
	for _, problem := range errors.Problems(err) {
		printError("%s", problem)
	}
	return err
}
