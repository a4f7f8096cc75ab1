package cli

import (
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/errors"
	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/units"
	"github.com/jammo/wardrobe/pkg/wdp"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	name     string
	client   string
	width    string
	height   string
	depth    string
	imperial bool
}

// newNewCmd creates the new command, which writes an empty project file
// with configured frame defaults.
func newNewCmd() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a new wardrobe project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "project name")
	cmd.Flags().StringVar(&opts.client, "client", "", "client name")
	cmd.Flags().StringVar(&opts.width, "width", "", `frame width (e.g. "4800", "480cm", "189in")`)
	cmd.Flags().StringVar(&opts.height, "height", "", "frame height")
	cmd.Flags().StringVar(&opts.depth, "depth", "", "frame depth")
	cmd.Flags().BoolVar(&opts.imperial, "imperial", false, "display dimensions in inches")

	return cmd
}

func runNew(cmd *cobra.Command, path string, opts *newOpts) error {
	cfg := loadConfig(cmd.Context())

	p := model.NewProject()
	p.Frame.Width = cfg.Frame.DefaultWidth
	p.Frame.Height = cfg.Frame.DefaultHeight
	p.Frame.Depth = cfg.Frame.DefaultDepth
	p.Frame.PanelThickness = cfg.Frame.PanelThickness
	p.ZoomLevel = cfg.Editor.DefaultZoom

	if opts.name != "" {
		p.Metadata.ProjectName = opts.name
	}
	p.Metadata.ClientName = opts.client
	if opts.imperial {
		p.UnitSystem = model.UnitImperial
	}

	if err := applyDimension(&p.Frame.Width, opts.width, "width", cfg.Frame.MinWidth, cfg.Frame.MaxWidth); err != nil {
		return err
	}
	if err := applyDimension(&p.Frame.Height, opts.height, "height", cfg.Frame.MinHeight, cfg.Frame.MaxHeight); err != nil {
		return err
	}
	if err := applyDimension(&p.Frame.Depth, opts.depth, "depth", cfg.Frame.MinDepth, cfg.Frame.MaxDepth); err != nil {
		return err
	}

	saved, err := wdp.Save(p, path)
	if err != nil {
		printErr(err)
		return err
	}

	printSuccess("Created %s", StyleHighlight.Render(p.Metadata.ProjectName))
	printFile(saved)
	return nil
}

// applyDimension parses a flag value in any supported unit and checks
// the configured bounds. Empty input leaves the default untouched.
func applyDimension(dst *float64, input, name string, min, max float64) error {
	if input == "" {
		return nil
	}
	mm, ok := units.ParseDimension(input)
	if !ok {
		return errors.New(errors.ErrCodeInvalidDimension, "invalid %s: %q", name, input)
	}
	if mm < min || mm > max {
		return errors.New(errors.ErrCodeInvalidDimension, "%s %.0f mm out of range [%.0f, %.0f]", name, mm, min, max)
	}
	*dst = mm
	return nil
}
