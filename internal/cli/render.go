package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/render/scene"
	"github.com/jammo/wardrobe/pkg/render/sink"
	"github.com/jammo/wardrobe/pkg/wdp"
)

const (
	defaultCanvasWidth  = 1600 // default canvas width in pixels
	defaultCanvasHeight = 900  // default canvas height in pixels
	defaultMargin       = 40   // default canvas margin in pixels
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path; derived from input when empty
	format    string  // output format: svg, png, pdf, json
	width     float64 // canvas width in pixels
	height    float64 // canvas height in pixels
	scale     float64 // PNG resolution multiplier
	highlight string  // component ID to highlight
	noLabels  bool    // hide component labels
	grid      bool    // overlay snap grid lines
}

// newRenderCmd creates the render command for exporting a project as an
// image or layout data.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		width:  defaultCanvasWidth,
		height: defaultCanvasHeight,
		scale:  2.0,
	}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a project to SVG, PNG, PDF, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, png, pdf, json")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().StringVar(&opts.highlight, "select", "", "highlight the component with this ID")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "hide component labels")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "overlay the snap grid")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
	}
	return nil
}

func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	p, err := wdp.Load(input)
	if err != nil {
		printErr(err)
		return err
	}
	logger.Debugf("loaded %s: %d components", input, len(p.Components))

	cfg := loadConfig(cmd.Context())
	sceneOpts := []scene.Option{
		scene.WithSize(opts.width, opts.height),
		scene.WithMargin(defaultMargin),
		scene.WithColors(cfg.Colors),
		scene.WithLabels(!opts.noLabels),
	}
	if opts.grid {
		sceneOpts = append(sceneOpts, scene.WithGrid(cfg.Editor.GridSize))
	}
	if opts.highlight != "" {
		c, err := findComponent(p, opts.highlight)
		if err != nil {
			return err
		}
		sceneOpts = append(sceneOpts, scene.WithSelection(c.ID))
	}

	s := scene.Build(p, sceneOpts...)

	var data []byte
	switch opts.format {
	case "svg":
		data = sink.RenderSVG(s)
	case "png":
		data, err = sink.RenderPNG(s, opts.scale)
	case "pdf":
		data, err = sink.RenderPDF(s)
	case "json":
		data, err = sink.RenderJSON(p, s, defaultMargin)
	}
	if err != nil {
		printErr(err)
		return err
	}
	logger.Debugf("generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		printErr(err)
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(p.Metadata.ProjectName))
	printFile(outputPath)
	return nil
}
