package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/catalog"
	"github.com/jammo/wardrobe/pkg/errors"
	"github.com/jammo/wardrobe/pkg/geometry"
	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/units"
	"github.com/jammo/wardrobe/pkg/wdp"
)

// addOpts holds the command-line flags for the add command.
type addOpts struct {
	template string
	x        string
	y        string
	label    string
	color    string
	noSnap   bool
}

// newAddCmd creates the add command, which instantiates a catalog
// template and places it in a project.
func newAddCmd() *cobra.Command {
	var opts addOpts

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a component from a template to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template name (see 'wardrobe templates')")
	cmd.Flags().StringVarP(&opts.x, "x", "x", "0", "horizontal position from the frame's left edge")
	cmd.Flags().StringVarP(&opts.y, "y", "y", "0", "vertical position from the frame's bottom edge")
	cmd.Flags().StringVar(&opts.label, "label", "", "display label")
	cmd.Flags().StringVar(&opts.color, "color", "", "fill color (hex)")
	cmd.Flags().BoolVar(&opts.noSnap, "no-snap", false, "skip grid snapping")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func runAdd(cmd *cobra.Command, path string, opts *addOpts) error {
	logger := loggerFromContext(cmd.Context())
	cfg := loadConfig(cmd.Context())

	p, err := wdp.Load(path)
	if err != nil {
		printErr(err)
		return err
	}

	cat := catalog.New()
	tpl, ok := cat.Get(opts.template)
	if !ok {
		err := errors.New(errors.ErrCodeUnknownTemplate, "unknown template: %s (run 'wardrobe templates' to list)", opts.template)
		printErr(err)
		return err
	}

	x, ok := units.ParseDimension(opts.x)
	if !ok {
		return fmt.Errorf("invalid x: %q", opts.x)
	}
	y, ok := units.ParseDimension(opts.y)
	if !ok {
		return fmt.Errorf("invalid y: %q", opts.y)
	}
	if !opts.noSnap {
		x = geometry.SnapToGrid(x, cfg.Editor.GridSize)
		y = geometry.SnapToGrid(y, cfg.Editor.GridSize)
	}

	c, err := catalog.CreateComponent(tpl)
	if err != nil {
		return err
	}
	c.Position = model.Position{X: x, Y: y}
	if opts.label != "" {
		c.Label = opts.label
	}
	if opts.color != "" {
		c.Color = opts.color
	}

	bounds := geometry.Rect{X: 0, Y: 0, W: p.Frame.Width, H: p.Frame.Height}
	placed := geometry.Rect{X: x, Y: y, W: c.Dimensions.Width, H: c.Dimensions.Height}
	if !geometry.RectContainsRect(bounds, placed) {
		printWarning("component extends outside the frame")
	}
	for _, other := range p.Components {
		ox, oy, ow, oh := other.Bounds()
		if geometry.RectsIntersect(placed, geometry.Rect{X: ox, Y: oy, W: ow, H: oh}) {
			printWarning("overlaps %s (%s)", other.DisplayLabel(), shortID(other.ID))
		}
	}

	p.AddComponent(c)
	logger.Debugf("added %s at (%.0f, %.0f)", c.Type, x, y)

	saved, err := wdp.Save(p, path)
	if err != nil {
		printErr(err)
		return err
	}

	printSuccess("Added %s at (%.0f, %.0f) mm", StyleHighlight.Render(c.DisplayLabel()), x, y)
	printKeyValue("ID", c.ID)
	printFile(saved)
	return nil
}

// findComponent resolves an ID or unambiguous ID prefix.
func findComponent(p *model.Project, id string) (*model.Component, error) {
	if c := p.GetComponent(id); c != nil {
		return c, nil
	}
	var matches []*model.Component
	for _, c := range p.Components {
		if strings.HasPrefix(c.ID, id) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errors.New(errors.ErrCodeComponentNotFound, "no component with ID %s", id)
	default:
		return nil, errors.New(errors.ErrCodeComponentNotFound, "ID prefix %s is ambiguous (%d matches)", id, len(matches))
	}
}
