package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/units"
	"github.com/jammo/wardrobe/pkg/wdp"
)

// newInfoCmd creates the info command, which prints project metadata,
// frame dimensions, and the component list.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show project metadata and components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	p, err := wdp.Load(path)
	if err != nil {
		printErr(err)
		return err
	}

	metric := p.UnitSystem == model.UnitMetric
	dim := func(mm float64) string {
		return units.FormatDimension(mm, metric, 0)
	}

	fmt.Println(StyleTitle.Render(p.Metadata.ProjectName))
	if p.Metadata.ClientName != "" {
		printKeyValue("Client", p.Metadata.ClientName)
	}
	if p.Metadata.ClientAddress != "" {
		printKeyValue("Address", p.Metadata.ClientAddress)
	}
	printKeyValue("Frame", fmt.Sprintf("%s x %s x %s",
		dim(p.Frame.Width), dim(p.Frame.Height), dim(p.Frame.Depth)))
	printKeyValue("Internal", fmt.Sprintf("%s x %s",
		dim(p.Frame.InternalWidth()), dim(p.Frame.InternalHeight())))
	printKeyValue("Units", string(p.UnitSystem))
	printKeyValue("Modified", p.Metadata.ModifiedDate)
	if p.Metadata.Notes != "" {
		printKeyValue("Notes", p.Metadata.Notes)
	}
	fmt.Println()

	if len(p.Components) == 0 {
		fmt.Println(StyleDim.Render("  no components"))
		return nil
	}

	rows := make([][]string, 0, len(p.Components))
	for _, c := range p.Components {
		locked := ""
		if c.Locked {
			locked = "locked"
		}
		rows = append(rows, []string{
			shortID(c.ID),
			string(c.Type),
			c.DisplayLabel(),
			fmt.Sprintf("%s x %s", dim(c.Dimensions.Width), dim(c.Dimensions.Height)),
			fmt.Sprintf("(%s, %s)", dim(c.Position.X), dim(c.Position.Y)),
			locked,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Type", "Label", "Size", "Position", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 || col == 5 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	return nil
}

// shortID abbreviates a UUID for display. Commands accept prefixes, so
// the short form stays usable as input.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
