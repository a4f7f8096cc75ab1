package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/catalog"
	"github.com/jammo/wardrobe/pkg/model"
)

// newTemplatesCmd creates the templates command, which lists the
// built-in component templates.
func newTemplatesCmd() *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in component templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(typeFilter)
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "filter by component type (DRAWER_UNIT, HANGING_SPACE, SHELF, OVERHEAD)")
	return cmd
}

func runTemplates(typeFilter string) error {
	cat := catalog.New()

	var templates []catalog.Template
	if typeFilter != "" {
		t := model.ComponentType(typeFilter)
		if !t.Valid() {
			return fmt.Errorf("unknown component type: %s", typeFilter)
		}
		templates = cat.ByType(t)
	} else {
		templates = cat.All()
	}

	rows := make([][]string, 0, len(templates))
	for _, tpl := range templates {
		rows = append(rows, []string{
			tpl.Name,
			string(tpl.Type),
			fmt.Sprintf("%.0f x %.0f x %.0f mm", tpl.Width, tpl.Height, tpl.Depth),
			tpl.Description,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Template", "Type", "Size", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			if col == 3 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	return nil
}
