package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/config"
	"github.com/jammo/wardrobe/pkg/geometry"
	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/units"
	"github.com/jammo/wardrobe/pkg/wdp"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newEditCmd creates the edit command, which opens a project in an
// interactive terminal editor.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a project in an interactive terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0])
		},
	}
}

func runEdit(cmd *cobra.Command, path string) error {
	cfg := loadConfig(cmd.Context())

	p, err := wdp.Load(path)
	if err != nil {
		printErr(err)
		return err
	}

	m := newEditModel(path, p, cfg)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if em, ok := final.(editModel); ok && em.dirty {
		printWarning("unsaved changes discarded")
	}
	return nil
}

// editModel is the bubbletea model for the interactive editor. It owns
// the project for the duration of the session; all mutation happens on
// the UI loop.
type editModel struct {
	path    string
	project *model.Project
	history *model.History
	cfg     config.Config

	cursor int
	status string
	dirty  bool
}

func newEditModel(path string, p *model.Project, cfg config.Config) editModel {
	return editModel{
		path:    path,
		project: p,
		history: model.NewHistory(cfg.Editor.MaxUndoHistory),
		cfg:     cfg,
		status:  "ready",
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.project.Components)-1 {
			m.cursor++
		}

	case "left":
		m = m.moveSelected(-m.cfg.Editor.GridSize, 0)
	case "right":
		m = m.moveSelected(m.cfg.Editor.GridSize, 0)
	case "shift+up", "K":
		m = m.moveSelected(0, m.cfg.Editor.GridSize)
	case "shift+down", "J":
		m = m.moveSelected(0, -m.cfg.Editor.GridSize)

	case "<":
		m = m.resizeSelected(-m.cfg.Editor.GridSize, 0)
	case ">":
		m = m.resizeSelected(m.cfg.Editor.GridSize, 0)
	case "-":
		m = m.resizeSelected(0, -m.cfg.Editor.GridSize)
	case "+", "=":
		m = m.resizeSelected(0, m.cfg.Editor.GridSize)

	case "d", "delete":
		m = m.deleteSelected()
	case "u":
		m = m.undo()
	case "s":
		m = m.save()
	}
	return m, nil
}

// moveSelected shifts the selected component by (dx, dy) millimeters,
// snapped to the grid. Locked components do not move.
func (m editModel) moveSelected(dx, dy float64) editModel {
	c := m.selected()
	if c == nil {
		return m
	}
	if c.Locked {
		m.status = "locked"
		return m
	}
	c.Position.X = geometry.SnapToGrid(c.Position.X+dx, m.cfg.Editor.GridSize)
	c.Position.Y = geometry.SnapToGrid(c.Position.Y+dy, m.cfg.Editor.GridSize)
	m.dirty = true
	m.status = fmt.Sprintf("moved to (%.0f, %.0f)", c.Position.X, c.Position.Y)
	return m
}

// resizeSelected grows or shrinks the selected component by (dw, dh)
// millimeters, snapped to the grid and floored at one grid step.
func (m editModel) resizeSelected(dw, dh float64) editModel {
	c := m.selected()
	if c == nil {
		return m
	}
	if c.Locked {
		m.status = "locked"
		return m
	}
	grid := m.cfg.Editor.GridSize
	w := geometry.SnapToGrid(c.Dimensions.Width+dw, grid)
	h := geometry.SnapToGrid(c.Dimensions.Height+dh, grid)
	if w < grid || h < grid {
		m.status = "minimum size"
		return m
	}
	c.Dimensions.Width = w
	c.Dimensions.Height = h
	m.dirty = true
	m.status = fmt.Sprintf("resized to %.0f x %.0f", w, h)
	return m
}

func (m editModel) deleteSelected() editModel {
	c := m.selected()
	if c == nil {
		return m
	}
	idx := m.project.IndexOf(c.ID)
	removed := m.project.RemoveComponent(c.ID)
	m.history.RecordRemove(removed, idx)
	if m.cursor >= len(m.project.Components) && m.cursor > 0 {
		m.cursor--
	}
	m.dirty = true
	m.status = "deleted " + removed.DisplayLabel() + " (u to undo)"
	return m
}

func (m editModel) undo() editModel {
	if !m.history.Undo(m.project) {
		m.status = "nothing to undo"
		return m
	}
	m.dirty = true
	m.status = "undone"
	return m
}

func (m editModel) save() editModel {
	saved, err := wdp.Save(m.project, m.path)
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.dirty = false
	m.status = "saved " + saved
	return m
}

func (m editModel) selected() *model.Component {
	if m.cursor < 0 || m.cursor >= len(m.project.Components) {
		return nil
	}
	return m.project.Components[m.cursor]
}

func (m editModel) View() string {
	var b strings.Builder

	title := m.project.Metadata.ProjectName
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→/K/J move  </>/-/+ resize  d delete  u undo  s save  q quit"))
	b.WriteString("\n\n")

	if len(m.project.Components) == 0 {
		b.WriteString(listDimStyle.Render("  no components (use 'wardrobe add')"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.componentTable())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("  " + m.status))
	b.WriteString("\n")
	return b.String()
}

func (m editModel) componentTable() string {
	metric := m.project.UnitSystem == model.UnitMetric
	dim := func(mm float64) string { return units.FormatDimension(mm, metric, 0) }

	rows := make([][]string, 0, len(m.project.Components))
	for i, c := range m.project.Components {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		locked := ""
		if c.Locked {
			locked = "locked"
		}
		rows = append(rows, []string{
			cursor,
			c.DisplayLabel(),
			string(c.Type),
			fmt.Sprintf("%s x %s", dim(c.Dimensions.Width), dim(c.Dimensions.Height)),
			fmt.Sprintf("(%s, %s)", dim(c.Position.X), dim(c.Position.Y)),
			locked,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Label", "Type", "Size", "Position", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return listSelectedStyle
			}
			if col == 5 {
				return listDimStyle
			}
			return StyleValue
		})
	return t.Render()
}
