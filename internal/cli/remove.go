package cli

import (
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/wdp"
)

// newRemoveCmd creates the remove command, which deletes a component
// from a project by ID or ID prefix.
func newRemoveCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove <file>",
		Short: "Remove a component from a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "component ID or unambiguous prefix")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func runRemove(path, id string) error {
	p, err := wdp.Load(path)
	if err != nil {
		printErr(err)
		return err
	}

	c, err := findComponent(p, id)
	if err != nil {
		printErr(err)
		return err
	}

	p.RemoveComponent(c.ID)

	saved, err := wdp.Save(p, path)
	if err != nil {
		printErr(err)
		return err
	}

	printSuccess("Removed %s (%s)", StyleHighlight.Render(c.DisplayLabel()), shortID(c.ID))
	printFile(saved)
	return nil
}
