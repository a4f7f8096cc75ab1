package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/render/scene"
	"github.com/jammo/wardrobe/pkg/render/sink"
	"github.com/jammo/wardrobe/pkg/wdp"
)

// printOpts holds the command-line flags for the print command.
type printOpts struct {
	output string
	title  string
	pdf    bool
}

// newPrintCmd creates the print command, which renders a project as a
// print-ready A4 page. The page is landscape when the frame is wider
// than tall.
func newPrintCmd() *cobra.Command {
	var opts printOpts

	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Render a print-ready A4 page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .svg or .pdf)")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title (default: project name)")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "convert the page to PDF (requires librsvg)")

	return cmd
}

func runPrint(cmd *cobra.Command, input string, opts *printOpts) error {
	p, err := wdp.Load(input)
	if err != nil {
		printErr(err)
		return err
	}

	title := opts.title
	if title == "" {
		title = p.Metadata.ProjectName
	}

	cfg := loadConfig(cmd.Context())
	data := sink.RenderPrint(p, title, scene.WithColors(cfg.Colors))

	ext := ".svg"
	if opts.pdf {
		data, err = sink.SVGToPDF(data)
		if err != nil {
			printErr(err)
			return err
		}
		ext = ".pdf"
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "_print" + ext
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		printErr(err)
		return err
	}

	printSuccess("Print page for %s", StyleHighlight.Render(title))
	printFile(outputPath)
	return nil
}
