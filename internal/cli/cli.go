// Package cli implements the wardrobe command-line interface.
//
// This package provides commands for creating wardrobe projects, adding
// and removing components from the template catalog, rendering layouts
// to SVG, PNG, PDF, or JSON, producing print-ready pages, editing a
// project interactively, and serving a live preview over HTTP. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new: Create an empty project file
//   - info: Show project metadata and components
//   - templates: List the built-in component templates
//   - add / remove: Modify a project's component list
//   - render: Generate SVG, PNG, PDF, or JSON layouts
//   - print: Generate a print-ready A4 page
//   - edit: Edit a project in an interactive terminal UI
//   - serve: Serve a live HTML/SVG preview
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
//
// # Example
//
//	import "github.com/jammo/wardrobe/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/buildinfo"
	"github.com/jammo/wardrobe/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "wardrobe"

// Execute runs the wardrobe CLI under ctx and returns an error if any
// command fails. This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Wardrobe plans built-in wardrobe layouts",
		Long:         `Wardrobe is a CLI tool for designing built-in wardrobe layouts: drawer units, hanging spaces, shelves, and overhead cabinets placed inside a frame, persisted as .wdp files and rendered for editing, export, and print.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newNewCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newTemplatesCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newPrintCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig loads the user configuration, logging and falling back to
// defaults when the file is unreadable.
func loadConfig(ctx context.Context) config.Config {
	cfg, err := config.Load()
	if err != nil {
		loggerFromContext(ctx).Warnf("ignoring config: %v", err)
		return config.Default()
	}
	return cfg
}
