// Package cmd provides Cobra CLI commands for systheme.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli"
	"github.com/bnema/systheme/internal/config"
	"github.com/bnema/systheme/internal/domain/build"
	"github.com/bnema/systheme/pkg/systheme"
)

// openSystem opens the appearance backend for each command.
var openSystem cli.SystemOpener = systheme.New

var (
	app        *cli.App
	buildInfo  build.Info
	outputFlag string
	rootCmd    = &cobra.Command{
		Use:   "systheme",
		Short: "Detect the desktop's light/dark scheme, contrast and accent color",
		Long: `systheme reads the operating system's appearance settings and derives a
matching color palette.

Supported backends:
  - Linux and BSD desktops through the XDG desktop portal
  - Windows 10 and later through WinRT UISettings
  - macOS through AppKit

Use 'systheme get' for the raw settings, 'systheme theme' for the derived
palette, and 'systheme watch' to follow changes as they happen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			app = cli.NewApp(openSystem)
			// Set build info from main.go
			app.BuildInfo = buildInfo

			if outputFlag != "" {
				switch format := config.OutputFormat(outputFlag); format {
				case config.OutputText, config.OutputJSON:
					app.Config.Output.Format = format
				default:
					return fmt.Errorf("invalid output format %q: expected text or json", outputFlag)
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: text or json (overrides config)")
}

// Execute runs the root command.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and closes the app whether or not the
// command failed. Cobra skips post-run hooks after an error.
func run() error {
	err := rootCmd.Execute()
	if app != nil {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close: %w", closeErr)
		}
		app = nil
	}
	return err
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// requireApp returns the app or an error when PersistentPreRunE was skipped.
func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
