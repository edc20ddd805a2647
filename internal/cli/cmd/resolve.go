package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli/styles"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the effective light/dark preference",
	Long: `Resolve the color scheme an application should use.

The appearance.color_scheme config value wins when set to prefer-dark or
prefer-light. Otherwise detectors are tried in order: the native appearance
API, gsettings, then the GTK_THEME environment variable.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	pref := app.Resolver().Refresh(app.Ctx())

	if app.JSONOutput() {
		return printJSON(cmd, map[string]any{
			"scheme":       pref.Scheme,
			"source":       pref.Source,
			"prefers_dark": pref.PrefersDark(),
		})
	}

	renderer := styles.NewThemeRenderer(app.Theme, app.Config.Output.Swatches)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPreference(pref))
	return nil
}
