package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli"
	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/pkg/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the palette derived from the system settings",
	Long: `Derive a complete theme from the desktop kind, scheme, contrast and accent.

Settings that cannot be read fall back to a dark, normal-contrast theme for
the platform's native desktop.`,
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

// currentTheme returns the derived theme, or the defaults when no backend
// could be opened.
func currentTheme(app *cli.App) theme.Theme {
	st, err := app.System()
	if err != nil {
		return theme.Derive(theme.DefaultKind, theme.SchemeDark, theme.ContrastNormal, nil)
	}
	return st.Theme()
}

func runTheme(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	t := currentTheme(app)
	if app.JSONOutput() {
		return printJSON(cmd, t)
	}

	renderer := styles.NewThemeRenderer(app.Theme, app.Config.Output.Swatches)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderTheme(t))
	return nil
}
