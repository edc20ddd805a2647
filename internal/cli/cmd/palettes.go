package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/pkg/theme"
)

var palettesHighContrast bool

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in palettes",
	Long:  `Show every built-in palette, one per desktop kind and scheme.`,
	RunE:  runPalettes,
}

func init() {
	rootCmd.AddCommand(palettesCmd)
	palettesCmd.Flags().BoolVar(&palettesHighContrast, "high-contrast", false, "apply the high-contrast override")
}

// builtinThemes derives every kind and scheme combination.
func builtinThemes(contrast theme.Contrast) []theme.Theme {
	kinds := []theme.Kind{theme.KindWindows, theme.KindMacOS, theme.KindGtk, theme.KindQt}
	schemes := []theme.Scheme{theme.SchemeLight, theme.SchemeDark}

	themes := make([]theme.Theme, 0, len(kinds)*len(schemes))
	for _, k := range kinds {
		for _, s := range schemes {
			themes = append(themes, theme.Derive(k, s, contrast, nil))
		}
	}
	return themes
}

func runPalettes(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	contrast := theme.ContrastNormal
	if palettesHighContrast {
		contrast = theme.ContrastHigh
	}
	themes := builtinThemes(contrast)

	if app.JSONOutput() {
		return printJSON(cmd, themes)
	}

	renderer := styles.NewThemeRenderer(app.Theme, app.Config.Output.Swatches)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPalettes(themes))
	return nil
}
