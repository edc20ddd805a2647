package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/pkg/theme"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the raw appearance settings",
	Long: `Query the desktop kind, color scheme, contrast and accent color.

Settings the platform cannot report are shown with the reason instead of a
made-up value.`,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// setting is one queried value in JSON output.
type setting struct {
	Value  any    `json:"value,omitempty"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newSetting(value any, err error) setting {
	if err != nil {
		return setting{Reason: errorReason(err), Error: err.Error()}
	}
	return setting{Value: value}
}

// errorReason names the error class for scripts.
func errorReason(err error) string {
	switch {
	case errors.Is(err, theme.ErrUnsupported):
		return "unsupported"
	case errors.Is(err, theme.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, theme.ErrMainThreadRequired):
		return "main_thread_required"
	default:
		return "platform"
	}
}

func runGet(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewQueryRenderer(app.Theme)

	st, err := app.System()
	if err != nil {
		if !app.JSONOutput() {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		}
		return fmt.Errorf("open system theme: %w", err)
	}

	kind, kindErr := st.Kind()
	scheme, schemeErr := st.Scheme()
	contrast, contrastErr := st.Contrast()
	accent, accentErr := st.Accent()

	if app.JSONOutput() {
		var accentHex any
		if accentErr == nil {
			accentHex = accent.Hex()
		}
		return printJSON(cmd, map[string]setting{
			"kind":     newSetting(kind, kindErr),
			"scheme":   newSetting(scheme, schemeErr),
			"contrast": newSetting(contrast, contrastErr),
			"accent":   newSetting(accentHex, accentErr),
		})
	}

	fields := []styles.QueryField{
		{Name: "Desktop", Icon: styles.IconDesktop, Value: kind.String(), Err: kindErr},
		{Name: "Scheme", Icon: styles.SchemeIcon(scheme.IsDark()), Value: scheme.String(), Err: schemeErr},
		{Name: "Contrast", Icon: styles.IconContrast, Value: contrast.String(), Err: contrastErr},
		{Name: "Accent", Icon: styles.IconPalette, Err: accentErr},
	}
	if accentErr == nil {
		fields[3].Value = accent.Hex()
		if app.Config.Output.Swatches {
			fields[3].Value = app.Theme.Swatch(accent) + " " + fields[3].Value
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(fields))
	return nil
}
