package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, the active theme, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if app.JSONOutput() {
		return printJSON(cmd, map[string]string{
			"version":    app.BuildInfo.Version,
			"commit":     app.BuildInfo.Commit,
			"build_date": app.BuildInfo.BuildDate,
			"go_version": app.BuildInfo.GoVersion,
		})
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo, currentTheme(app)))
	return nil
}
