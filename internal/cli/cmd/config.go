package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/systheme/internal/cli"
	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/internal/colorscheme"
	"github.com/bnema/systheme/internal/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration paths and settings, set the color scheme override, and generate the JSON schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:     "path",
	Aliases: []string{"status"},
	Short:   "Show config file locations and effective settings",
	RunE:    runConfigStatus,
}

var configSchemeCmd = &cobra.Command{
	Use:       "scheme <default|prefer-dark|prefer-light>",
	Short:     "Set the color scheme override",
	Long:      `Write appearance.color_scheme to the config file. "default" follows the system.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{config.ThemeDefault, config.ThemePreferDark, config.ThemePreferLight},
	RunE:      runConfigScheme,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemeCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema next to the config file")
}

func configPaths() (styles.ConfigPaths, error) {
	var paths styles.ConfigPaths
	var err error
	if paths.ConfigFile, err = config.GetConfigFile(); err != nil {
		return paths, err
	}
	if paths.SchemaFile, err = config.GetSchemaFile(); err != nil {
		return paths, err
	}
	if paths.LogDir, err = config.GetLogDir(); err != nil {
		return paths, err
	}
	return paths, nil
}

// runConfigStatus shows file locations and the loaded settings.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	paths, err := configPaths()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	cfg := app.Config
	if app.JSONOutput() {
		return printJSON(cmd, map[string]any{
			"config_file": paths.ConfigFile,
			"schema_file": paths.SchemaFile,
			"log_dir":     paths.LogDir,
			"loaded":      app.Manager != nil,
			"config":      cfg,
		})
	}

	settings := [][2]string{
		{"appearance.color_scheme", cfg.Appearance.ColorScheme},
		{"output.format", string(cfg.Output.Format)},
		{"output.swatches", strconv.FormatBool(cfg.Output.Swatches)},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.file", strconv.FormatBool(cfg.Logging.File)},
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderStatus(paths, settings))
	return nil
}

// runConfigScheme saves the color scheme override.
func runConfigScheme(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.Manager == nil {
		return cli.ErrNoConfig
	}

	value := args[0]
	if _, ok := colorscheme.ParseOverride(value); !ok && value != config.ThemeDefault {
		return fmt.Errorf("invalid color scheme %q: expected default, prefer-dark or prefer-light", value)
	}

	cfg := app.Manager.Get()
	cfg.Appearance.ColorScheme = value
	if err := app.Manager.Save(cfg); err != nil {
		return err
	}

	saved := app.Manager.Get().Appearance.ColorScheme
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSaved("appearance.color_scheme", saved, app.Manager.GetConfigFile()))
	return nil
}

// runConfigSchema prints or writes the config schema.
func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if configSchemaWrite {
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
