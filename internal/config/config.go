// Package config loads the systheme configuration file with Viper.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for systheme.
type Config struct {
	// Logging controls log level and output format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Output controls how the CLI renders results.
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output"`
	// Appearance holds the user's color scheme override.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is console or json.
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File mirrors logs into $XDG_STATE_HOME/systheme/logs with rotation.
	File bool `mapstructure:"file" toml:"file" json:"file"`
	// MaxSizeMB is the size at which the log file rolls over.
	MaxSizeMB int `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	// MaxBackups is how many rolled files are kept.
	MaxBackups int `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	// MaxAgeDays removes rolled files older than this; 0 keeps them.
	MaxAgeDays int `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// OutputFormat selects the CLI rendering.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// Format is text (styled terminal output) or json.
	Format OutputFormat `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=json"`
	// Swatches draws a colored block next to each palette entry.
	Swatches bool `mapstructure:"swatches" toml:"swatches" json:"swatches"`
}

// Color scheme override values.
const (
	ThemeDefault     = "default"
	ThemePreferDark  = "prefer-dark"
	ThemePreferLight = "prefer-light"
)

// AppearanceConfig holds appearance overrides.
type AppearanceConfig struct {
	// ColorScheme forces a scheme; default follows the system.
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Output: OutputConfig{
			Format:   OutputText,
			Swatches: true,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ThemeDefault,
		},
	}
}
