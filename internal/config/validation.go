package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// logLevels lists the names logging.ParseLevel understands.
var logLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}

// normalizeConfig lower-cases enumerations and maps unknown values to defaults.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = DefaultConfig().Logging.Level
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	switch config.Logging.Format {
	case "", "text":
		config.Logging.Format = "console"
	}

	switch OutputFormat(strings.ToLower(string(config.Output.Format))) {
	case "", OutputText:
		config.Output.Format = OutputText
	case OutputJSON:
		config.Output.Format = OutputJSON
	default:
		config.Output.Format = OutputText
	}

	switch strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme)) {
	case ThemePreferDark, "dark":
		config.Appearance.ColorScheme = ThemePreferDark
	case ThemePreferLight, "light":
		config.Appearance.ColorScheme = ThemePreferLight
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}
}

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var errs []error

	if !slices.Contains(logLevels, config.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of %s, got %q", strings.Join(logLevels, ", "), config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("logging.max_size_mb must be at least 1, got %d", config.Logging.MaxSizeMB))
	}
	if config.Logging.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("logging.max_backups must be non-negative, got %d", config.Logging.MaxBackups))
	}
	if config.Logging.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("logging.max_age_days must be non-negative, got %d", config.Logging.MaxAgeDays))
	}

	return errors.Join(errs...)
}
