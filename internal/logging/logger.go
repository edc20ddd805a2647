// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer // defaults to os.Stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	return zerolog.New(formatWriter(out, cfg.Format, cfg.TimeFormat)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// formatWriter wraps out in a console writer unless format is json.
func formatWriter(out io.Writer, format, timeFormat string) io.Writer {
	switch format {
	case "console", "text":
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeFormat,
		}
	default:
		// JSON is the default zerolog format
		return out
	}
}

// ParseLevel maps a level name to a zerolog level.
// Unknown or empty names return the default level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return DefaultConfig().Level
	}
}

// NewFromConfigValues creates a logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console", "text":
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// SYSTHEME_LOG_LEVEL: trace, debug, info, warn, error (default: warn)
// SYSTHEME_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("SYSTHEME_LOG_LEVEL"), os.Getenv("SYSTHEME_LOG_FORMAT"))
}
