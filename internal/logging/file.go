package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls mirroring logs into a rotated file.
type FileConfig struct {
	Enabled       bool
	Rotator       RotatorConfig
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to stderr, a rotated file, or
// both. The returned cleanup closes the file and is never nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	rotator, err := NewLogRotator(fileCfg.Rotator)
	if err != nil {
		return New(cfg), func() {}, err
	}

	// File output is always JSON so it stays machine readable
	var out io.Writer = rotator
	if fileCfg.WriteToStderr {
		stderr := cfg.Output
		if stderr == nil {
			stderr = os.Stderr
		}
		out = zerolog.MultiLevelWriter(rotator, formatWriter(stderr, cfg.Format, cfg.TimeFormat))
	}

	logger := zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
