package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.WarnLevel,
		"bogus":   zerolog.WarnLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	log.Debug().Str("key", "value").Msg("hello")

	assert.Contains(t, buf.String(), `"key":"value"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContext_DisabledWhenMissing(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf}))
	ctx = WithComponent(ctx, "portal")
	ctx = WithInstance(ctx, "abc")

	FromContext(ctx).Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"portal"`)
	assert.Contains(t, buf.String(), `"instance":"abc"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	var buf bytes.Buffer
	log, cleanup, err := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf}, FileConfig{})
	assert.NoError(t, err)
	defer cleanup()

	log.Info().Msg("stderr only")
	assert.Contains(t, buf.String(), "stderr only")
}

func TestNewWithFile_MirrorsToFileAndStderr(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	log, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf},
		FileConfig{Enabled: true, WriteToStderr: true, Rotator: RotatorConfig{Dir: dir, MaxSizeMB: 1}},
	)
	assert.NoError(t, err)

	log.Info().Msg("mirrored")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"message":"mirrored"`)
	assert.Contains(t, buf.String(), "mirrored")
}

func TestStartupTrace_BuffersUntilLogger(t *testing.T) {
	st := NewStartupTrace("debug")
	st.Mark("config_loaded")
	st.Mark("logger_ready")

	var buf bytes.Buffer
	log := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	st.SetLogger(&log)
	st.Mark("backend_ready")
	st.Finish()
	st.Mark("ignored")

	names := make([]string, 0, 3)
	for _, m := range st.Milestones() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"config_loaded", "logger_ready", "backend_ready"}, names)
	assert.Contains(t, buf.String(), `"milestone":"config_loaded"`)
	assert.Contains(t, buf.String(), `"milestone":"backend_ready"`)
	assert.Contains(t, buf.String(), "startup complete")
}

func TestStartupTrace_DisabledAboveDebug(t *testing.T) {
	st := NewStartupTrace("warn")
	st.Mark("config_loaded")

	assert.Empty(t, st.Milestones())
}
