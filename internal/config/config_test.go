package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG lookup at a fresh temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, key := range []string{"SYSTHEME_LOG_LEVEL", "SYSTHEME_LOG_FORMAT", "SYSTHEME_OUTPUT_FORMAT", "SYSTHEME_APPEARANCE_COLOR_SCHEME"} {
		t.Setenv(key, "")
	}
	return filepath.Join(dir, "config", appName)
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestManager_FirstRunWritesDefaults(t *testing.T) {
	configDir := isolate(t)

	mgr := loadManager(t)

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Equal(t, filepath.Join(configDir, configFileName), mgr.GetConfigFile())
	assert.FileExists(t, filepath.Join(configDir, configFileName))
	assert.FileExists(t, filepath.Join(configDir, schemaFileName))
}

func TestManager_ReadsExistingFile(t *testing.T) {
	configDir := isolate(t)
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	content := `
[appearance]
color_scheme = 'LIGHT'

[output]
format = 'json'
swatches = false
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileName), []byte(content), filePerm))

	cfg := loadManager(t).Get()

	assert.Equal(t, ThemePreferLight, cfg.Appearance.ColorScheme)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
	assert.False(t, cfg.Output.Swatches)
	// Missing section falls back to defaults
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SYSTHEME_LOG_LEVEL", "debug")
	t.Setenv("SYSTHEME_APPEARANCE_COLOR_SCHEME", "prefer-dark")

	cfg := loadManager(t).Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ThemePreferDark, cfg.Appearance.ColorScheme)
}

func TestManager_RejectsInvalidFile(t *testing.T) {
	configDir := isolate(t)
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileName), []byte("[logging]\nlevel = 'loud'\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	isolate(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Appearance.ColorScheme = "dark"
	cfg.Output.Format = OutputJSON
	require.NoError(t, mgr.Save(cfg))

	assert.Equal(t, ThemePreferDark, mgr.Get().Appearance.ColorScheme)

	reloaded := loadManager(t).Get()
	assert.Equal(t, ThemePreferDark, reloaded.Appearance.ColorScheme)
	assert.Equal(t, OutputJSON, reloaded.Output.Format)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	isolate(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Logging.Format = "xml"

	require.Error(t, mgr.Save(cfg))
	require.Error(t, mgr.Save(nil))
	assert.Equal(t, "console", mgr.Get().Logging.Format)
}

func TestManager_WatchReloadsExternalEdits(t *testing.T) {
	isolate(t)
	mgr := loadManager(t)
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	var mu sync.Mutex
	var seen []string
	mgr.OnConfigChange(func(cfg *Config) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, cfg.Appearance.ColorScheme)
	})

	edited := DefaultConfig()
	edited.Appearance.ColorScheme = ThemePreferLight
	require.NoError(t, WriteConfigOrdered(edited, mgr.GetConfigFile()))

	assert.Eventually(t, func() bool {
		return mgr.Get().Appearance.ColorScheme == ThemePreferLight
	}, 5*time.Second, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0 && seen[len(seen)-1] == ThemePreferLight
	}, 5*time.Second, 20*time.Millisecond)
}

func TestManager_GetBeforeLoad(t *testing.T) {
	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Error(t, mgr.Watch())
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{
		Logging:    LoggingConfig{Level: " INFO ", Format: "text", MaxSizeMB: 5},
		Output:     OutputConfig{Format: "yaml"},
		Appearance: AppearanceConfig{ColorScheme: "sepia"},
	}

	normalizeConfig(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, OutputText, cfg.Output.Format)
	assert.Equal(t, ThemeDefault, cfg.Appearance.ColorScheme)
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_ReportsEveryError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Logging.MaxSizeMB = 0
	cfg.Logging.MaxBackups = -1

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "logging.max_size_mb")
	assert.Contains(t, err.Error(), "logging.max_backups")
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileName)

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[appearance]", "[logging]", "[output]"}, sections)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, *DefaultConfig(), decoded)

	assert.Error(t, WriteConfigOrdered(nil, path))
}

func TestSortTOMLSections(t *testing.T) {
	input := `top = 1

[workspace]
a = 1

[appearance]
color_scheme = 'default'

[workspace.pane]
b = 2

[appearance.palette]
c = 3
`

	result := sortTOMLSections(input)

	expected := `top = 1

[appearance]
color_scheme = 'default'

[appearance.palette]
c = 3

[workspace]
a = 1

[workspace.pane]
b = 2
`
	assert.Equal(t, expected, result)
	assert.Empty(t, sortTOMLSections(""))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema struct {
		Title      string                     `json:"title"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "systheme configuration", schema.Title)
	assert.Contains(t, schema.Properties, "logging")
	assert.Contains(t, schema.Properties, "output")
	assert.Contains(t, schema.Properties, "appearance")
	assert.Contains(t, string(data), "prefer-light")
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dirs.ConfigHome)
}
