package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/systheme/pkg/theme"
)

func TestBuiltinThemes_CoversEveryKindAndScheme(t *testing.T) {
	themes := builtinThemes(theme.ContrastNormal)
	assert.Len(t, themes, 8)

	names := make(map[string]bool, len(themes))
	for _, th := range themes {
		names[th.Name] = true
		assert.True(t, th.Palette.Valid(), th.Name)
	}
	assert.Len(t, names, 8)
	assert.True(t, names["Breeze Light"])
	assert.True(t, names["Fluent Dark"])
}

func TestBuiltinThemes_HighContrast(t *testing.T) {
	for _, th := range builtinThemes(theme.ContrastHigh) {
		if th.Scheme == theme.SchemeLight {
			assert.Equal(t, theme.White, th.Palette.Background, th.Name)
		} else {
			assert.Equal(t, theme.Black, th.Palette.Background, th.Name)
		}
	}
}

func TestErrorReason(t *testing.T) {
	tests := map[string]error{
		"unsupported":          theme.ErrUnsupported,
		"unavailable":          theme.ErrUnavailable,
		"main_thread_required": theme.ErrMainThreadRequired,
		"platform":             theme.NewPlatformError(errors.New("bus gone")),
	}
	for want, err := range tests {
		assert.Equal(t, want, errorReason(err))
	}
}

func TestNewSetting(t *testing.T) {
	ok := newSetting(theme.KindGtk, nil)
	assert.Equal(t, theme.KindGtk, ok.Value)
	assert.Empty(t, ok.Reason)

	failed := newSetting(theme.SchemeDark, theme.ErrUnavailable)
	assert.Nil(t, failed.Value)
	assert.Equal(t, "unavailable", failed.Reason)
	assert.NotEmpty(t, failed.Error)
}
