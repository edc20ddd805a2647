package colorscheme

import (
	"github.com/bnema/systheme/internal/config"
)

// ConfigAdapter adapts the config manager to the ConfigProvider interface.
// It reads through the manager so reloads are picked up.
type ConfigAdapter struct {
	mgr *config.Manager
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(mgr *config.Manager) *ConfigAdapter {
	return &ConfigAdapter{mgr: mgr}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.mgr == nil {
		return ""
	}
	cfg := a.mgr.Get()
	if cfg == nil {
		return ""
	}
	return cfg.Appearance.ColorScheme
}
