// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	// Appearance
	IconDesktop  = "\uf108" // desktop
	IconMoon     = "\uf186" // moon
	IconSun      = "\uf185" // sun
	IconContrast = "\uf042" // adjust
	IconPalette  = "\ue22b" // palette
	IconEye      = "\uf06e" // eye

	// Status
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconClock   = "\uf017" // clock
	IconArrow   = "\uf061" // arrow right
)

// SchemeIcon returns the icon for a dark or light scheme.
func SchemeIcon(dark bool) string {
	if dark {
		return IconMoon
	}
	return IconSun
}
