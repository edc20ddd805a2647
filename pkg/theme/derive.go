package theme

// Theme is a complete, displayable theme: the inputs it was derived from and
// the resulting palette.
type Theme struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Scheme   Scheme   `json:"scheme"`
	Contrast Contrast `json:"contrast"`
	Palette  Palette  `json:"palette"`
}

// Family returns the design-language name of a desktop kind.
func Family(kind Kind) string {
	switch kind {
	case KindWindows:
		return "Fluent"
	case KindMacOS:
		return "Aqua"
	case KindGtk:
		return "Adwaita"
	case KindQt:
		return "Breeze"
	default:
		return Family(DefaultKind)
	}
}

// BuiltinPalette returns the built-in table for kind and scheme.
// Unknown kinds use DefaultKind; unknown schemes use the dark table.
func BuiltinPalette(kind Kind, scheme Scheme) Palette {
	light := scheme == SchemeLight

	switch kind {
	case KindWindows:
		if light {
			return fluentLight
		}
		return fluentDark
	case KindMacOS:
		if light {
			return aquaLight
		}
		return aquaDark
	case KindGtk:
		if light {
			return adwaitaLight
		}
		return adwaitaDark
	case KindQt:
		if light {
			return breezeLight
		}
		return breezeDark
	default:
		return BuiltinPalette(DefaultKind, scheme)
	}
}

// SystemPalette selects the built-in palette for kind and scheme and applies
// the high-contrast override: background and foreground become pure black
// and white, arranged for the scheme.
func SystemPalette(kind Kind, scheme Scheme, contrast Contrast) Palette {
	p := BuiltinPalette(kind, scheme)

	if contrast == ContrastHigh {
		if scheme == SchemeLight {
			p.Background, p.Foreground = White, Black
		} else {
			p.Background, p.Foreground = Black, White
		}
	}

	return p
}

// Derive builds a named theme. A non-nil accent replaces the table accent.
// It never fails.
func Derive(kind Kind, scheme Scheme, contrast Contrast, accent *Color) Theme {
	p := SystemPalette(kind, scheme, contrast)
	if accent != nil {
		p.Accent = *accent
	}

	return Theme{
		Name:     Name(kind, scheme, contrast),
		Kind:     kind,
		Scheme:   scheme,
		Contrast: contrast,
		Palette:  p,
	}
}

// Name returns the display name of a derived theme, e.g. "Adwaita Dark".
func Name(kind Kind, scheme Scheme, contrast Contrast) string {
	name := Family(kind)
	if scheme == SchemeLight {
		name += " Light"
	} else {
		name += " Dark"
	}
	if contrast == ContrastHigh {
		name += " High Contrast"
	}
	return name
}
