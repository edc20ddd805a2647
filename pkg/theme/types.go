// Package theme provides the appearance value model shared by every platform
// backend: scheme, contrast, desktop kind, colors, palettes and the error
// taxonomy, plus the palette derivation used to build a complete theme.
package theme

import (
	"fmt"
	"strings"
)

// Scheme is the light/dark appearance preference.
// The zero value is SchemeDark, which is also the fallback when undetectable.
type Scheme uint8

const (
	SchemeDark Scheme = iota
	SchemeLight
)

// Contrast is the accessibility contrast preference.
type Contrast uint8

const (
	ContrastNormal Contrast = iota
	ContrastHigh
)

// Kind identifies the desktop environment family.
type Kind uint8

const (
	KindWindows Kind = iota
	KindMacOS
	KindGtk
	KindQt
)

var (
	schemeNames   = [...]string{SchemeDark: "dark", SchemeLight: "light"}
	contrastNames = [...]string{ContrastNormal: "normal", ContrastHigh: "high"}
	kindNames     = [...]string{KindWindows: "windows", KindMacOS: "macos", KindGtk: "gtk", KindQt: "qt"}
)

func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// IsDark reports whether s is the dark scheme.
func (s Scheme) IsDark() bool { return s != SchemeLight }

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if int(s) >= len(schemeNames) {
		return nil, fmt.Errorf("invalid scheme %d", uint8(s))
	}
	return []byte(schemeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	i, err := lookupName(schemeNames[:], text)
	if err != nil {
		return fmt.Errorf("scheme: %w", err)
	}
	*s = Scheme(i)
	return nil
}

func (c Contrast) String() string {
	if int(c) < len(contrastNames) {
		return contrastNames[c]
	}
	return fmt.Sprintf("contrast(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Contrast) MarshalText() ([]byte, error) {
	if int(c) >= len(contrastNames) {
		return nil, fmt.Errorf("invalid contrast %d", uint8(c))
	}
	return []byte(contrastNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Contrast) UnmarshalText(text []byte) error {
	i, err := lookupName(contrastNames[:], text)
	if err != nil {
		return fmt.Errorf("contrast: %w", err)
	}
	*c = Contrast(i)
	return nil
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	i, err := lookupName(kindNames[:], text)
	if err != nil {
		return fmt.Errorf("kind: %w", err)
	}
	*k = Kind(i)
	return nil
}

func lookupName(names []string, text []byte) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", s)
}
