package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB color with channels in [0.0, 1.0].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

var (
	// White is #FFFFFF.
	White = Color{R: 1, G: 1, B: 1}
	// Black is #000000.
	Black = Color{R: 0, G: 0, B: 0}
)

// RGB8 creates a color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
	}
}

// Valid reports whether every channel lies in [0.0, 1.0].
func (c Color) Valid() bool {
	return ValidComponent(float64(c.R)) && ValidComponent(float64(c.G)) && ValidComponent(float64(c.B))
}

// ValidComponent reports whether v is a usable channel value. NaN is rejected.
func ValidComponent(v float64) bool {
	return v >= 0 && v <= 1
}

// Lightness returns the Oklab perceptual lightness of the color.
// Channels are fed to the RGB->LMS matrix as-is.
func (c Color) Lightness() float64 {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	// https://bottosson.github.io/posts/oklab/
	l := 0.41222146*r + 0.53633255*g + 0.051445995*b
	m := 0.2119035*r + 0.6806995*g + 0.10739696*b
	s := 0.08830246*r + 0.28171885*g + 0.6299787*b

	return 0.21045426*math.Cbrt(l) + 0.7936178*math.Cbrt(m) - 0.004072047*math.Cbrt(s)
}

// IsDark reports whether the color's Oklab lightness is below half the scale.
func (c Color) IsDark() bool {
	return c.Lightness() < 0.5
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("%s (%.3f, %.3f, %.3f)", c.Hex(), c.R, c.G, c.B)
}
