package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB8_Extremes(t *testing.T) {
	assert.Equal(t, Color{R: 1, G: 1, B: 1}, RGB8(255, 255, 255))
	assert.Equal(t, Color{R: 0, G: 0, B: 0}, RGB8(0, 0, 0))
	assert.Equal(t, White, RGB8(255, 255, 255))
	assert.Equal(t, Black, RGB8(0, 0, 0))
}

func TestColor_IsDark(t *testing.T) {
	assert.False(t, White.IsDark())
	assert.True(t, Black.IsDark())

	// Raw channels go straight into the LMS matrix, so the L = 0.5 boundary
	// sits at a gray of 0.5^3.
	assert.True(t, Color{R: 0.1, G: 0.1, B: 0.1}.IsDark())
	assert.False(t, Color{R: 0.15, G: 0.15, B: 0.15}.IsDark())
	assert.InDelta(t, 0.5, Color{R: 0.125, G: 0.125, B: 0.125}.Lightness(), 0.001)
}

func TestColor_LightnessMonotonic(t *testing.T) {
	hues := []Color{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 1, B: 1},
		{R: 0.2, G: 0.6, B: 0.9},
	}

	for _, hue := range hues {
		prev := math.Inf(-1)
		for i := 0; i <= 20; i++ {
			f := float32(i) / 20
			l := Color{R: hue.R * f, G: hue.G * f, B: hue.B * f}.Lightness()
			assert.GreaterOrEqual(t, l, prev, "hue %v at %.2f", hue, f)
			prev = l
		}
	}
}

func TestColor_Valid(t *testing.T) {
	assert.True(t, White.Valid())
	assert.True(t, Color{R: 0.5, G: 0, B: 1}.Valid())
	assert.False(t, Color{R: 1.01, G: 0, B: 0}.Valid())
	assert.False(t, Color{R: 0, G: -0.1, B: 0}.Valid())
	assert.False(t, Color{R: 0, G: 0, B: float32(math.NaN())}.Valid())
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#ffffff", White.Hex())
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#2d2d2d", RGB8(45, 45, 45).Hex())
	assert.Equal(t, "#3daee9", RGB8(61, 174, 233).Hex())
}

func TestEnums_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(Theme{Kind: KindQt, Scheme: SchemeLight, Contrast: ContrastHigh})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"qt"`)
	assert.Contains(t, string(data), `"scheme":"light"`)
	assert.Contains(t, string(data), `"contrast":"high"`)

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("MacOS")))
	assert.Equal(t, KindMacOS, k)

	var s Scheme
	assert.Error(t, s.UnmarshalText([]byte("sepia")))

	_, err = Scheme(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "scheme(9)", Scheme(9).String())
}

func TestPlatformError(t *testing.T) {
	cause := errors.New("bus exploded")
	err := NewPlatformError(cause)

	assert.ErrorIs(t, err, ErrPlatform)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnsupported)

	var pe *PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, cause, pe.Err)

	assert.NoError(t, NewPlatformError(nil))
	assert.Equal(t, ErrUnavailable, NewPlatformError(ErrUnavailable))

	wrapped := fmt.Errorf("read accent: %w", ErrUnsupported)
	assert.True(t, Classified(wrapped))
	assert.False(t, Classified(cause))
}
