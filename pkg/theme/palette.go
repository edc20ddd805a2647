package theme

// Palette holds the six semantic colors an application themes its UI with.
type Palette struct {
	Background Color `json:"background"`
	Foreground Color `json:"foreground"`
	Accent     Color `json:"accent"`
	Success    Color `json:"success"`
	Warning    Color `json:"warning"`
	Danger     Color `json:"danger"`
}

// NamedColor is a palette entry paired with its field name.
type NamedColor struct {
	Name  string
	Color Color
}

// Colors returns the palette entries in declaration order.
func (p Palette) Colors() []NamedColor {
	return []NamedColor{
		{Name: "background", Color: p.Background},
		{Name: "foreground", Color: p.Foreground},
		{Name: "accent", Color: p.Accent},
		{Name: "success", Color: p.Success},
		{Name: "warning", Color: p.Warning},
		{Name: "danger", Color: p.Danger},
	}
}

// Valid reports whether every palette color is in range.
func (p Palette) Valid() bool {
	for _, c := range p.Colors() {
		if !c.Color.Valid() {
			return false
		}
	}
	return true
}

// Built-in palettes. Values are copied from each desktop's published colors.
// They are read through BuiltinPalette, which hands out copies.
var (
	// fluentLight is the Windows Fluent light palette.
	// Source: https://storybooks.fluentui.dev/react/?path=/docs/theme-colors--docs
	fluentLight = Palette{
		Background: RGB8(250, 250, 250),
		Foreground: RGB8(36, 36, 36),
		Accent:     RGB8(15, 108, 189),
		Success:    RGB8(14, 112, 14),
		Warning:    RGB8(188, 75, 9),
		Danger:     RGB8(177, 14, 28),
	}

	// fluentDark is the Windows Fluent dark palette.
	fluentDark = Palette{
		Background: RGB8(31, 31, 31),
		Foreground: RGB8(255, 255, 255),
		Accent:     RGB8(71, 158, 245),
		Success:    RGB8(84, 176, 84),
		Warning:    RGB8(250, 160, 107),
		Danger:     RGB8(220, 98, 109),
	}

	// aquaLight is the Apple Aqua light palette.
	// Source: https://developer.apple.com/design/human-interface-guidelines/color
	aquaLight = Palette{
		Background: RGB8(229, 229, 234),
		Foreground: RGB8(28, 28, 30),
		Accent:     RGB8(0, 136, 255),
		Success:    RGB8(52, 199, 89),
		Warning:    RGB8(255, 141, 40),
		Danger:     RGB8(255, 56, 60),
	}

	// aquaDark is the Apple Aqua dark palette.
	aquaDark = Palette{
		Background: RGB8(44, 44, 46),
		Foreground: RGB8(242, 242, 247),
		Accent:     RGB8(0, 145, 255),
		Success:    RGB8(48, 209, 88),
		Warning:    RGB8(255, 146, 48),
		Danger:     RGB8(255, 66, 69),
	}

	// adwaitaLight is the GNOME Adwaita light palette.
	// Source: https://github.com/FedoraQt/QGnomePlatform/blob/master/src/color-schemes/Adwaita.colors
	adwaitaLight = Palette{
		Background: RGB8(246, 245, 244),
		Foreground: RGB8(25, 25, 25),
		Accent:     RGB8(61, 174, 233),
		Success:    RGB8(39, 174, 96),
		Warning:    RGB8(246, 116, 0),
		Danger:     RGB8(218, 68, 83),
	}

	// adwaitaDark is the GNOME Adwaita dark palette.
	adwaitaDark = Palette{
		Background: RGB8(45, 45, 45),
		Foreground: RGB8(255, 255, 255),
		Accent:     RGB8(61, 174, 233),
		Success:    RGB8(39, 174, 96),
		Warning:    RGB8(246, 116, 0),
		Danger:     RGB8(218, 68, 83),
	}

	// breezeLight is the KDE Breeze light palette.
	// Source: https://github.com/KDE/breeze/blob/master/colors/breezeLight.colors
	breezeLight = Palette{
		Background: RGB8(255, 255, 255),
		Foreground: RGB8(35, 38, 41),
		Accent:     RGB8(61, 174, 233),
		Success:    RGB8(39, 174, 96),
		Warning:    RGB8(246, 116, 0),
		Danger:     RGB8(218, 68, 83),
	}

	// breezeDark is the KDE Breeze dark palette.
	breezeDark = Palette{
		Background: RGB8(20, 22, 24),
		Foreground: RGB8(252, 252, 252),
		Accent:     RGB8(61, 174, 233),
		Success:    RGB8(39, 174, 96),
		Warning:    RGB8(246, 116, 0),
		Danger:     RGB8(218, 68, 83),
	}
)
