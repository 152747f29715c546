package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds every color the renderer needs. The two built-in palettes
// are Catppuccin Latte (light) and Mocha (dark); config picks one by name.
type Theme struct {
	Name string

	Bg      RGBA // default cell background, also the clear color
	Fg      RGBA // default cell foreground
	Border  RGBA // active pane border, scroll badge accent
	Surface RGBA // tab bar and inactive-tab background
	Overlay RGBA // pane dividers, muted chrome text
	Cursor  RGBA

	// ANSI palette: 0-7 normal, 8-15 bright.
	ANSI [16]RGBA
}

// ThemeByName returns the named built-in theme, defaulting to Mocha for
// anything unrecognized.
func ThemeByName(name string) Theme {
	if name == "latte" {
		return Latte()
	}
	return Mocha()
}

// Latte is the Catppuccin Latte (light) palette.
func Latte() Theme {
	return Theme{
		Name:    "latte",
		Bg:      hex("#eff1f5"),
		Fg:      hex("#4c4f69"),
		Border:  hex("#7287fd"),
		Surface: hex("#ccd0da"),
		Overlay: hex("#9ca0b0"),
		Cursor:  hex("#4c4f69"),
		ANSI: [16]RGBA{
			hex("#5c5f77"), hex("#d20f39"), hex("#40a02b"), hex("#df8e1d"),
			hex("#1e66f5"), hex("#ea76cb"), hex("#179299"), hex("#acb0be"),
			hex("#6c6f85"), hex("#d20f39"), hex("#40a02b"), hex("#df8e1d"),
			hex("#1e66f5"), hex("#ea76cb"), hex("#179299"), hex("#bcc0cc"),
		},
	}
}

// Mocha is the Catppuccin Mocha (dark) palette.
func Mocha() Theme {
	return Theme{
		Name:    "mocha",
		Bg:      hex("#1e1e2e"),
		Fg:      hex("#cdd6f4"),
		Border:  hex("#b4befe"),
		Surface: hex("#313244"),
		Overlay: hex("#6c7086"),
		Cursor:  hex("#cdd6f4"),
		ANSI: [16]RGBA{
			hex("#45475a"), hex("#f38ba8"), hex("#a6e3a1"), hex("#f9e2af"),
			hex("#89b4fa"), hex("#f5c2e7"), hex("#94e2d5"), hex("#bac2de"),
			hex("#585b70"), hex("#f38ba8"), hex("#a6e3a1"), hex("#f9e2af"),
			hex("#89b4fa"), hex("#f5c2e7"), hex("#94e2d5"), hex("#a6adc8"),
		},
	}
}

// Brighten lifts a color's luminance for bold text.
func Brighten(c RGBA) RGBA {
	return scaleLuminance(c, 1.15)
}

// Dim lowers a color's luminance for faint text.
func Dim(c RGBA) RGBA {
	return scaleLuminance(c, 0.66)
}

func scaleLuminance(c RGBA, factor float32) RGBA {
	col := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
	h, s, l := col.Hsl()
	l *= float64(factor)
	if l > 1 {
		l = 1
	}
	out := colorful.Hsl(h, s, l).Clamped()
	return RGBA{float32(out.R), float32(out.G), float32(out.B), c[3]}
}

func hex(s string) RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad theme literal " + s)
	}
	return RGBA{float32(c.R), float32(c.G), float32(c.B), 1}
}
