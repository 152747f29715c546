// Package render is the GPU side of the emulator: glyph atlas and cache,
// instanced text/rect batchers with dual-source subpixel blending, theme
// and color resolution, and the frame renderer that turns terminal
// snapshots into draw calls. Everything here runs on the render thread,
// which exclusively owns all GL state.
package render

import "github.com/pufferterm/puffer/terminal"

// RGBA is a straight-alpha color quad, 0..1 per channel.
type RGBA [4]float32

// WithAlpha returns the color with a replaced alpha channel.
func (c RGBA) WithAlpha(a float32) RGBA {
	return RGBA{c[0], c[1], c[2], a}
}

// Resolve maps a terminal cell color onto the active theme.
func (t *Theme) Resolve(c terminal.Color) RGBA {
	switch c.Kind {
	case terminal.ColorDefaultFg:
		return t.Fg
	case terminal.ColorDefaultBg:
		return t.Bg
	case terminal.ColorIndexed:
		if c.Index < 16 {
			return t.ANSI[c.Index]
		}
		return index256(c.Index)
	case terminal.ColorRGB:
		return RGBA{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
	}
	return t.Fg
}

// cubeComponent maps one 6-level color-cube axis value (0-5) to its xterm
// byte value: 0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff.
func cubeComponent(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

// index256 converts a 256-color index (16-255) to RGBA via the standard
// xterm cube and grayscale ramp. Indices below 16 come from the theme and
// never reach here.
func index256(idx uint8) RGBA {
	if idx < 16 {
		return RGBA{0.5, 0.5, 0.5, 1}
	}
	if idx < 232 {
		i := idx - 16
		r := cubeComponent(i / 36)
		g := cubeComponent((i % 36) / 6)
		b := cubeComponent(i % 6)
		return RGBA{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
	}
	// Grayscale ramp: 24 shades, 8 + 10 per step.
	v := float32(8+int(idx-232)*10) / 255
	return RGBA{v, v, v, 1}
}
