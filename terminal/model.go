// Package terminal holds the boundary between the renderer and the
// terminal emulation engine: the opaque Model interface, the renderable
// Snapshot copied out of it each frame, and the SharedTerminalHandle that
// lets a per-pane writer goroutine and the render thread share one Model
// without tearing.
package terminal

// Flags carries per-cell style attributes.
type Flags uint16

const (
	FlagBold Flags = 1 << iota
	FlagItalic
	FlagUnderline
	FlagInverse
	FlagDim
	FlagHidden
	FlagStrikeout
	// FlagWide marks the leading cell of a double-width glyph; the cell to
	// its right carries FlagWideSpacer and renders nothing.
	FlagWide
	FlagWideSpacer
)

// Mode carries terminal mode flags the render and input paths care about.
type Mode uint32

const (
	// ModeMouseClick reports button press/release.
	ModeMouseClick Mode = 1 << iota
	// ModeMouseDrag additionally reports motion while a button is held.
	ModeMouseDrag
	// ModeMouseMotion reports all motion.
	ModeMouseMotion
	// ModeMouseSGR selects SGR extended coordinates for mouse reports.
	ModeMouseSGR
	// ModeAppCursor is DECCKM application cursor keys.
	ModeAppCursor
	// ModeBracketedPaste wraps pasted text in ESC[200~ / ESC[201~.
	ModeBracketedPaste
	// ModeAltScreen is the alternate screen buffer (no scrollback).
	ModeAltScreen
)

// MouseReporting returns true if any mouse reporting mode is active.
func (m Mode) MouseReporting() bool {
	return m&(ModeMouseClick|ModeMouseDrag|ModeMouseMotion) != 0
}

// ColorKind discriminates the cell color encodings a terminal engine emits.
type ColorKind uint8

const (
	// ColorDefaultFg resolves to the theme foreground.
	ColorDefaultFg ColorKind = iota
	// ColorDefaultBg resolves to the theme background.
	ColorDefaultBg
	// ColorIndexed is a palette index 0-255.
	ColorIndexed
	// ColorRGB is a direct 24-bit color.
	ColorRGB
)

// Color is a cell color before theme resolution.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// DefaultFg returns the theme-foreground color value.
func DefaultFg() Color { return Color{Kind: ColorDefaultFg} }

// DefaultBg returns the theme-background color value.
func DefaultBg() Color { return Color{Kind: ColorDefaultBg} }

// Indexed returns a palette color.
func Indexed(i uint8) Color { return Color{Kind: ColorIndexed, Index: i} }

// RGB returns a direct color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Model is the opaque terminal emulation engine behind a pane. All methods
// must be called with the pane's handle held; the Handle type enforces that.
// The render path only calls Snapshot; the writer goroutine only calls
// Advance; input forwarding uses the rest.
type Model interface {
	// Advance feeds one chunk of bytes from the PTY into the engine.
	Advance(chunk []byte)

	// Resize changes the grid dimensions.
	Resize(cols, rows int)

	// Snapshot copies the currently renderable state into snap, reusing
	// snap's backing storage where possible.
	Snapshot(snap *Snapshot)

	// Mode returns the active terminal mode flags.
	Mode() Mode

	// ScrollDisplay moves the viewport within scrollback by delta lines
	// (positive scrolls toward history, zero offset is the live screen).
	ScrollDisplay(delta int)

	// StartSelection begins a selection at a viewport cell.
	StartSelection(col, row int)

	// UpdateSelection extends the active selection to a viewport cell.
	UpdateSelection(col, row int)

	// ClearSelection drops any active selection.
	ClearSelection()

	// SelectionText returns the selected text, or "" when none.
	SelectionText() string
}
