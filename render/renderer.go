package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/pufferterm/puffer/font"
	"github.com/pufferterm/puffer/layout"
	"github.com/pufferterm/puffer/terminal"
)

const (
	// DividerThickness is the drawn width of a pane divider in pixels.
	// Hit-testing uses a wider threshold; see the input package.
	DividerThickness = 2

	// MaxTabWidth caps one tab's share of the bar. Hit-testing in the
	// window loop divides the bar the same way.
	MaxTabWidth = 220

	tabBarPad      = 4
	borderWidth    = 1
	selectionAlpha = 0.35
)

// Renderer owns the GL pipelines and the glyph cache and turns terminal
// snapshots and window chrome into batched draw calls. All methods must
// run on the render thread with a current context.
type Renderer struct {
	Theme Theme

	cache *GlyphCache
	text  *TextBatcher
	rects *RectBatcher

	width, height float32
}

// NewRenderer builds the pipelines for a rasterizer and theme. Requires
// a current GL context.
func NewRenderer(ras font.Rasterizer, theme Theme) (*Renderer, error) {
	text, err := NewTextBatcher()
	if err != nil {
		return nil, fmt.Errorf("text pipeline: %w", err)
	}
	rects, err := NewRectBatcher()
	if err != nil {
		text.Destroy()
		return nil, fmt.Errorf("rect pipeline: %w", err)
	}
	return &Renderer{
		Theme: theme,
		cache: NewGlyphCache(ras, NewAtlas(glTextures{})),
		text:  text,
		rects: rects,
	}, nil
}

// SetRasterizer swaps the font, dropping the atlas and cache. Used on
// config reload when family or size changes.
func (r *Renderer) SetRasterizer(ras font.Rasterizer) {
	old := r.cache.Atlas()
	r.cache = NewGlyphCache(ras, NewAtlas(glTextures{}))
	old.ReleaseRetired()
	glTextures{}.deleteTexture(old.Texture())
}

// CellSize returns the cell dimensions in pixels.
func (r *Renderer) CellSize() (w, h float32) {
	m := r.cache.Metrics()
	return m.CellWidth, m.CellHeight
}

// BeginFrame sets the viewport and clears to the theme background.
func (r *Renderer) BeginFrame(width, height float32) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	bg := r.Theme.Bg
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EndFrame flushes all pending batches and frees retired atlas textures.
func (r *Renderer) EndFrame() {
	r.flushBatches()
	r.cache.Atlas().ReleaseRetired()
}

// flushBatches draws rects then text. Cell rectangles are disjoint, so a
// mid-frame flush forced by an atlas regrow keeps the same result.
func (r *Renderer) flushBatches() {
	r.rects.Flush(r.width, r.height)
	r.text.Flush(r.width, r.height)
}

// DrawRect queues a solid rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c RGBA) {
	if c[3] <= 0 {
		return
	}
	r.rects.Add(RectInstance{X: x, Y: y, W: w, H: h, R: c[0], G: c[1], B: c[2], A: c[3]}, r.width, r.height)
}

// drawGlyph queues one glyph quad against the pen position. penX is the
// left edge of the cell, baseline the text baseline in window pixels.
func (r *Renderer) drawGlyph(g Glyph, penX, baseline float32, fg RGBA) {
	if g.Empty() {
		return
	}
	if r.text.Len() > 0 && r.text.Generation() != g.Slot.Generation {
		// The batch samples a texture from before a regrow; draw it
		// before mixing in slots from the new one.
		r.flushBatches()
	}
	r.text.Add(GlyphInstance{
		X: penX + g.Left, Y: baseline - g.Top,
		W: g.Width, H: g.Height,
		U: g.U, V: g.V, US: g.US, VS: g.VS,
		R: fg[0], G: fg[1], B: fg[2], A: fg[3],
	}, g.Slot, r.width, r.height)
}

// DrawString draws a grapheme-segmented string at a pixel position (x is
// the left edge, y the top of the line box) and returns the advance in
// pixels. Used for chrome: tab titles and the scroll badge.
func (r *Renderer) DrawString(x, y float32, s string, fg RGBA) float32 {
	cw, chh := r.CellSize()
	baseline := y + chh + r.cache.Metrics().Descent
	pen := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		adv := cw * float32(max(runewidth.StringWidth(cluster), 1))
		if cluster != " " {
			r.drawGlyph(r.cache.Get(cluster, false, false), pen, baseline, fg)
		}
		pen += adv
	}
	return pen - x
}

// DrawSnapshot renders one pane's grid inside its layout rectangle.
// active selects cursor styling; cursorOn is the blink phase.
func (r *Renderer) DrawSnapshot(snap *terminal.Snapshot, pl layout.PaneLayout, active, cursorOn bool) {
	cw, chh := r.CellSize()
	descent := r.cache.Metrics().Descent
	theme := &r.Theme

	for i := range snap.Cells {
		cell := &snap.Cells[i]
		if cell.Flags&terminal.FlagWideSpacer != 0 {
			continue
		}
		x := pl.X + float32(cell.Col)*cw
		y := pl.Y + float32(cell.Row)*chh
		cellW := cw
		if cell.Flags&terminal.FlagWide != 0 {
			cellW *= 2
		}

		fg := theme.Resolve(cell.Fg)
		bg := theme.Resolve(cell.Bg)
		if cell.Flags&terminal.FlagInverse != 0 {
			fg, bg = bg, fg
		}
		if cell.Flags&terminal.FlagBold != 0 {
			fg = Brighten(fg)
		}
		if cell.Flags&terminal.FlagDim != 0 {
			fg = Dim(fg)
		}

		if bg != theme.Bg {
			r.DrawRect(x, y, cellW, chh, bg)
		}
		if snap.Selection.Active && snap.Selection.Contains(cell.Col, cell.Row) {
			r.DrawRect(x, y, cellW, chh, theme.Overlay.WithAlpha(selectionAlpha))
		}
		if cell.Flags&terminal.FlagUnderline != 0 {
			r.DrawRect(x, y+chh+descent+1, cellW, 1, fg)
		}
		if cell.Flags&terminal.FlagStrikeout != 0 {
			r.DrawRect(x, y+chh*0.55, cellW, 1, fg)
		}

		if cell.Flags&terminal.FlagHidden != 0 || cell.Cluster == "" || cell.Cluster == " " {
			continue
		}
		bold := cell.Flags&terminal.FlagBold != 0
		italic := cell.Flags&terminal.FlagItalic != 0
		r.drawGlyph(r.cache.Get(cell.Cluster, bold, italic), x, y+chh+descent, fg)
	}

	r.drawCursor(snap, pl, active, cursorOn)
	r.drawScrollBadge(snap, pl)
}

// drawCursor draws the cursor unless the pane is scrolled into history.
// Inactive panes get a hollow block regardless of shape so focus stays
// legible; blink only suppresses the active cursor.
func (r *Renderer) drawCursor(snap *terminal.Snapshot, pl layout.PaneLayout, active, cursorOn bool) {
	cur := snap.Cursor
	if !cur.Visible || snap.DisplayOffset != 0 {
		return
	}
	cw, chh := r.CellSize()
	x := pl.X + float32(cur.Col)*cw
	y := pl.Y + float32(cur.Row)*chh
	c := r.Theme.Cursor

	if !active {
		r.drawHollowRect(x, y, cw, chh, c.WithAlpha(0.7))
		return
	}
	if !cursorOn {
		return
	}
	switch cur.Shape {
	case terminal.CursorBlock:
		r.DrawRect(x, y, cw, chh, c.WithAlpha(0.8))
	case terminal.CursorBeam:
		r.DrawRect(x, y, 2, chh, c)
	case terminal.CursorUnderline:
		r.DrawRect(x, y+chh-2, cw, 2, c)
	}
}

func (r *Renderer) drawHollowRect(x, y, w, h float32, c RGBA) {
	r.DrawRect(x, y, w, borderWidth, c)
	r.DrawRect(x, y+h-borderWidth, w, borderWidth, c)
	r.DrawRect(x, y, borderWidth, h, c)
	r.DrawRect(x+w-borderWidth, y, borderWidth, h, c)
}

// drawScrollBadge shows "[offset/history]" in the pane's top-right corner
// while the display is scrolled back.
func (r *Renderer) drawScrollBadge(snap *terminal.Snapshot, pl layout.PaneLayout) {
	if snap.DisplayOffset == 0 {
		return
	}
	cw, chh := r.CellSize()
	label := fmt.Sprintf("[%d/%d]", snap.DisplayOffset, snap.HistorySize)
	w := cw * float32(runewidth.StringWidth(label))
	x := pl.X + pl.Width - w - cw
	y := pl.Y
	r.DrawRect(x-tabBarPad, y, w+2*tabBarPad, chh, r.Theme.Surface)
	r.DrawString(x, y, label, r.Theme.Border)
}

// DrawPaneBorder outlines the active pane. Skipped when it is the only
// pane on screen.
func (r *Renderer) DrawPaneBorder(pl layout.PaneLayout) {
	r.drawHollowRect(pl.X, pl.Y, pl.Width, pl.Height, r.Theme.Border)
}

// DrawDividers draws the split boundaries of the active tab.
func (r *Renderer) DrawDividers(divs []layout.Divider) {
	for _, d := range divs {
		switch d.Orientation {
		case layout.Vertical:
			r.DrawRect(d.Position-DividerThickness/2, d.PerpStart,
				DividerThickness, d.PerpEnd-d.PerpStart, r.Theme.Overlay)
		case layout.Horizontal:
			r.DrawRect(d.PerpStart, d.Position-DividerThickness/2,
				d.PerpEnd-d.PerpStart, DividerThickness, r.Theme.Overlay)
		}
	}
}

// TabBarHeight returns the bar height in pixels: zero with fewer than two
// tabs, one line box plus padding otherwise.
func (r *Renderer) TabBarHeight(tabCount int) float32 {
	if tabCount < 2 {
		return 0
	}
	_, chh := r.CellSize()
	return chh + 2*tabBarPad
}

// TabWidth is one tab's width when n tabs share a bar of the given
// total width. Drawing and hit-testing both divide the bar with this.
func TabWidth(total float32, n int) float32 {
	w := total / float32(n)
	if w > MaxTabWidth {
		w = MaxTabWidth
	}
	return w
}

// DrawTabBar draws the tab strip across the top of the window. The
// caller has already reserved TabBarHeight pixels above the pane area.
func (r *Renderer) DrawTabBar(tabs []*layout.Tab, activeIdx int) {
	if len(tabs) < 2 {
		return
	}
	cw, chh := r.CellSize()
	barH := chh + 2*tabBarPad
	r.DrawRect(0, 0, r.width, barH, r.Theme.Surface)

	tabW := TabWidth(r.width, len(tabs))
	for i, tab := range tabs {
		x := float32(i) * tabW
		title := fmt.Sprintf("%d:%s", i+1, tab.Title)
		if i == activeIdx {
			r.DrawRect(x, 0, tabW, barH, r.Theme.Bg)
		}
		fg := r.Theme.Overlay
		if i == activeIdx {
			fg = r.Theme.Fg
		}
		r.DrawString(x+tabBarPad, tabBarPad, truncateToWidth(title, int((tabW-2*tabBarPad)/cw)), fg)
		if i > 0 {
			r.DrawRect(x, tabBarPad, 1, chh, r.Theme.Overlay)
		}
	}
}

// truncateToWidth cuts a string to at most cells display columns,
// breaking on grapheme boundaries.
func truncateToWidth(s string, cells int) string {
	if runewidth.StringWidth(s) <= cells {
		return s
	}
	var out []byte
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if used+w > cells {
			break
		}
		out = append(out, g.Bytes()...)
		used += w
	}
	return string(out)
}
