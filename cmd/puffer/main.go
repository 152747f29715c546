// Command puffer is a GPU-accelerated terminal emulator with tabs and
// split panes. One OS thread owns the window and all GL state; every
// pane runs a shell on a pty drained by its own goroutine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pufferterm/puffer/audio"
	"github.com/pufferterm/puffer/config"
	"github.com/pufferterm/puffer/events"
	"github.com/pufferterm/puffer/font"
	"github.com/pufferterm/puffer/frame"
	"github.com/pufferterm/puffer/input"
	"github.com/pufferterm/puffer/layout"
	"github.com/pufferterm/puffer/render"
	"github.com/pufferterm/puffer/terminal"
)

const (
	defaultWidth  = 960
	defaultHeight = 600

	// dividerHitSlop widens divider hit-testing beyond the drawn line.
	dividerHitSlop = 4

	bellFlashLength = 150 * time.Millisecond

	scrollLinesPerTick = 3
)

func init() {
	// GLFW event handling and GL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "config file path (default $XDG_CONFIG_HOME/puffer/puffer.toml)")
	shellFlag := flag.String("shell", "", "shell to run (default $SHELL)")
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := run(*cfgPath, *shellFlag); err != nil {
		fmt.Fprintln(os.Stderr, "puffer:", err)
		os.Exit(1)
	}
}

type app struct {
	win      *glfw.Window
	renderer *render.Renderer
	tabs     *layout.TabManager
	sched    *frame.Scheduler
	proxy    *events.Proxy
	bell     *audio.Bell

	cfg      config.Config
	cfgPath  string
	fontSize float64

	fbW, fbH float32
	scaleX   float32
	scaleY   float32

	snap terminal.Snapshot

	// Mouse state.
	cursorX, cursorY float64
	heldButton       int // -1 when no button is down
	selecting        bool
	selectingPane    int
	lastCell         [2]int
	drag             *layout.Divider

	bellFlashUntil time.Time
}

func run(cfgPath, shellFlag string) error {
	if cfgPath == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}
	if shellFlag != "" {
		cfg.Shell = shellFlag
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(defaultWidth, defaultHeight, "puffer", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	sx, sy := win.GetContentScale()
	ras, err := font.Load(cfg.FontPath, cfg.FontSize, float64(sx))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	renderer, err := render.NewRenderer(ras, render.ThemeByName(cfg.Theme))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	cellW, cellH := renderer.CellSize()
	win.SetSizeLimits(int(2*cellW/sx), int(2*cellH/sy), glfw.DontCare, glfw.DontCare)

	a := &app{
		win:        win,
		renderer:   renderer,
		sched:      frame.NewScheduler(),
		proxy:      events.NewProxy(glfw.PostEmptyEvent),
		bell:       audio.NewBell(cfg.BellEnabled),
		cfg:        cfg,
		cfgPath:    cfgPath,
		fontSize:   cfg.FontSize,
		scaleX:     sx,
		scaleY:     sy,
		heldButton: -1,
	}
	fw, fh := win.GetFramebufferSize()
	a.fbW, a.fbH = float32(fw), float32(fh)

	tabs, err := layout.NewTabManager(a.spawnPane)
	if err != nil {
		return fmt.Errorf("spawn shell: %w", err)
	}
	a.tabs = tabs
	a.resizePanes()
	defer func() {
		for _, tab := range a.tabs.Tabs() {
			for _, pane := range tab.Panes {
				pane.Close()
			}
		}
	}()

	if w, err := config.Watch(cfgPath, func() {
		a.proxy.Post(events.Event{Kind: events.ConfigReloaded})
	}); err != nil {
		log.Printf("config: watch disabled: %v", err)
	} else {
		defer w.Close()
	}

	a.installCallbacks()
	a.loop()
	return nil
}

// spawnPane builds the model/handle/session trio for a new pane. The
// initial grid is provisional; resizePanes follows immediately.
func (a *app) spawnPane(paneID int) (*layout.Pane, error) {
	model := terminal.NewBasicModel(80, 24, a.cfg.Scrollback)
	model.OnBell = func() {
		a.proxy.Post(events.Event{Kind: events.Bell, PaneID: paneID})
	}
	h := terminal.NewHandle(model)
	sess, err := terminal.StartSession(h, terminal.SessionConfig{
		Shell: a.cfg.Shell,
		Cols:  80,
		Rows:  24,
		OnOutput: func() {
			a.proxy.Post(events.Event{Kind: events.Wakeup})
		},
		OnExit: func(err error) {
			if err != nil {
				log.Printf("pane %d: %v", paneID, err)
			}
			a.proxy.Post(events.Event{Kind: events.PaneExited, PaneID: paneID})
		},
	})
	if err != nil {
		return nil, err
	}
	return &layout.Pane{Handle: h, Session: sess}, nil
}

// paneArea returns the pixel region below the tab bar.
func (a *app) paneArea() (y, w, h float32) {
	barH := a.renderer.TabBarHeight(a.tabs.Count())
	return barH, a.fbW, a.fbH - barH
}

func (a *app) resizePanes() {
	cw, ch := a.renderer.CellSize()
	_, w, h := a.paneArea()
	a.tabs.ResizeAll(w, h, cw, ch)
	a.sched.MarkDirty()
}

// layouts returns the active tab's pane rectangles in framebuffer
// coordinates, already offset below the tab bar.
func (a *app) layouts() []layout.PaneLayout {
	y, w, h := a.paneArea()
	ls := a.tabs.ActiveLayouts(w, h)
	for i := range ls {
		ls[i].Y += y
	}
	return ls
}

func (a *app) dividers() []layout.Divider {
	y, w, h := a.paneArea()
	ds := a.tabs.ActiveDividers(w, h)
	for i := range ds {
		if ds[i].Orientation == layout.Horizontal {
			ds[i].Position += y
			ds[i].Origin += y
		} else {
			ds[i].PerpStart += y
			ds[i].PerpEnd += y
		}
	}
	return ds
}

func (a *app) loop() {
	for !a.win.ShouldClose() {
		now := time.Now()
		timeout := a.sched.NextDeadline(now)
		if until := a.bellFlashUntil.Sub(now); until > 0 && until < timeout {
			timeout = until
		}
		glfw.WaitEventsTimeout(timeout.Seconds())

		now = time.Now()
		a.sched.Advance(now)
		if !a.bellFlashUntil.IsZero() && now.After(a.bellFlashUntil) {
			a.bellFlashUntil = time.Time{}
			a.sched.MarkDirty()
		}
		a.drainEvents()

		if a.sched.ShouldRender() && !a.win.ShouldClose() {
			a.draw()
		}
	}
}

func (a *app) drainEvents() {
	for _, ev := range a.proxy.Drain() {
		switch ev.Kind {
		case events.Wakeup:
			a.sched.MarkDirty()
		case events.Bell:
			a.bell.Ring()
			a.bellFlashUntil = time.Now().Add(bellFlashLength)
			a.sched.MarkDirty()
		case events.TitleChanged:
			a.tabs.SetTitleByPane(ev.PaneID, ev.Title)
			a.sched.MarkDirty()
		case events.PaneExited:
			if a.tabs.ClosePaneByID(ev.PaneID) {
				a.win.SetShouldClose(true)
				return
			}
			a.resizePanes()
		case events.ConfigReloaded:
			a.reloadConfig()
		}
	}
}

// reloadConfig applies an on-disk change: theme and bell switch in
// place, font changes rebuild the rasterizer, and a malformed file
// keeps the running configuration.
func (a *app) reloadConfig() {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		log.Printf("config: %v (keeping current)", err)
		return
	}
	old := a.cfg
	a.cfg = cfg
	a.renderer.Theme = render.ThemeByName(cfg.Theme)
	a.bell.SetEnabled(cfg.BellEnabled)
	if cfg.FontPath != old.FontPath || cfg.FontSize != old.FontSize {
		a.fontSize = cfg.FontSize
		a.reloadFont()
	}
	a.sched.MarkDirty()
}

func (a *app) reloadFont() {
	ras, err := font.Load(a.cfg.FontPath, a.fontSize, float64(a.scaleX))
	if err != nil {
		log.Printf("font: %v (keeping current)", err)
		return
	}
	a.renderer.SetRasterizer(ras)
	a.resizePanes()
}

func (a *app) draw() {
	a.renderer.BeginFrame(a.fbW, a.fbH)

	tab := a.tabs.ActiveTab()
	layouts := a.layouts()
	activeID := tab.Tree.ActivePaneID()
	multi := len(layouts) > 1

	for _, pl := range layouts {
		pane, ok := tab.Panes[pl.PaneID]
		if !ok {
			continue
		}
		active := pl.PaneID == activeID
		pane.Handle.WithRead(func(m terminal.Model) {
			m.Snapshot(&a.snap)
		})
		a.renderer.DrawSnapshot(&a.snap, pl, active, a.sched.BlinkOn())
		if active && multi && !tab.Tree.Zoomed() {
			a.renderer.DrawPaneBorder(pl)
		}
	}
	if !tab.Tree.Zoomed() {
		a.renderer.DrawDividers(a.dividers())
	}
	a.renderer.DrawTabBar(a.tabs.Tabs(), a.tabs.ActiveIndex())

	if !a.bellFlashUntil.IsZero() && time.Now().Before(a.bellFlashUntil) {
		a.renderer.DrawRect(0, 0, a.fbW, a.fbH, a.renderer.Theme.Fg.WithAlpha(0.12))
	}

	a.renderer.EndFrame()
	a.win.SwapBuffers()
}

func (a *app) installCallbacks() {
	a.win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		a.fbW, a.fbH = float32(w), float32(h)
		a.resizePanes()
	})
	a.win.SetContentScaleCallback(func(_ *glfw.Window, sx, sy float32) {
		a.scaleX, a.scaleY = sx, sy
		a.reloadFont()
	})
	a.win.SetRefreshCallback(func(_ *glfw.Window) {
		a.sched.MarkDirty()
	})
	a.win.SetCharCallback(a.onChar)
	a.win.SetKeyCallback(a.onKey)
	a.win.SetMouseButtonCallback(a.onMouseButton)
	a.win.SetCursorPosCallback(a.onCursorPos)
	a.win.SetScrollCallback(a.onScroll)
}

// writeToActive sends bytes to the focused pane's pty and snaps its
// display back to the live screen.
func (a *app) writeToActive(p []byte) {
	if len(p) == 0 {
		return
	}
	pane := a.tabs.ActivePane()
	if pane == nil || pane.Session == nil {
		return
	}
	pane.Handle.WithWrite(func(m terminal.Model) {
		m.ScrollDisplay(-1 << 30)
		m.ClearSelection()
	})
	if err := pane.Session.Write(p); err != nil {
		log.Printf("pty write: %v", err)
	}
	a.sched.ResetBlink(time.Now())
	a.sched.MarkDirty()
}

func (a *app) activeMode() terminal.Mode {
	pane := a.tabs.ActivePane()
	if pane == nil {
		return 0
	}
	var mode terminal.Mode
	pane.Handle.WithRead(func(m terminal.Model) {
		mode = m.Mode()
	})
	return mode
}

func (a *app) onChar(_ *glfw.Window, r rune) {
	a.writeToActive([]byte(string(r)))
}

func (a *app) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, glfwMods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	mods := mapMods(glfwMods)

	if mods&(input.ModCtrl|input.ModShift) == input.ModCtrl|input.ModShift {
		if a.chord(key, mods) {
			a.sched.MarkDirty()
			return
		}
	}

	if named := mapKey(key); named != input.KeyNone {
		appCursor := a.activeMode()&terminal.ModeAppCursor != 0
		if seq := input.EncodeKey(named, mods, appCursor); seq != nil {
			a.writeToActive(seq)
		}
		return
	}

	// Ctrl/Alt chords on printable keys bypass the char callback.
	if mods&(input.ModCtrl|input.ModAlt) != 0 {
		name := glfw.GetKeyName(key, scancode)
		if name != "" {
			for _, r := range name {
				a.writeToActive(input.EncodeChar(r, mods))
				break
			}
		}
	}
}

// chord handles Ctrl+Shift window-management bindings. Returns true
// when the key was consumed.
func (a *app) chord(key glfw.Key, mods input.Mods) bool {
	switch key {
	case glfw.KeyT:
		if _, err := a.tabs.AddTab(); err != nil {
			log.Printf("new tab: %v", err)
		}
		a.resizePanes()
	case glfw.KeyW:
		if a.tabs.CloseActivePane() {
			a.win.SetShouldClose(true)
			return true
		}
		a.resizePanes()
	case glfw.KeyD:
		if err := a.tabs.SplitActive(layout.Vertical); err != nil {
			log.Printf("split: %v", err)
		}
		a.resizePanes()
	case glfw.KeyE:
		if err := a.tabs.SplitActive(layout.Horizontal); err != nil {
			log.Printf("split: %v", err)
		}
		a.resizePanes()
	case glfw.KeyZ:
		a.tabs.ToggleZoom()
		a.resizePanes()
	case glfw.KeyLeftBracket:
		a.tabs.FocusPrevPane()
	case glfw.KeyRightBracket:
		a.tabs.FocusNextPane()
	case glfw.KeyLeft:
		a.tabs.PrevTab()
		a.resizePanes()
	case glfw.KeyRight:
		a.tabs.NextTab()
		a.resizePanes()
	case glfw.KeyN:
		a.toggleTheme()
	case glfw.KeyC:
		a.copySelection()
	case glfw.KeyV:
		a.paste()
	case glfw.KeyEqual:
		a.fontSize++
		a.reloadFont()
	case glfw.KeyMinus:
		if a.fontSize > 6 {
			a.fontSize--
			a.reloadFont()
		}
	case glfw.Key0:
		a.fontSize = a.cfg.FontSize
		a.reloadFont()
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5,
		glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9:
		a.tabs.GotoTab(int(key - glfw.Key1))
		a.resizePanes()
	default:
		return false
	}
	return true
}

// toggleTheme flips between the light and dark palettes. The next config
// reload restores the configured theme.
func (a *app) toggleTheme() {
	if a.renderer.Theme.Name == "latte" {
		a.renderer.Theme = render.Mocha()
	} else {
		a.renderer.Theme = render.Latte()
	}
	a.sched.MarkDirty()
}

func (a *app) copySelection() {
	pane := a.tabs.ActivePane()
	if pane == nil {
		return
	}
	var text string
	pane.Handle.WithRead(func(m terminal.Model) {
		text = m.SelectionText()
	})
	if text != "" {
		a.win.SetClipboardString(text)
	}
}

func (a *app) paste() {
	data := a.win.GetClipboardString()
	if data == "" {
		return
	}
	bracketed := a.activeMode()&terminal.ModeBracketedPaste != 0
	a.writeToActive(input.EncodePaste(data, bracketed))
}

// cellAt maps framebuffer pixels to (pane, cell). ok is false over
// chrome: the tab bar or a divider gap.
func (a *app) cellAt(px, py float32) (pl layout.PaneLayout, col, row int, ok bool) {
	cw, ch := a.renderer.CellSize()
	for _, l := range a.layouts() {
		if px < l.X || px >= l.X+l.Width || py < l.Y || py >= l.Y+l.Height {
			continue
		}
		col = int((px - l.X) / cw)
		row = int((py - l.Y) / ch)
		maxCol := int(l.Width/cw) - 1
		maxRow := int(l.Height/ch) - 1
		col = min(max(col, 0), max(maxCol, 0))
		row = min(max(row, 0), max(maxRow, 0))
		return l, col, row, true
	}
	return layout.PaneLayout{}, 0, 0, false
}

// dividerAt hit-tests dividers with slop on either side of the line.
func (a *app) dividerAt(px, py float32) *layout.Divider {
	for _, d := range a.dividers() {
		d := d
		var along, across, lo, hi float32
		if d.Orientation == layout.Vertical {
			across, along = px, py
		} else {
			across, along = py, px
		}
		lo, hi = d.PerpStart, d.PerpEnd
		if along >= lo && along <= hi && across >= d.Position-dividerHitSlop && across <= d.Position+dividerHitSlop {
			return &d
		}
	}
	return nil
}

func (a *app) framebufferCursor() (float32, float32) {
	return float32(a.cursorX) * a.scaleX, float32(a.cursorY) * a.scaleY
}

func (a *app) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, glfwMods glfw.ModifierKey) {
	mods := mapMods(glfwMods)
	px, py := a.framebufferCursor()
	btn := mapMouseButton(button)
	if btn < 0 {
		return
	}

	if action == glfw.Press {
		a.heldButton = btn

		// Tab bar click.
		if barH := a.renderer.TabBarHeight(a.tabs.Count()); barH > 0 && py < barH {
			if idx := a.tabIndexAt(px); idx >= 0 {
				a.tabs.GotoTab(idx)
				a.resizePanes()
			}
			return
		}
		if btn == input.MouseLeft && !a.tabs.ActiveTab().Tree.Zoomed() {
			if d := a.dividerAt(px, py); d != nil {
				a.drag = d
				return
			}
		}

		pl, col, row, ok := a.cellAt(px, py)
		if !ok {
			return
		}
		tab := a.tabs.ActiveTab()
		if pl.PaneID != tab.Tree.ActivePaneID() {
			tab.Tree.SetActive(pl.PaneID)
			a.sched.MarkDirty()
		}
		if a.paneMode(pl.PaneID).MouseReporting() && mods&input.ModShift == 0 {
			a.writeToPane(pl.PaneID, input.EncodeMousePress(btn, col, row, mods))
			a.lastCell = [2]int{col, row}
			return
		}
		if btn == input.MouseLeft {
			a.selecting = true
			a.selectingPane = pl.PaneID
			a.withPane(pl.PaneID, func(m terminal.Model) {
				m.StartSelection(col, row)
			})
			a.sched.MarkDirty()
		}
		return
	}

	// Release.
	a.heldButton = -1
	if a.drag != nil {
		a.drag = nil
		return
	}
	if a.selecting {
		a.selecting = false
		return
	}
	if pl, col, row, ok := a.cellAt(px, py); ok {
		if a.paneMode(pl.PaneID).MouseReporting() && mods&input.ModShift == 0 {
			a.writeToPane(pl.PaneID, input.EncodeMouseRelease(btn, col, row, mods))
		}
	}
}

func (a *app) onCursorPos(_ *glfw.Window, x, y float64) {
	a.cursorX, a.cursorY = x, y
	px, py := a.framebufferCursor()

	if a.drag != nil {
		ratio := (px - a.drag.Origin) / a.drag.Span
		if a.drag.Orientation == layout.Horizontal {
			ratio = (py - a.drag.Origin) / a.drag.Span
		}
		a.tabs.SetSplitRatio(a.drag.Path, ratio)
		a.resizePanes()
		return
	}

	if a.selecting {
		if pl, col, row, ok := a.cellAt(px, py); ok && pl.PaneID == a.selectingPane {
			a.withPane(pl.PaneID, func(m terminal.Model) {
				m.UpdateSelection(col, row)
			})
			a.sched.MarkDirty()
		}
		return
	}

	if a.heldButton >= 0 {
		pl, col, row, ok := a.cellAt(px, py)
		if !ok {
			return
		}
		mode := a.paneMode(pl.PaneID)
		if (mode&(terminal.ModeMouseDrag|terminal.ModeMouseMotion)) != 0 &&
			[2]int{col, row} != a.lastCell {
			a.lastCell = [2]int{col, row}
			a.writeToPane(pl.PaneID, input.EncodeMouseMotion(a.heldButton, col, row, 0))
		}
	}
}

func (a *app) onScroll(_ *glfw.Window, _, yoff float64) {
	if yoff == 0 {
		return
	}
	px, py := a.framebufferCursor()
	pl, col, row, ok := a.cellAt(px, py)
	if !ok {
		return
	}
	up := yoff > 0
	mode := a.paneMode(pl.PaneID)
	if mode.MouseReporting() {
		a.writeToPane(pl.PaneID, input.EncodeMouseScroll(up, col, row, 0))
		return
	}
	if mode&terminal.ModeAltScreen != 0 {
		// The alt screen has no scrollback; the wheel drives arrow keys
		// instead (pagers, editors).
		key := input.KeyDown
		if up {
			key = input.KeyUp
		}
		seq := input.EncodeKey(key, 0, mode&terminal.ModeAppCursor != 0)
		for i := 0; i < scrollLinesPerTick; i++ {
			a.writeToPane(pl.PaneID, seq)
		}
		return
	}
	delta := scrollLinesPerTick
	if !up {
		delta = -delta
	}
	a.withPane(pl.PaneID, func(m terminal.Model) {
		m.ScrollDisplay(delta)
	})
	a.sched.MarkDirty()
}

// tabIndexAt maps a tab bar x position to a tab index, or -1.
func (a *app) tabIndexAt(px float32) int {
	n := a.tabs.Count()
	tabW := render.TabWidth(a.fbW, n)
	idx := int(px / tabW)
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}

func (a *app) withPane(paneID int, fn func(terminal.Model)) {
	if pane, ok := a.tabs.ActiveTab().Panes[paneID]; ok {
		pane.Handle.WithWrite(fn)
	}
}

func (a *app) paneMode(paneID int) terminal.Mode {
	pane, ok := a.tabs.ActiveTab().Panes[paneID]
	if !ok {
		return 0
	}
	var mode terminal.Mode
	pane.Handle.WithRead(func(m terminal.Model) {
		mode = m.Mode()
	})
	return mode
}

func (a *app) writeToPane(paneID int, seq []byte) {
	pane, ok := a.tabs.ActiveTab().Panes[paneID]
	if !ok || pane.Session == nil {
		return
	}
	if err := pane.Session.Write(seq); err != nil {
		log.Printf("pty write: %v", err)
	}
}

func mapMods(m glfw.ModifierKey) input.Mods {
	var mods input.Mods
	if m&glfw.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= input.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		mods |= input.ModAlt
	}
	return mods
}

func mapMouseButton(b glfw.MouseButton) int {
	switch b {
	case glfw.MouseButtonLeft:
		return input.MouseLeft
	case glfw.MouseButtonMiddle:
		return input.MouseMiddle
	case glfw.MouseButtonRight:
		return input.MouseRight
	}
	return -1
}

func mapKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter
	case glfw.KeyBackspace:
		return input.KeyBackspace
	case glfw.KeyTab:
		return input.KeyTab
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyHome:
		return input.KeyHome
	case glfw.KeyEnd:
		return input.KeyEnd
	case glfw.KeyInsert:
		return input.KeyInsert
	case glfw.KeyDelete:
		return input.KeyDelete
	case glfw.KeyPageUp:
		return input.KeyPageUp
	case glfw.KeyPageDown:
		return input.KeyPageDown
	case glfw.KeyF1:
		return input.KeyF1
	case glfw.KeyF2:
		return input.KeyF2
	case glfw.KeyF3:
		return input.KeyF3
	case glfw.KeyF4:
		return input.KeyF4
	case glfw.KeyF5:
		return input.KeyF5
	case glfw.KeyF6:
		return input.KeyF6
	case glfw.KeyF7:
		return input.KeyF7
	case glfw.KeyF8:
		return input.KeyF8
	case glfw.KeyF9:
		return input.KeyF9
	case glfw.KeyF10:
		return input.KeyF10
	case glfw.KeyF11:
		return input.KeyF11
	case glfw.KeyF12:
		return input.KeyF12
	}
	return input.KeyNone
}
