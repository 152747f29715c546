package layout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pufferterm/puffer/terminal"
)

// maxTitleLen bounds OSC-supplied titles.
const maxTitleLen = 256

// Pane couples a terminal handle with its PTY session. Session is nil for
// panes created without a child process (tests).
type Pane struct {
	Handle  *terminal.Handle
	Session *terminal.Session
}

// Close tears the pane down: the session signals its writer goroutine and
// waits for it before returning, so dropping the Handle afterwards is
// safe. Callers must already have detached the pane from its tree.
func (p *Pane) Close() {
	if p.Session != nil {
		p.Session.Close()
	}
}

// Tab is one named collection of panes arranged in a split tree.
type Tab struct {
	ID    uuid.UUID
	Title string
	Tree  *PaneTree
	Panes map[int]*Pane
}

// Spawner creates the pane backing a new leaf. It runs before the pane id
// is added to any tree, so a failed spawn leaves the layout untouched.
type Spawner func(paneID int) (*Pane, error)

// TabManager is the ordered tab collection. The active index is always in
// bounds; CloseActiveTab on the last tab reports true instead of leaving
// the collection empty.
type TabManager struct {
	tabs       []*Tab
	active     int
	nextPaneID int
	spawn      Spawner
}

// NewTabManager creates a manager with one initial tab holding one pane.
func NewTabManager(spawn Spawner) (*TabManager, error) {
	m := &TabManager{spawn: spawn}
	if _, err := m.AddTab(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *TabManager) spawnPane() (int, *Pane, error) {
	id := m.nextPaneID
	pane, err := m.spawn(id)
	if err != nil {
		return 0, nil, fmt.Errorf("spawn pane %d: %w", id, err)
	}
	m.nextPaneID++
	return id, pane, nil
}

// AddTab appends a tab with a single fresh pane and activates it.
func (m *TabManager) AddTab() (*Tab, error) {
	paneID, pane, err := m.spawnPane()
	if err != nil {
		return nil, err
	}
	tab := &Tab{
		ID:    uuid.New(),
		Title: fmt.Sprintf("Tab %d", len(m.tabs)+1),
		Tree:  NewPaneTree(paneID),
		Panes: map[int]*Pane{paneID: pane},
	}
	m.tabs = append(m.tabs, tab)
	m.active = len(m.tabs) - 1
	return tab, nil
}

// CloseActiveTab closes every pane in the active tab. Returns true when
// it was the last tab, signalling the caller to terminate.
func (m *TabManager) CloseActiveTab() bool {
	tab := m.tabs[m.active]
	for _, pane := range tab.Panes {
		pane.Close()
	}
	if len(m.tabs) == 1 {
		return true
	}
	m.tabs = append(m.tabs[:m.active], m.tabs[m.active+1:]...)
	if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
	return false
}

// NextTab activates the following tab, wrapping at the end.
func (m *TabManager) NextTab() {
	if len(m.tabs) > 1 {
		m.active = (m.active + 1) % len(m.tabs)
	}
}

// PrevTab activates the preceding tab, wrapping at the start.
func (m *TabManager) PrevTab() {
	if len(m.tabs) > 1 {
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
	}
}

// GotoTab activates the tab at index; out-of-range indices are a no-op.
func (m *TabManager) GotoTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.active = index
	}
}

// ActiveTab returns the active tab.
func (m *TabManager) ActiveTab() *Tab { return m.tabs[m.active] }

// ActiveIndex returns the active tab's position.
func (m *TabManager) ActiveIndex() int { return m.active }

// Count returns the number of tabs.
func (m *TabManager) Count() int { return len(m.tabs) }

// Tabs returns the ordered tabs for iteration; callers must not mutate.
func (m *TabManager) Tabs() []*Tab { return m.tabs }

// ActivePane returns the focused pane of the active tab.
func (m *TabManager) ActivePane() *Pane {
	tab := m.ActiveTab()
	return tab.Panes[tab.Tree.ActivePaneID()]
}

// SplitActive splits the focused pane of the active tab; the new pane
// becomes active.
func (m *TabManager) SplitActive(o Orientation) error {
	newID, pane, err := m.spawnPane()
	if err != nil {
		return err
	}
	tab := m.ActiveTab()
	tab.Tree.SplitActive(o, newID)
	tab.Panes[newID] = pane
	return nil
}

// CloseActivePane closes the focused pane. Teardown order: detach from
// the tree first so the render path stops addressing the id, then close
// the session (which joins the writer goroutine), then drop the handle.
// Returns true when the whole application should exit (last pane of the
// last tab).
func (m *TabManager) CloseActivePane() bool {
	tab := m.ActiveTab()
	paneID := tab.Tree.ActivePaneID()
	if tab.Tree.CloseActive() {
		return m.CloseActiveTab()
	}
	if pane, ok := tab.Panes[paneID]; ok {
		delete(tab.Panes, paneID)
		pane.Close()
	}
	return false
}

// ClosePaneByID handles a pane whose child process exited, wherever it
// lives. Returns true when the application should exit.
func (m *TabManager) ClosePaneByID(paneID int) bool {
	for ti, tab := range m.tabs {
		pane, ok := tab.Panes[paneID]
		if !ok {
			continue
		}
		tab.Tree.SetActive(paneID)
		if tab.Tree.CloseActive() {
			pane.Close()
			delete(tab.Panes, paneID)
			if len(m.tabs) == 1 {
				return true
			}
			m.tabs = append(m.tabs[:ti], m.tabs[ti+1:]...)
			if m.active >= len(m.tabs) {
				m.active = len(m.tabs) - 1
			}
			return false
		}
		delete(tab.Panes, paneID)
		pane.Close()
		return false
	}
	return false
}

// SetTitleByPane updates the owning tab's title from an OSC title event,
// stripping control characters and truncating.
func (m *TabManager) SetTitleByPane(paneID int, title string) {
	title = sanitizeTitle(title)
	for _, tab := range m.tabs {
		if _, ok := tab.Panes[paneID]; ok {
			tab.Title = title
			return
		}
	}
}

// ToggleZoom flips zoom on the active tab.
func (m *TabManager) ToggleZoom() { m.ActiveTab().Tree.ToggleZoom() }

// FocusNextPane cycles focus in the active tab.
func (m *TabManager) FocusNextPane() { m.ActiveTab().Tree.FocusNext() }

// FocusPrevPane cycles focus backward in the active tab.
func (m *TabManager) FocusPrevPane() { m.ActiveTab().Tree.FocusPrev() }

// ActiveLayouts computes pane rectangles for the active tab.
func (m *TabManager) ActiveLayouts(width, height float32) []PaneLayout {
	return m.ActiveTab().Tree.CalculateLayouts(width, height)
}

// ActiveDividers enumerates the active tab's divider lines.
func (m *TabManager) ActiveDividers(width, height float32) []Divider {
	return m.ActiveTab().Tree.CollectDividers(width, height)
}

// SetSplitRatio adjusts a divider in the active tab during a drag.
func (m *TabManager) SetSplitRatio(path []bool, ratio float32) {
	m.ActiveTab().Tree.SetRatioAt(path, ratio)
}

// ResizeAll recomputes each pane's grid from its layout rectangle and
// propagates the new size to both the model and the PTY. Applied across
// all tabs so background tabs stay current.
func (m *TabManager) ResizeAll(width, height, cellW, cellH float32) {
	for _, tab := range m.tabs {
		for _, pl := range tab.Tree.CalculateLayouts(width, height) {
			pane, ok := tab.Panes[pl.PaneID]
			if !ok {
				continue
			}
			cols := max(int(pl.Width/cellW), 2)
			rows := max(int(pl.Height/cellH), 1)
			pane.Handle.WithWrite(func(mdl terminal.Model) {
				mdl.Resize(cols, rows)
			})
			if pane.Session != nil {
				_ = pane.Session.Resize(cols, rows)
			}
		}
	}
}

func sanitizeTitle(title string) string {
	var sb strings.Builder
	n := 0
	for _, r := range title {
		if r < 0x20 || r == 0x7f {
			continue
		}
		sb.WriteRune(r)
		n++
		if n >= maxTitleLen {
			break
		}
	}
	return sb.String()
}
