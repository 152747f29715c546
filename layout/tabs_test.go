package layout

import (
	"testing"

	"github.com/pufferterm/puffer/terminal"
)

// stubSpawner builds panes with a live model but no pty session.
func stubSpawner(t *testing.T) (Spawner, *[]int) {
	t.Helper()
	spawned := &[]int{}
	return func(paneID int) (*Pane, error) {
		*spawned = append(*spawned, paneID)
		return &Pane{Handle: terminal.NewHandle(terminal.NewBasicModel(80, 24, 100))}, nil
	}, spawned
}

func newTestManager(t *testing.T) *TabManager {
	t.Helper()
	spawn, _ := stubSpawner(t)
	m, err := NewTabManager(spawn)
	if err != nil {
		t.Fatalf("NewTabManager: %v", err)
	}
	return m
}

func TestNewManagerHasOneTabOnePane(t *testing.T) {
	m := newTestManager(t)
	if m.Count() != 1 {
		t.Fatalf("tabs = %d, want 1", m.Count())
	}
	if m.ActiveIndex() != 0 {
		t.Errorf("active index = %d, want 0", m.ActiveIndex())
	}
	if m.ActivePane() == nil {
		t.Error("active pane is nil")
	}
	if n := m.ActiveTab().Tree.PaneCount(); n != 1 {
		t.Errorf("panes = %d, want 1", n)
	}
}

func TestAddTabActivatesIt(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.AddTab(); err != nil {
		t.Fatalf("AddTab: %v", err)
	}
	if m.Count() != 2 || m.ActiveIndex() != 1 {
		t.Errorf("count = %d active = %d, want 2 and 1", m.Count(), m.ActiveIndex())
	}
}

func TestTabCyclingWraps(t *testing.T) {
	m := newTestManager(t)
	m.AddTab()
	m.AddTab()

	m.NextTab()
	if m.ActiveIndex() != 0 {
		t.Errorf("NextTab wrap = %d, want 0", m.ActiveIndex())
	}
	m.PrevTab()
	if m.ActiveIndex() != 2 {
		t.Errorf("PrevTab wrap = %d, want 2", m.ActiveIndex())
	}
}

func TestGotoTabOutOfRangeIsNoop(t *testing.T) {
	m := newTestManager(t)
	m.AddTab()
	m.GotoTab(0)
	m.GotoTab(7)
	if m.ActiveIndex() != 0 {
		t.Errorf("active = %d, want 0", m.ActiveIndex())
	}
	m.GotoTab(-1)
	if m.ActiveIndex() != 0 {
		t.Errorf("active after negative = %d, want 0", m.ActiveIndex())
	}
}

func TestSplitAssignsUniquePaneIDs(t *testing.T) {
	spawn, spawned := stubSpawner(t)
	m, err := NewTabManager(spawn)
	if err != nil {
		t.Fatalf("NewTabManager: %v", err)
	}
	m.SplitActive(Vertical)
	m.SplitActive(Horizontal)
	m.AddTab()
	m.SplitActive(Vertical)

	seen := map[int]bool{}
	for _, id := range *spawned {
		if seen[id] {
			t.Fatalf("pane id %d spawned twice (all: %v)", id, *spawned)
		}
		seen[id] = true
	}
	if len(*spawned) != 5 {
		t.Errorf("spawned = %d panes, want 5", len(*spawned))
	}
}

func TestCloseActivePaneCollapsesTab(t *testing.T) {
	m := newTestManager(t)
	m.SplitActive(Vertical)
	if m.CloseActivePane() {
		t.Fatal("closing one of two panes requested exit")
	}
	if n := m.ActiveTab().Tree.PaneCount(); n != 1 {
		t.Errorf("panes = %d, want 1", n)
	}
	if m.ActivePane() == nil {
		t.Error("no active pane after close")
	}
}

func TestCloseLastPaneOfLastTabExits(t *testing.T) {
	m := newTestManager(t)
	if !m.CloseActivePane() {
		t.Error("closing the only pane of the only tab must request exit")
	}
}

func TestCloseLastPaneOfTabClosesTab(t *testing.T) {
	m := newTestManager(t)
	m.AddTab()
	if m.CloseActivePane() {
		t.Fatal("exit requested with another tab remaining")
	}
	if m.Count() != 1 {
		t.Errorf("tabs = %d, want 1", m.Count())
	}
}

func TestClosePaneByIDFindsBackgroundTab(t *testing.T) {
	m := newTestManager(t)
	firstPaneID := m.ActiveTab().Tree.ActivePaneID()
	m.AddTab()

	if m.ClosePaneByID(firstPaneID) {
		t.Fatal("exit requested with a tab remaining")
	}
	if m.Count() != 1 {
		t.Errorf("tabs = %d, want 1", m.Count())
	}
	if m.ClosePaneByID(9999) {
		t.Error("unknown pane id requested exit")
	}
}

func TestSetTitleByPaneSanitizes(t *testing.T) {
	m := newTestManager(t)
	paneID := m.ActiveTab().Tree.ActivePaneID()

	m.SetTitleByPane(paneID, "vim \x1b]0;evil\x07 notes")
	title := m.ActiveTab().Title
	for _, r := range title {
		if r < 0x20 {
			t.Fatalf("control character %q survived in title %q", r, title)
		}
	}

	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'a'
	}
	m.SetTitleByPane(paneID, string(long))
	if len(m.ActiveTab().Title) > 256 {
		t.Errorf("title length = %d, want <= 256", len(m.ActiveTab().Title))
	}
}

func TestResizeAllPropagatesToModels(t *testing.T) {
	m := newTestManager(t)
	m.SplitActive(Vertical)
	m.ResizeAll(800, 600, 10, 20)

	tab := m.ActiveTab()
	for _, pl := range tab.Tree.CalculateLayouts(800, 600) {
		pane := tab.Panes[pl.PaneID]
		var snap terminal.Snapshot
		pane.Handle.WithRead(func(mdl terminal.Model) {
			mdl.Snapshot(&snap)
		})
		wantCols := int(pl.Width / 10)
		wantRows := int(pl.Height / 20)
		if snap.Cols != wantCols || snap.Rows != wantRows {
			t.Errorf("pane %d grid = %dx%d, want %dx%d",
				pl.PaneID, snap.Cols, snap.Rows, wantCols, wantRows)
		}
	}
}
