package terminal

// Cell is one renderable grid cell in a snapshot.
type Cell struct {
	Col, Row int
	// Cluster is the grapheme cluster displayed in the cell. Empty for
	// background-only cells.
	Cluster string
	Fg, Bg  Color
	Flags   Flags
}

// CursorShape selects how the cursor is drawn.
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorBeam
	CursorUnderline
)

// Cursor is the renderable cursor state.
type Cursor struct {
	Col, Row int
	Shape    CursorShape
	Visible  bool
}

// Selection is a span of selected cells in viewport coordinates, inclusive
// on both ends, ordered row-major from Start to End.
type Selection struct {
	Active             bool
	StartCol, StartRow int
	EndCol, EndRow     int
}

// Contains reports whether the viewport cell (col, row) falls inside the
// selection span.
func (s Selection) Contains(col, row int) bool {
	if !s.Active {
		return false
	}
	sc, sr, ec, er := s.StartCol, s.StartRow, s.EndCol, s.EndRow
	if sr > er || (sr == er && sc > ec) {
		sc, sr, ec, er = ec, er, sc, sr
	}
	if row < sr || row > er {
		return false
	}
	if row == sr && col < sc {
		return false
	}
	if row == er && col > ec {
		return false
	}
	return true
}

// Snapshot is the batcher-ready copy of a Model's visible state. It is
// filled under the pane lock and consumed after release, so it must not
// alias Model internals.
type Snapshot struct {
	Cols, Rows int
	Cells      []Cell
	Cursor     Cursor
	Selection  Selection
	Mode       Mode
	// DisplayOffset is how many lines the viewport is scrolled into
	// history; HistorySize is the total scrollback depth.
	DisplayOffset int
	HistorySize   int
}

// Reset clears the snapshot for reuse without releasing storage.
func (s *Snapshot) Reset() {
	s.Cells = s.Cells[:0]
	s.Cursor = Cursor{}
	s.Selection = Selection{}
	s.Mode = 0
	s.DisplayOffset = 0
	s.HistorySize = 0
}
