package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// BasicModel is a minimal line-discipline Model: printable text, CR, LF,
// BS, TAB, BEL, line wrap and scrollback. It exists so the emulator runs
// end to end and so tests exercise the real Model contract; full VT/ANSI
// interpretation is a separate engine plugged in behind the same
// interface.
type BasicModel struct {
	cols, rows int

	screen  []bline
	history []bline

	maxHistory    int
	displayOffset int

	curCol, curRow int

	mode      Mode
	selection Selection
	pending   []byte

	// OnBell fires on BEL while the pane lock is held; keep it cheap and
	// non-blocking (post an event, do not play audio inline).
	OnBell func()
}

type bcell struct {
	cluster string
	fg, bg  Color
	flags   Flags
}

type bline []bcell

// NewBasicModel creates a model with the given grid and scrollback depth.
func NewBasicModel(cols, rows, scrollback int) *BasicModel {
	m := &BasicModel{
		cols:       max(cols, 1),
		rows:       max(rows, 1),
		maxHistory: scrollback,
	}
	m.screen = make([]bline, m.rows)
	for i := range m.screen {
		m.screen[i] = make(bline, m.cols)
	}
	return m
}

// SetMode overrides the reported mode flags. BasicModel interprets no
// escape sequences, so mode changes arrive from the embedder.
func (m *BasicModel) SetMode(mode Mode) { m.mode = mode }

// Mode returns the active mode flags.
func (m *BasicModel) Mode() Mode { return m.mode }

// Resize adjusts the grid, truncating or padding lines as needed.
func (m *BasicModel) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols == m.cols && rows == m.rows {
		return
	}
	screen := make([]bline, rows)
	for i := range screen {
		screen[i] = make(bline, cols)
		if i < len(m.screen) {
			copy(screen[i], m.screen[i])
		}
	}
	m.screen = screen
	m.cols, m.rows = cols, rows
	m.curCol = min(m.curCol, cols-1)
	m.curRow = min(m.curRow, rows-1)
	m.selection = Selection{}
}

// Advance feeds one chunk of PTY output into the grid.
func (m *BasicModel) Advance(chunk []byte) {
	data := chunk
	if len(m.pending) > 0 {
		data = append(m.pending, chunk...)
		m.pending = nil
	}
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && !utf8.FullRune(data) {
			// Partial UTF-8 sequence split across chunks.
			m.pending = append(m.pending, data...)
			return
		}
		data = data[size:]
		m.put(r)
	}
}

func (m *BasicModel) put(r rune) {
	switch r {
	case '\n':
		m.lineFeed()
	case '\r':
		m.curCol = 0
	case '\b':
		if m.curCol > 0 {
			m.curCol--
		}
	case '\t':
		m.curCol = min((m.curCol/8+1)*8, m.cols-1)
	case 0x07:
		if m.OnBell != nil {
			m.OnBell()
		}
	default:
		if r < 0x20 || r == 0x7f {
			return
		}
		m.printRune(r)
	}
}

func (m *BasicModel) printRune(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		// Combining mark: attach to the previous cell's cluster.
		if m.curCol > 0 {
			c := &m.screen[m.curRow][m.curCol-1]
			c.cluster += string(r)
		}
		return
	}
	if m.curCol+w > m.cols {
		m.curCol = 0
		m.lineFeed()
	}
	cell := &m.screen[m.curRow][m.curCol]
	cell.cluster = string(r)
	cell.fg, cell.bg = DefaultFg(), DefaultBg()
	cell.flags = 0
	if w == 2 {
		cell.flags |= FlagWide
		if m.curCol+1 < m.cols {
			m.screen[m.curRow][m.curCol+1] = bcell{flags: FlagWideSpacer, fg: DefaultFg(), bg: DefaultBg()}
		}
	}
	m.curCol += w
	if m.curCol >= m.cols {
		m.curCol = 0
		m.lineFeed()
	}
}

func (m *BasicModel) lineFeed() {
	if m.curRow < m.rows-1 {
		m.curRow++
		return
	}
	// Scroll: top line moves to history, new blank line at the bottom.
	top := m.screen[0]
	m.history = append(m.history, top)
	if m.maxHistory > 0 && len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
	copy(m.screen, m.screen[1:])
	m.screen[m.rows-1] = make(bline, m.cols)
	if m.displayOffset > 0 {
		// Keep the viewport anchored while scrolled into history.
		m.displayOffset = min(m.displayOffset+1, len(m.history))
	}
}

// ScrollDisplay moves the viewport by delta lines into history.
func (m *BasicModel) ScrollDisplay(delta int) {
	m.displayOffset = min(max(m.displayOffset+delta, 0), len(m.history))
}

// StartSelection begins a selection at a viewport cell.
func (m *BasicModel) StartSelection(col, row int) {
	m.selection = Selection{Active: true, StartCol: col, StartRow: row, EndCol: col, EndRow: row}
}

// UpdateSelection extends the selection to a viewport cell.
func (m *BasicModel) UpdateSelection(col, row int) {
	if !m.selection.Active {
		return
	}
	m.selection.EndCol, m.selection.EndRow = col, row
}

// ClearSelection drops the selection.
func (m *BasicModel) ClearSelection() { m.selection = Selection{} }

// SelectionText returns the selected text with trailing blanks trimmed
// per line.
func (m *BasicModel) SelectionText() string {
	if !m.selection.Active {
		return ""
	}
	var sb strings.Builder
	first := true
	for row := 0; row < m.rows; row++ {
		line, ok := m.viewportLine(row)
		if !ok {
			continue
		}
		var lineText strings.Builder
		any := false
		for col := 0; col < m.cols; col++ {
			if !m.selection.Contains(col, row) {
				continue
			}
			any = true
			c := line[col]
			if c.flags&FlagWideSpacer != 0 {
				continue
			}
			if c.cluster == "" {
				lineText.WriteByte(' ')
			} else {
				lineText.WriteString(c.cluster)
			}
		}
		if !any {
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(strings.TrimRight(lineText.String(), " "))
	}
	return sb.String()
}

// viewportLine resolves viewport row to a history or screen line.
func (m *BasicModel) viewportLine(row int) (bline, bool) {
	if m.displayOffset > 0 {
		histIdx := len(m.history) - m.displayOffset + row
		if histIdx < len(m.history) {
			return m.history[histIdx], true
		}
		row = histIdx - len(m.history)
	}
	if row < 0 || row >= m.rows {
		return nil, false
	}
	return m.screen[row], true
}

// Snapshot copies the renderable state into snap.
func (m *BasicModel) Snapshot(snap *Snapshot) {
	snap.Reset()
	snap.Cols, snap.Rows = m.cols, m.rows
	snap.Mode = m.mode
	snap.DisplayOffset = m.displayOffset
	snap.HistorySize = len(m.history)
	snap.Selection = m.selection
	snap.Cursor = Cursor{
		Col:     m.curCol,
		Row:     m.curRow,
		Shape:   CursorBlock,
		Visible: m.displayOffset == 0,
	}
	for row := 0; row < m.rows; row++ {
		line, ok := m.viewportLine(row)
		if !ok {
			continue
		}
		for col := 0; col < m.cols; col++ {
			c := line[col]
			if c.cluster == "" && c.flags == 0 && c.bg.Kind == ColorDefaultFg {
				// Untouched cell: zero-value bg is ColorDefaultFg, which
				// only occurs before the cell is ever written.
				continue
			}
			snap.Cells = append(snap.Cells, Cell{
				Col: col, Row: row,
				Cluster: c.cluster,
				Fg:      c.fg,
				Bg:      c.bg,
				Flags:   c.flags,
			})
		}
	}
}
