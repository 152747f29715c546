// Package input translates window events into the byte sequences a
// terminal application expects on its pty. It is deliberately free of
// any windowing dependency so the encoding tables are testable; the
// event loop maps its toolkit's key codes onto Key values.
package input

import "strings"

// Mods is the chord state relevant to escape encoding.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
)

// Key names the non-text keys that produce escape sequences.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// xterm modifier parameter: 1 plus shift=1, alt=2, ctrl=4.
func modifierParam(mods Mods) byte {
	p := byte(1)
	if mods&ModShift != 0 {
		p += 1
	}
	if mods&ModAlt != 0 {
		p += 2
	}
	if mods&ModCtrl != 0 {
		p += 4
	}
	return p
}

// csi builds "ESC [ 1 ; m <final>" for cursor-style keys with modifiers.
func csiMod(mods Mods, final byte) []byte {
	return []byte{0x1b, '[', '1', ';', '0' + modifierParam(mods), final}
}

// csiTilde builds "ESC [ n ~" or "ESC [ n ; m ~".
func csiTilde(n string, mods Mods) []byte {
	seq := "\x1b[" + n
	if mods != 0 {
		seq += ";" + string('0'+modifierParam(mods))
	}
	return []byte(seq + "~")
}

// cursorKey encodes an arrow or Home/End: CSI normally, SS3 when the
// application cursor mode (DECCKM) is set, CSI-with-modifier when any
// modifier is held.
func cursorKey(final byte, mods Mods, appCursor bool) []byte {
	if mods != 0 {
		return csiMod(mods, final)
	}
	if appCursor {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// EncodeKey returns the pty bytes for a named key press, or nil when the
// key produces nothing (the text callback covers it). appCursor is the
// pane's DECCKM state.
func EncodeKey(key Key, mods Mods, appCursor bool) []byte {
	switch key {
	case KeyEnter:
		if mods&ModAlt != 0 {
			return []byte{0x1b, '\r'}
		}
		return []byte{'\r'}
	case KeyBackspace:
		switch {
		case mods&ModAlt != 0:
			return []byte{0x1b, 0x7f}
		case mods&ModCtrl != 0:
			return []byte{0x08}
		default:
			return []byte{0x7f}
		}
	case KeyTab:
		if mods&ModShift != 0 {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case KeyEscape:
		return []byte{0x1b}
	case KeySpace:
		if mods&ModCtrl != 0 {
			return []byte{0x00}
		}
		return nil
	case KeyUp:
		return cursorKey('A', mods, appCursor)
	case KeyDown:
		return cursorKey('B', mods, appCursor)
	case KeyRight:
		return cursorKey('C', mods, appCursor)
	case KeyLeft:
		return cursorKey('D', mods, appCursor)
	case KeyHome:
		return cursorKey('H', mods, appCursor)
	case KeyEnd:
		return cursorKey('F', mods, appCursor)
	case KeyInsert:
		return csiTilde("2", mods)
	case KeyDelete:
		return csiTilde("3", mods)
	case KeyPageUp:
		return csiTilde("5", mods)
	case KeyPageDown:
		return csiTilde("6", mods)
	case KeyF1, KeyF2, KeyF3, KeyF4:
		final := byte('P' + key - KeyF1)
		if mods != 0 {
			return csiMod(mods, final)
		}
		return []byte{0x1b, 'O', final}
	case KeyF5:
		return csiTilde("15", mods)
	case KeyF6:
		return csiTilde("17", mods)
	case KeyF7:
		return csiTilde("18", mods)
	case KeyF8:
		return csiTilde("19", mods)
	case KeyF9:
		return csiTilde("20", mods)
	case KeyF10:
		return csiTilde("21", mods)
	case KeyF11:
		return csiTilde("23", mods)
	case KeyF12:
		return csiTilde("24", mods)
	}
	return nil
}

// EncodeChar returns the pty bytes for a printable key pressed with Ctrl
// or Alt held. Plain and shifted text arrives through the window's text
// callback instead, so this returns nil when neither is down.
func EncodeChar(r rune, mods Mods) []byte {
	if mods&(ModCtrl|ModAlt) == 0 {
		return nil
	}
	if mods&ModCtrl != 0 {
		if b, ok := ctrlByte(r); ok {
			if mods&ModAlt != 0 {
				return []byte{0x1b, b}
			}
			return []byte{b}
		}
		return nil
	}
	// Alt alone prefixes the character with ESC.
	return append([]byte{0x1b}, []byte(string(r))...)
}

func ctrlByte(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r-'a') + 1, true
	case r >= 'A' && r <= 'Z':
		return byte(r-'A') + 1, true
	}
	switch r {
	case '@', ' ':
		return 0x00, true
	case '[':
		return 0x1b, true
	case '\\':
		return 0x1c, true
	case ']':
		return 0x1d, true
	case '^':
		return 0x1e, true
	case '_', '/':
		return 0x1f, true
	case '?':
		return 0x7f, true
	}
	return 0, false
}

// EncodePaste prepares clipboard text for the pty. In bracketed mode the
// payload is wrapped in ESC[200~ / ESC[201~ after stripping any embedded
// end marker, so pasted content cannot break out of the bracket. Outside
// bracketed mode newlines become carriage returns.
func EncodePaste(data string, bracketed bool) []byte {
	if bracketed {
		clean := strings.ReplaceAll(data, "\x1b[201~", "")
		return []byte("\x1b[200~" + clean + "\x1b[201~")
	}
	return []byte(strings.ReplaceAll(data, "\n", "\r"))
}
