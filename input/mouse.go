package input

import "fmt"

// Mouse button codes as they appear in the low bits of an SGR report.
const (
	MouseLeft   = 0
	MouseMiddle = 1
	MouseRight  = 2
)

const (
	mouseModShift = 4
	mouseModAlt   = 8
	mouseModCtrl  = 16
	mouseMotion   = 32
	mouseScrollUp = 64
)

func mouseButtonBits(btn int, mods Mods) int {
	if mods&ModShift != 0 {
		btn |= mouseModShift
	}
	if mods&ModAlt != 0 {
		btn |= mouseModAlt
	}
	if mods&ModCtrl != 0 {
		btn |= mouseModCtrl
	}
	return btn
}

// sgr formats one SGR 1006 report. Cell coordinates arrive 0-based and
// go out 1-based.
func sgr(btn, col, row int, release bool) []byte {
	final := byte('M')
	if release {
		final = 'm'
	}
	return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", btn, col+1, row+1, final))
}

// EncodeMousePress reports a button press at a cell position.
func EncodeMousePress(btn, col, row int, mods Mods) []byte {
	return sgr(mouseButtonBits(btn, mods), col, row, false)
}

// EncodeMouseRelease reports a button release at a cell position.
func EncodeMouseRelease(btn, col, row int, mods Mods) []byte {
	return sgr(mouseButtonBits(btn, mods), col, row, true)
}

// EncodeMouseMotion reports drag motion with a button held. The caller
// is responsible for only sending it when the pane's mode asks for
// motion events and the cell actually changed.
func EncodeMouseMotion(btn, col, row int, mods Mods) []byte {
	return sgr(mouseButtonBits(btn, mods)+mouseMotion, col, row, false)
}

// EncodeMouseScroll reports one wheel step: 64 up, 65 down.
func EncodeMouseScroll(up bool, col, row int, mods Mods) []byte {
	btn := mouseScrollUp
	if !up {
		btn++
	}
	return sgr(mouseButtonBits(btn, mods), col, row, false)
}
