package render

import (
	"testing"

	"github.com/pufferterm/puffer/terminal"
)

func b255(c RGBA) [3]uint8 {
	return [3]uint8{
		uint8(c[0]*255 + 0.5),
		uint8(c[1]*255 + 0.5),
		uint8(c[2]*255 + 0.5),
	}
}

func TestColorCube(t *testing.T) {
	cases := []struct {
		idx  uint8
		want [3]uint8
	}{
		{16, [3]uint8{0, 0, 0}},
		{231, [3]uint8{255, 255, 255}},
		{196, [3]uint8{255, 0, 0}},   // 5,0,0
		{46, [3]uint8{0, 255, 0}},    // 0,5,0
		{21, [3]uint8{0, 0, 255}},    // 0,0,5
		{59, [3]uint8{95, 95, 95}},   // 1,1,1
		{110, [3]uint8{135, 175, 215}},
	}
	for _, c := range cases {
		if got := b255(index256(c.idx)); got != c.want {
			t.Errorf("index256(%d) = %v, want %v", c.idx, got, c.want)
		}
	}
}

func TestGrayscaleRamp(t *testing.T) {
	if got := b255(index256(232)); got != [3]uint8{8, 8, 8} {
		t.Errorf("index256(232) = %v, want 8,8,8", got)
	}
	if got := b255(index256(255)); got != [3]uint8{238, 238, 238} {
		t.Errorf("index256(255) = %v, want 238,238,238", got)
	}
}

func TestResolveAgainstTheme(t *testing.T) {
	th := Mocha()

	if got := th.Resolve(terminal.DefaultFg()); got != th.Fg {
		t.Errorf("default fg = %v, want theme fg", got)
	}
	if got := th.Resolve(terminal.DefaultBg()); got != th.Bg {
		t.Errorf("default bg = %v, want theme bg", got)
	}
	if got := th.Resolve(terminal.Indexed(1)); got != th.ANSI[1] {
		t.Errorf("ansi 1 = %v, want theme red", got)
	}
	if got := b255(th.Resolve(terminal.RGB(10, 20, 30))); got != [3]uint8{10, 20, 30} {
		t.Errorf("rgb = %v, want 10,20,30", got)
	}
	// Indices past 15 bypass the theme entirely.
	latte := Latte()
	if th.Resolve(terminal.Indexed(100)) != latte.Resolve(terminal.Indexed(100)) {
		t.Error("xterm cube differs between themes")
	}
}

func TestBrightenAndDim(t *testing.T) {
	mid := RGBA{0.4, 0.4, 0.4, 1}

	br := Brighten(mid)
	if !(br[0] > mid[0]) {
		t.Errorf("Brighten(%v) = %v, not brighter", mid, br)
	}
	dm := Dim(mid)
	if !(dm[0] < mid[0]) {
		t.Errorf("Dim(%v) = %v, not dimmer", mid, dm)
	}

	// Brighten never overflows.
	white := RGBA{1, 1, 1, 1}
	bw := Brighten(white)
	for i := 0; i < 3; i++ {
		if bw[i] > 1 {
			t.Errorf("Brighten(white)[%d] = %v > 1", i, bw[i])
		}
	}
	if br[3] != 1 || dm[3] != 1 {
		t.Error("luminance change touched alpha")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("latte").Name != "latte" {
		t.Error("latte not selected")
	}
	if ThemeByName("mocha").Name != "mocha" {
		t.Error("mocha not selected")
	}
	if ThemeByName("nope").Name != "mocha" {
		t.Error("unknown theme must fall back to mocha")
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Errorf("no-op truncate = %q", got)
	}
	if got := truncateToWidth("hello", 3); got != "hel" {
		t.Errorf("truncate = %q, want hel", got)
	}
	// Wide runes count as two columns; never split one in half.
	if got := truncateToWidth("日本語", 3); got != "日" {
		t.Errorf("wide truncate = %q, want 日", got)
	}
}

func TestTabWidth(t *testing.T) {
	if got := TabWidth(600, 3); got != 200 {
		t.Errorf("TabWidth(600, 3) = %v, want 200", got)
	}
	// Few tabs in a wide window cap at MaxTabWidth.
	if got := TabWidth(1000, 2); got != MaxTabWidth {
		t.Errorf("TabWidth(1000, 2) = %v, want %v", got, float32(MaxTabWidth))
	}
}
