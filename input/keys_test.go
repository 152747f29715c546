package input

import (
	"bytes"
	"testing"
)

func TestEncodeBasicKeys(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		mods Mods
		app  bool
		want string
	}{
		{"enter", KeyEnter, 0, false, "\r"},
		{"backspace", KeyBackspace, 0, false, "\x7f"},
		{"ctrl-backspace", KeyBackspace, ModCtrl, false, "\x08"},
		{"alt-backspace", KeyBackspace, ModAlt, false, "\x1b\x7f"},
		{"tab", KeyTab, 0, false, "\t"},
		{"shift-tab", KeyTab, ModShift, false, "\x1b[Z"},
		{"escape", KeyEscape, 0, false, "\x1b"},
		{"ctrl-space", KeySpace, ModCtrl, false, "\x00"},
		{"delete", KeyDelete, 0, false, "\x1b[3~"},
		{"insert", KeyInsert, 0, false, "\x1b[2~"},
		{"pgup", KeyPageUp, 0, false, "\x1b[5~"},
		{"pgdn", KeyPageDown, 0, false, "\x1b[6~"},
		{"home", KeyHome, 0, false, "\x1b[H"},
		{"end", KeyEnd, 0, false, "\x1b[F"},
		{"f1", KeyF1, 0, false, "\x1bOP"},
		{"f4", KeyF4, 0, false, "\x1bOS"},
		{"f5", KeyF5, 0, false, "\x1b[15~"},
		{"f12", KeyF12, 0, false, "\x1b[24~"},
	}
	for _, c := range cases {
		if got := EncodeKey(c.key, c.mods, c.app); !bytes.Equal(got, []byte(c.want)) {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEncodeArrowsRespectDECCKM(t *testing.T) {
	if got := EncodeKey(KeyUp, 0, false); !bytes.Equal(got, []byte("\x1b[A")) {
		t.Errorf("up normal = %q", got)
	}
	if got := EncodeKey(KeyUp, 0, true); !bytes.Equal(got, []byte("\x1bOA")) {
		t.Errorf("up app-cursor = %q", got)
	}
	if got := EncodeKey(KeyLeft, 0, true); !bytes.Equal(got, []byte("\x1bOD")) {
		t.Errorf("left app-cursor = %q", got)
	}
}

func TestEncodeModifierParams(t *testing.T) {
	cases := []struct {
		mods Mods
		want string
	}{
		{ModShift, "\x1b[1;2A"},
		{ModAlt, "\x1b[1;3A"},
		{ModShift | ModAlt, "\x1b[1;4A"},
		{ModCtrl, "\x1b[1;5A"},
		{ModCtrl | ModShift, "\x1b[1;6A"},
		{ModCtrl | ModAlt, "\x1b[1;7A"},
		{ModCtrl | ModAlt | ModShift, "\x1b[1;8A"},
	}
	for _, c := range cases {
		if got := EncodeKey(KeyUp, c.mods, false); !bytes.Equal(got, []byte(c.want)) {
			t.Errorf("mods %b: got %q, want %q", c.mods, got, c.want)
		}
	}
	// Modified arrows ignore DECCKM.
	if got := EncodeKey(KeyUp, ModCtrl, true); !bytes.Equal(got, []byte("\x1b[1;5A")) {
		t.Errorf("ctrl-up app-cursor = %q", got)
	}
	// Tilde keys take the modifier after the number.
	if got := EncodeKey(KeyDelete, ModCtrl, false); !bytes.Equal(got, []byte("\x1b[3;5~")) {
		t.Errorf("ctrl-delete = %q", got)
	}
}

func TestEncodeChar(t *testing.T) {
	if got := EncodeChar('c', ModCtrl); !bytes.Equal(got, []byte{0x03}) {
		t.Errorf("ctrl-c = %q", got)
	}
	if got := EncodeChar('Z', ModCtrl); !bytes.Equal(got, []byte{0x1a}) {
		t.Errorf("ctrl-Z = %q", got)
	}
	if got := EncodeChar('[', ModCtrl); !bytes.Equal(got, []byte{0x1b}) {
		t.Errorf("ctrl-[ = %q", got)
	}
	if got := EncodeChar('x', ModAlt); !bytes.Equal(got, []byte("\x1bx")) {
		t.Errorf("alt-x = %q", got)
	}
	if got := EncodeChar('c', ModCtrl|ModAlt); !bytes.Equal(got, []byte{0x1b, 0x03}) {
		t.Errorf("ctrl-alt-c = %q", got)
	}
	// Plain characters flow through the text path, not here.
	if got := EncodeChar('a', 0); got != nil {
		t.Errorf("plain char = %q, want nil", got)
	}
	if got := EncodeChar('a', ModShift); got != nil {
		t.Errorf("shifted char = %q, want nil", got)
	}
}

func TestEncodePasteBracketed(t *testing.T) {
	got := EncodePaste("ls -la\n", true)
	want := "\x1b[200~ls -la\n\x1b[201~"
	if string(got) != want {
		t.Errorf("bracketed = %q, want %q", got, want)
	}
}

func TestEncodePasteStripsEndMarker(t *testing.T) {
	got := EncodePaste("evil\x1b[201~rm -rf /", true)
	if bytes.Contains(got[len("\x1b[200~"):len(got)-len("\x1b[201~")], []byte("\x1b[201~")) {
		t.Errorf("payload still contains end marker: %q", got)
	}
	if string(got) != "\x1b[200~evilrm -rf /\x1b[201~" {
		t.Errorf("sanitized = %q", got)
	}
}

func TestEncodePastePlain(t *testing.T) {
	got := EncodePaste("a\nb\n", false)
	if string(got) != "a\rb\r" {
		t.Errorf("plain paste = %q, want CR line ends", got)
	}
}
