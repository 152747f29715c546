package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "puffer.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file is not an error, got %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
font_size = 18.0
theme = "latte"
scrollback = 500
bell_enabled = false
shell = "/bin/zsh"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FontSize != 18 || cfg.Theme != "latte" || cfg.Scrollback != 500 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BellEnabled {
		t.Error("bell_enabled = true, want false")
	}
	if cfg.Shell != "/bin/zsh" {
		t.Errorf("shell = %q", cfg.Shell)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), `theme = "latte"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.FontSize != Default().FontSize || !cfg.BellEnabled {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "font_size = {{{")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed file did not error")
	}
}

func TestClamping(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
font_size = 500.0
scrollback = -5
theme = "solarizzed"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FontSize != 72 {
		t.Errorf("font_size = %v, want clamped to 72", cfg.FontSize)
	}
	if cfg.Scrollback != 0 {
		t.Errorf("scrollback = %d, want clamped to 0", cfg.Scrollback)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("theme = %q, want fallback mocha", cfg.Theme)
	}
}

func TestWatchFiresOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, `theme = "mocha"`)

	changed := make(chan struct{}, 8)
	w, err := Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeFile(t, dir, `theme = "latte"`)
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after rewrite")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, `theme = "mocha"`)

	changed := make(chan struct{}, 8)
	w, err := Watch(path, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("notified for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
