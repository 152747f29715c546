package font

import (
	"errors"
	"testing"
)

func loadEmbedded(t *testing.T) *OpenType {
	t.Helper()
	ras, err := Load("", 14, 1.0)
	if err != nil {
		t.Fatalf("Load embedded: %v", err)
	}
	return ras
}

func TestMetricsSane(t *testing.T) {
	ras := loadEmbedded(t)
	m := ras.Metrics()
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		t.Fatalf("cell = %vx%v", m.CellWidth, m.CellHeight)
	}
	if m.Descent >= 0 {
		t.Errorf("descent = %v, want negative (baseline above cell bottom)", m.Descent)
	}
	if -m.Descent >= m.CellHeight {
		t.Errorf("descent %v larger than cell height %v", m.Descent, m.CellHeight)
	}
}

func TestScaleGrowsMetrics(t *testing.T) {
	base := loadEmbedded(t)
	big, err := Load("", 14, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if big.Metrics().CellWidth <= base.Metrics().CellWidth {
		t.Errorf("2x scale cell width %v not larger than 1x %v",
			big.Metrics().CellWidth, base.Metrics().CellWidth)
	}
}

func TestRasterizeVisibleGlyph(t *testing.T) {
	ras := loadEmbedded(t)
	g, err := ras.Rasterize("A", false, false)
	if err != nil {
		t.Fatalf("Rasterize A: %v", err)
	}
	if g.Width <= 0 || g.Height <= 0 {
		t.Fatalf("glyph dims %dx%d", g.Width, g.Height)
	}
	if g.Channels != 1 {
		t.Errorf("channels = %d, want 1", g.Channels)
	}
	if len(g.Pixels) != g.Width*g.Height {
		t.Fatalf("pixels = %d bytes for %dx%d", len(g.Pixels), g.Width, g.Height)
	}
	any := false
	for _, p := range g.Pixels {
		if p != 0 {
			any = true
			break
		}
	}
	if !any {
		t.Error("glyph bitmap entirely blank")
	}
	if g.Top <= 0 {
		t.Errorf("Top = %v, want above baseline", g.Top)
	}
}

func TestRasterizeStylesDiffer(t *testing.T) {
	ras := loadEmbedded(t)
	reg, err := ras.Rasterize("g", false, false)
	if err != nil {
		t.Fatal(err)
	}
	bold, err := ras.Rasterize("g", true, false)
	if err != nil {
		t.Fatal(err)
	}
	if reg.Width == bold.Width && reg.Height == bold.Height &&
		string(reg.Pixels) == string(bold.Pixels) {
		t.Error("bold bitmap identical to regular")
	}
}

func TestRasterizeInvalidCluster(t *testing.T) {
	ras := loadEmbedded(t)
	if _, err := ras.Rasterize("", false, false); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("empty cluster err = %v, want ErrNoGlyph", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/face.ttf", 14, 1.0); err == nil {
		t.Fatal("missing font file did not error")
	}
}
