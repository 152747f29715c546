package render

import (
	"errors"
	"testing"

	"github.com/pufferterm/puffer/font"
)

type fakeRasterizer struct {
	calls map[string]int
	// big clusters rasterize taller than the initial atlas to force
	// growth on demand.
	big map[string]bool
}

func newFakeRasterizer() *fakeRasterizer {
	return &fakeRasterizer{calls: map[string]int{}, big: map[string]bool{}}
}

func (f *fakeRasterizer) Rasterize(cluster string, bold, italic bool) (font.Rasterized, error) {
	f.calls[cluster]++
	if cluster == "missing" {
		return font.Rasterized{}, font.ErrNoGlyph
	}
	w, h := 4, 6
	if f.big[cluster] {
		h = InitialAtlasSize + 1
	}
	return font.Rasterized{
		Width: w, Height: h,
		Left: 1, Top: 5,
		Channels: 1,
		Pixels:   make([]byte, w*h),
	}, nil
}

func (f *fakeRasterizer) Metrics() font.Metrics {
	return font.Metrics{CellWidth: 8, CellHeight: 16, Descent: -4}
}

func newTestCache() (*GlyphCache, *fakeRasterizer, *recordBackend) {
	ras := newFakeRasterizer()
	b := &recordBackend{}
	return NewGlyphCache(ras, NewAtlas(b)), ras, b
}

func TestCacheHitReturnsSameSlot(t *testing.T) {
	c, ras, _ := newTestCache()

	g1 := c.Get("a", false, false)
	g2 := c.Get("a", false, false)
	if g1 != g2 {
		t.Errorf("cache hit returned different glyphs: %+v vs %+v", g1, g2)
	}
	if ras.calls["a"] != 1 {
		t.Errorf("rasterized %d times, want 1", ras.calls["a"])
	}
}

func TestCacheKeyIncludesStyle(t *testing.T) {
	c, ras, _ := newTestCache()

	c.Get("a", false, false)
	c.Get("a", true, false)
	c.Get("a", false, true)
	if ras.calls["a"] != 3 {
		t.Errorf("rasterized %d times, want 3 (one per style)", ras.calls["a"])
	}
}

func TestCacheInvalidatedByAtlasGrowth(t *testing.T) {
	c, ras, _ := newTestCache()

	g1 := c.Get("a", false, false)
	ras.big["huge"] = true
	c.Get("huge", false, false)
	if c.Atlas().Generation() == g1.Slot.Generation {
		t.Fatal("test setup: atlas did not grow")
	}

	g2 := c.Get("a", false, false)
	if g2.Slot.Generation != c.Atlas().Generation() {
		t.Errorf("re-fetched glyph has stale generation %d", g2.Slot.Generation)
	}
	if ras.calls["a"] != 2 {
		t.Errorf("rasterized %d times, want 2 (once per generation)", ras.calls["a"])
	}
}

func TestRasterizeFailureCachedAsEmpty(t *testing.T) {
	c, ras, _ := newTestCache()

	g := c.Get("missing", false, false)
	if !g.Empty() {
		t.Errorf("failed glyph not empty: %+v", g)
	}
	c.Get("missing", false, false)
	c.Get("missing", false, false)
	if ras.calls["missing"] != 1 {
		t.Errorf("failure re-rasterized %d times, want 1", ras.calls["missing"])
	}
}

func TestErrNoGlyphSentinel(t *testing.T) {
	ras := newFakeRasterizer()
	if _, err := ras.Rasterize("missing", false, false); !errors.Is(err, font.ErrNoGlyph) {
		t.Errorf("err = %v, want ErrNoGlyph", err)
	}
}

func TestCoverageConversion(t *testing.T) {
	alpha := font.Rasterized{Width: 2, Height: 1, Channels: 1, Pixels: []byte{0x80, 0xff}}
	got := toRGBCoverage(alpha)
	want := []byte{0x80, 0x80, 0x80, 0xff, 0xff, 0xff}
	if string(got) != string(want) {
		t.Errorf("1ch = %v, want %v", got, want)
	}

	rgbIn := font.Rasterized{Width: 1, Height: 1, Channels: 3, Pixels: []byte{1, 2, 3}}
	if got := toRGBCoverage(rgbIn); string(got) != string([]byte{1, 2, 3}) {
		t.Errorf("3ch = %v, want passthrough", got)
	}

	rgba := font.Rasterized{Width: 1, Height: 1, Channels: 4, Pixels: []byte{9, 8, 7, 0xff}}
	if got := toRGBCoverage(rgba); string(got) != string([]byte{9, 8, 7}) {
		t.Errorf("4ch = %v, want alpha dropped", got)
	}
}
