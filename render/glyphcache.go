package render

import (
	"log"

	"github.com/pufferterm/puffer/font"
)

type glyphKey struct {
	cluster string
	bold    bool
	italic  bool
}

// Glyph is a cached, atlas-resident rasterization. Left/Top position the
// bitmap relative to the pen: Left offsets right from the cell origin,
// Top is the distance from the baseline up to the bitmap's top edge.
type Glyph struct {
	Slot          Slot
	U, V, US, VS  float32
	Left, Top     float32
	Width, Height float32
}

// Empty reports whether the glyph has no pixels (space, or a cluster the
// font could not render).
func (g Glyph) Empty() bool { return g.Width <= 0 || g.Height <= 0 }

// GlyphCache memoizes rasterizations per (cluster, bold, italic). The
// cache belongs to exactly one rasterizer at one pixel size; changing
// font or size means building a fresh cache.
//
// Entries carry the atlas generation they were inserted under. When the
// atlas grows the whole map is dropped lazily on the next lookup, and
// glyphs re-rasterize into the new texture on demand.
type GlyphCache struct {
	ras        font.Rasterizer
	atlas      *Atlas
	cache      map[glyphKey]Glyph
	generation uint64

	metrics font.Metrics
}

// NewGlyphCache wraps a rasterizer and an atlas.
func NewGlyphCache(ras font.Rasterizer, atlas *Atlas) *GlyphCache {
	return &GlyphCache{
		ras:     ras,
		atlas:   atlas,
		cache:   make(map[glyphKey]Glyph),
		metrics: ras.Metrics(),
	}
}

// Atlas returns the backing atlas.
func (c *GlyphCache) Atlas() *Atlas { return c.atlas }

// Metrics returns the cell metrics of the underlying face.
func (c *GlyphCache) Metrics() font.Metrics { return c.metrics }

// Get returns the atlas-resident glyph for a cluster, rasterizing and
// inserting on miss. Rasterizer and atlas failures are logged once and
// produce a cached empty glyph, so a hostile stream cannot log-spam.
func (c *GlyphCache) Get(cluster string, bold, italic bool) Glyph {
	c.maybeInvalidate()

	key := glyphKey{cluster: cluster, bold: bold, italic: italic}
	if g, ok := c.cache[key]; ok {
		return g
	}

	rast, err := c.ras.Rasterize(cluster, bold, italic)
	if err != nil {
		log.Printf("render: rasterize %q: %v", cluster, err)
		c.cache[key] = Glyph{}
		return Glyph{}
	}

	slot, err := c.atlas.Insert(int32(rast.Width), int32(rast.Height), toRGBCoverage(rast))
	// Insert may have grown the atlas, invalidating everything cached
	// so far. Resync before storing the fresh entry.
	c.maybeInvalidate()
	if err != nil {
		log.Printf("render: atlas insert %q (%dx%d): %v", cluster, rast.Width, rast.Height, err)
		c.cache[key] = Glyph{}
		return Glyph{}
	}

	u, v, us, vs := slot.UV(c.atlas.Size())
	g := Glyph{
		Slot: slot,
		U:    u, V: v, US: us, VS: vs,
		Left: float32(rast.Left), Top: float32(rast.Top),
		Width: float32(rast.Width), Height: float32(rast.Height),
	}
	c.cache[key] = g
	return g
}

func (c *GlyphCache) maybeInvalidate() {
	if gen := c.atlas.Generation(); gen != c.generation {
		clear(c.cache)
		c.generation = gen
	}
}

// toRGBCoverage converts a rasterized bitmap to the 3-channel per-subpixel
// coverage layout the atlas stores. Single-channel alpha replicates to all
// three subpixels; 3-channel passes through; 4-channel drops alpha.
func toRGBCoverage(r font.Rasterized) []byte {
	n := r.Width * r.Height
	switch r.Channels {
	case 3:
		return r.Pixels
	case 1:
		out := make([]byte, n*3)
		for i := 0; i < n; i++ {
			a := r.Pixels[i]
			out[i*3+0] = a
			out[i*3+1] = a
			out[i*3+2] = a
		}
		return out
	case 4:
		out := make([]byte, n*3)
		for i := 0; i < n; i++ {
			out[i*3+0] = r.Pixels[i*4+0]
			out[i*3+1] = r.Pixels[i*4+1]
			out[i*3+2] = r.Pixels[i*4+2]
		}
		return out
	}
	return make([]byte, n*3)
}
