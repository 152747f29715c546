// Package font implements the glyph rasterizer consumed by the renderer.
// It turns a glyph identity (cluster + style + size) into a coverage
// bitmap plus bearings, using x/image opentype faces; the embedded Go
// Mono family is the fallback when no font file is configured.
package font

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyph reports that the face has no glyph for a requested cluster.
// Callers substitute a fallback cell rather than failing the frame.
var ErrNoGlyph = errors.New("font: no glyph for cluster")

// Rasterized is one glyph's coverage bitmap. Channels is 1 for plain
// alpha coverage, 3 for subpixel RGB coverage, 4 for RGBA; Pixels holds
// Width*Height*Channels bytes with no row padding.
type Rasterized struct {
	Width, Height int
	// Left and Top are the horizontal bearing and the height of the
	// bitmap top above the baseline, in pixels.
	Left, Top float32
	Channels  int
	Pixels    []byte
}

// Metrics are the monospace cell metrics of a loaded face.
type Metrics struct {
	CellWidth  float32
	CellHeight float32
	// Descent is negative: the distance the baseline sits above the cell
	// bottom.
	Descent float32
}

// Rasterizer is the interface the renderer consumes. Implementations are
// only ever called from the render thread.
type Rasterizer interface {
	// Rasterize produces the coverage bitmap for one glyph identity, or
	// ErrNoGlyph when the face cannot represent it.
	Rasterize(cluster string, bold, italic bool) (Rasterized, error)
	Metrics() Metrics
}

// OpenType rasterizes through x/image opentype faces, one per style.
type OpenType struct {
	regular    font.Face
	bold       font.Face
	italic     font.Face
	boldItalic font.Face
	metrics    Metrics
}

// Load opens the font at path at the given point size and scale factor
// (device pixels per logical pixel). An empty path loads the embedded Go
// Mono family. A custom file is used for every style; missing-style
// fallback matches what a single-file font can offer.
func Load(path string, size, scale float64) (*OpenType, error) {
	var regular, bold, italic, boldItalic *sfnt.Font
	var err error

	if path == "" {
		if regular, err = opentype.Parse(gomono.TTF); err != nil {
			return nil, fmt.Errorf("parse embedded mono face: %w", err)
		}
		if bold, err = opentype.Parse(gomonobold.TTF); err != nil {
			return nil, fmt.Errorf("parse embedded bold face: %w", err)
		}
		if italic, err = opentype.Parse(gomonoitalic.TTF); err != nil {
			return nil, fmt.Errorf("parse embedded italic face: %w", err)
		}
		if boldItalic, err = opentype.Parse(gomonobolditalic.TTF); err != nil {
			return nil, fmt.Errorf("parse embedded bold-italic face: %w", err)
		}
	} else {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, fmt.Errorf("read font %q: %w", path, rerr)
		}
		if regular, err = opentype.Parse(data); err != nil {
			return nil, fmt.Errorf("parse font %q: %w", path, err)
		}
		bold, italic, boldItalic = regular, regular, regular
	}

	opts := &opentype.FaceOptions{
		Size:    size,
		DPI:     72 * scale,
		Hinting: font.HintingFull,
	}
	ot := &OpenType{}
	if ot.regular, err = opentype.NewFace(regular, opts); err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	if ot.bold, err = opentype.NewFace(bold, opts); err != nil {
		return nil, fmt.Errorf("bold face: %w", err)
	}
	if ot.italic, err = opentype.NewFace(italic, opts); err != nil {
		return nil, fmt.Errorf("italic face: %w", err)
	}
	if ot.boldItalic, err = opentype.NewFace(boldItalic, opts); err != nil {
		return nil, fmt.Errorf("bold-italic face: %w", err)
	}

	fm := ot.regular.Metrics()
	adv, ok := ot.regular.GlyphAdvance('M')
	if !ok {
		adv = fm.Height / 2
	}
	ot.metrics = Metrics{
		CellWidth:  float32(math.Ceil(f26dot6(adv))),
		CellHeight: float32(math.Ceil(f26dot6(fm.Height))),
		Descent:    -float32(f26dot6(fm.Descent)),
	}
	return ot, nil
}

// Metrics returns the cell metrics of the regular face.
func (o *OpenType) Metrics() Metrics { return o.metrics }

func (o *OpenType) face(bold, italic bool) font.Face {
	switch {
	case bold && italic:
		return o.boldItalic
	case bold:
		return o.bold
	case italic:
		return o.italic
	default:
		return o.regular
	}
}

// Rasterize draws the first rune of the cluster. Combining marks beyond
// the base rune need a shaping engine the x/image stack does not provide;
// the base rune keeps the cell legible.
func (o *OpenType) Rasterize(cluster string, bold, italic bool) (Rasterized, error) {
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError {
		return Rasterized{}, ErrNoGlyph
	}

	face := o.face(bold, italic)
	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Rasterized{}, ErrNoGlyph
	}

	w, h := dr.Dx(), dr.Dy()
	out := Rasterized{
		Width:    w,
		Height:   h,
		Left:     float32(dr.Min.X),
		Top:      float32(-dr.Min.Y),
		Channels: 1,
	}
	if w == 0 || h == 0 {
		return out, nil
	}

	out.Pixels = make([]byte, w*h)
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for y := 0; y < h; y++ {
			src := alpha.Pix[(maskp.Y+y)*alpha.Stride+maskp.X:]
			copy(out.Pixels[y*w:(y+1)*w], src[:w])
		}
		return out, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			out.Pixels[y*w+x] = byte(a >> 8)
		}
	}
	return out, nil
}

func f26dot6(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
