package render

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const (
	// InitialAtlasSize is the edge length of the first atlas texture.
	InitialAtlasSize = 2048
	// MaxAtlasSize caps growth; insertion fails permanently past it.
	MaxAtlasSize = 8192
)

// ErrAtlasFull reports that a glyph cannot fit even at the maximum
// atlas size. Callers degrade to drawing nothing for that glyph.
var ErrAtlasFull = errors.New("render: glyph atlas full at maximum size")

// Slot is a rectangle inside an atlas texture. Generation changes every
// time the atlas is rebuilt, invalidating every slot handed out before.
type Slot struct {
	Texture    uint32
	X, Y, W, H int32
	Generation uint64
}

// UV returns normalized texture coordinates: origin and span.
func (s Slot) UV(atlasSize int32) (u, v, us, vs float32) {
	size := float32(atlasSize)
	return float32(s.X) / size, float32(s.Y) / size,
		float32(s.W) / size, float32(s.H) / size
}

// textureBackend abstracts the GPU texture operations the atlas needs,
// so packing behavior is testable off the render thread.
type textureBackend interface {
	createTexture(size int32) uint32
	upload(tex uint32, x, y, w, h int32, pixels []byte)
	deleteTexture(tex uint32)
}

// Atlas packs RGB glyph bitmaps into a single square texture using shelf
// (row) allocation. When a glyph does not fit, the atlas doubles in size,
// replacing the texture and bumping the generation; previously issued
// slots become stale and must be re-inserted.
//
// The old texture is kept alive on a retired list until ReleaseRetired,
// so instance batches flushed mid-frame can still sample it.
type Atlas struct {
	gpu        textureBackend
	tex        uint32
	size       int32
	generation uint64
	retired    []uint32

	rowExtent   int32 // x cursor within the open row
	rowBaseline int32 // y of the open row's top edge
	rowTallest  int32 // height of the tallest glyph in the open row
}

// NewAtlas allocates an atlas at the initial size.
func NewAtlas(gpu textureBackend) *Atlas {
	return &Atlas{
		gpu:  gpu,
		tex:  gpu.createTexture(InitialAtlasSize),
		size: InitialAtlasSize,
	}
}

// Generation returns the current atlas generation.
func (a *Atlas) Generation() uint64 { return a.generation }

// Texture returns the current GL texture id.
func (a *Atlas) Texture() uint32 { return a.tex }

// Size returns the current edge length in texels.
func (a *Atlas) Size() int32 { return a.size }

// Insert packs a w*h RGB bitmap (3 bytes per texel, tightly packed) and
// uploads it. Growth happens inline: the returned slot always refers to
// the texture and generation current after the call.
func (a *Atlas) Insert(w, h int32, pixels []byte) (Slot, error) {
	if w <= 0 || h <= 0 {
		return Slot{Texture: a.tex, Generation: a.generation}, nil
	}
	for {
		if w <= a.size {
			extent, baseline, tallest := a.rowExtent, a.rowBaseline, a.rowTallest
			if extent+w > a.size {
				// Open a new row under the current one.
				baseline += tallest
				extent, tallest = 0, 0
			}
			if baseline+h <= a.size {
				if h > tallest {
					tallest = h
				}
				a.rowExtent, a.rowBaseline, a.rowTallest = extent+w, baseline, tallest
				a.gpu.upload(a.tex, extent, baseline, w, h, pixels)
				return Slot{
					Texture: a.tex,
					X:       extent, Y: baseline, W: w, H: h,
					Generation: a.generation,
				}, nil
			}
		}
		if a.size >= MaxAtlasSize {
			return Slot{}, ErrAtlasFull
		}
		a.grow()
	}
}

// grow doubles the atlas, retires the old texture and starts packing
// from scratch in the new one.
func (a *Atlas) grow() {
	a.retired = append(a.retired, a.tex)
	a.size *= 2
	if a.size > MaxAtlasSize {
		a.size = MaxAtlasSize
	}
	a.tex = a.gpu.createTexture(a.size)
	a.generation++
	a.rowExtent, a.rowBaseline, a.rowTallest = 0, 0, 0
}

// ReleaseRetired deletes textures replaced by growth. Call once per
// frame, after all batches referencing them have been flushed.
func (a *Atlas) ReleaseRetired() {
	for _, tex := range a.retired {
		a.gpu.deleteTexture(tex)
	}
	a.retired = a.retired[:0]
}

// glTextures is the live backend used on the render thread.
type glTextures struct{}

func (glTextures) createTexture(size int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, size, size, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	return tex
}

func (glTextures) upload(tex uint32, x, y, w, h int32, pixels []byte) {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	// Rows are tightly packed 3-byte texels, rarely 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, w, h, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
}

func (glTextures) deleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}
