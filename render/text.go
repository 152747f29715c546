package render

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// MaxGlyphInstances is the batch capacity; the batch self-flushes when it
// fills mid-frame.
const MaxGlyphInstances = 30000

// GlyphInstance is one on-screen glyph quad: pixel rect, atlas UV rect,
// foreground color. Layout matches the instance VBO attributes.
type GlyphInstance struct {
	X, Y, W, H   float32
	U, V, US, VS float32
	R, G, B, A   float32
}

// TextBatcher accumulates glyph quads sampling one atlas texture of one
// generation and draws them in a single instanced call with dual-source
// subpixel blending.
type TextBatcher struct {
	program  uint32
	vao      uint32
	quadVBO  uint32
	instVBO  uint32
	resLoc   int32
	atlasLoc int32

	batch      []GlyphInstance
	texture    uint32
	generation uint64
}

// NewTextBatcher compiles the text pipeline and allocates its buffers.
// Requires a current GL context.
func NewTextBatcher() (*TextBatcher, error) {
	program, err := newProgram(textVertexSrc, textFragmentSrc)
	if err != nil {
		return nil, err
	}

	t := &TextBatcher{
		program:  program,
		resLoc:   uniform(program, "uResolution"),
		atlasLoc: uniform(program, "uAtlas"),
		batch:    make([]GlyphInstance, 0, MaxGlyphInstances),
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	// Unit quad, drawn as a 4-vertex triangle strip.
	quad := []float32{0, 0, 1, 0, 0, 1, 1, 1}
	gl.GenBuffers(1, &t.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	stride := int32(unsafe.Sizeof(GlyphInstance{}))
	gl.GenBuffers(1, &t.instVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.instVBO)
	gl.BufferData(gl.ARRAY_BUFFER, MaxGlyphInstances*int(stride), nil, gl.STREAM_DRAW)
	for i, offset := range []uintptr{0, 16, 32} {
		loc := uint32(i + 1)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, stride, offset)
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindVertexArray(0)
	return t, nil
}

// Len returns the number of pending instances.
func (t *TextBatcher) Len() int { return len(t.batch) }

// Generation returns the atlas generation the pending batch samples.
func (t *TextBatcher) Generation() uint64 { return t.generation }

// Add queues a glyph quad. The caller must have flushed any batch built
// against a different atlas generation; Add adopts the slot's texture and
// generation when the batch is empty.
func (t *TextBatcher) Add(inst GlyphInstance, slot Slot, width, height float32) {
	if len(t.batch) == 0 {
		t.texture = slot.Texture
		t.generation = slot.Generation
	}
	t.batch = append(t.batch, inst)
	if len(t.batch) >= MaxGlyphInstances {
		t.Flush(width, height)
	}
}

// Flush uploads and draws the pending batch. Dual-source blending lets
// the fragment shader weigh each subpixel of the destination separately.
func (t *TextBatcher) Flush(width, height float32) {
	if len(t.batch) == 0 {
		return
	}

	gl.UseProgram(t.program)
	gl.Uniform2f(t.resLoc, width, height)
	gl.Uniform1i(t.atlasLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)

	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.instVBO)
	stride := int(unsafe.Sizeof(GlyphInstance{}))
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(t.batch)*stride, gl.Ptr(t.batch))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC1_COLOR, gl.ONE_MINUS_SRC1_COLOR)
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(len(t.batch)))
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
	t.batch = t.batch[:0]
}

// Destroy releases GL resources.
func (t *TextBatcher) Destroy() {
	gl.DeleteBuffers(1, &t.quadVBO)
	gl.DeleteBuffers(1, &t.instVBO)
	gl.DeleteVertexArrays(1, &t.vao)
	gl.DeleteProgram(t.program)
}
