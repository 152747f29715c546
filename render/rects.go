package render

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// MaxRectInstances is the rect batch capacity.
const MaxRectInstances = 10000

// RectInstance is one solid quad: pixel rect plus fill color.
type RectInstance struct {
	X, Y, W, H float32
	R, G, B, A float32
}

// RectBatcher accumulates solid quads (cell backgrounds, cursors,
// dividers, selection overlays) and draws them in one instanced call
// with ordinary alpha blending.
type RectBatcher struct {
	program uint32
	vao     uint32
	quadVBO uint32
	instVBO uint32
	resLoc  int32

	batch []RectInstance
}

// NewRectBatcher compiles the rect pipeline and allocates its buffers.
// Requires a current GL context.
func NewRectBatcher() (*RectBatcher, error) {
	program, err := newProgram(rectVertexSrc, rectFragmentSrc)
	if err != nil {
		return nil, err
	}

	r := &RectBatcher{
		program: program,
		resLoc:  uniform(program, "uResolution"),
		batch:   make([]RectInstance, 0, MaxRectInstances),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	quad := []float32{0, 0, 1, 0, 0, 1, 1, 1}
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	stride := int32(unsafe.Sizeof(RectInstance{}))
	gl.GenBuffers(1, &r.instVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instVBO)
	gl.BufferData(gl.ARRAY_BUFFER, MaxRectInstances*int(stride), nil, gl.STREAM_DRAW)
	for i, offset := range []uintptr{0, 16} {
		loc := uint32(i + 1)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, stride, offset)
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindVertexArray(0)
	return r, nil
}

// Len returns the number of pending instances.
func (r *RectBatcher) Len() int { return len(r.batch) }

// Add queues a quad, self-flushing when the batch fills.
func (r *RectBatcher) Add(inst RectInstance, width, height float32) {
	r.batch = append(r.batch, inst)
	if len(r.batch) >= MaxRectInstances {
		r.Flush(width, height)
	}
}

// Flush uploads and draws the pending batch.
func (r *RectBatcher) Flush(width, height float32) {
	if len(r.batch) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.Uniform2f(r.resLoc, width, height)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instVBO)
	stride := int(unsafe.Sizeof(RectInstance{}))
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.batch)*stride, gl.Ptr(r.batch))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(len(r.batch)))
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
	r.batch = r.batch[:0]
}

// Destroy releases GL resources.
func (r *RectBatcher) Destroy() {
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteBuffers(1, &r.instVBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
