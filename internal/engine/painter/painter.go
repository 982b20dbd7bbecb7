// Package painter draws encoded wavy rectangles as antialiased rounded
// rectangles with an edge band.
package painter

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/engine/framebuffer"
	"github.com/Faultbox/wavyrects/internal/engine/painter/shaders"
	"github.com/Faultbox/wavyrects/internal/engine/shader"
	"github.com/Faultbox/wavyrects/internal/logger"
	"github.com/Faultbox/wavyrects/internal/rects"
	"github.com/Faultbox/wavyrects/internal/style"
)

const (
	styleBlock   = "Style"
	styleBinding = 0

	// initialRects sizes the first allocation; buffers grow past it on demand.
	initialRects = 100
)

// RectPainter owns the program and buffers used to draw one set of rects.
type RectPainter struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	ubo     uint32

	rectCap    int // rects the VBO and EBO can hold
	indexCount int32

	log *zap.Logger
}

// New compiles the rect program and allocates GPU buffers.
// A GL context must be current.
func New() (*RectPainter, error) {
	program, err := shader.CompileProgram(shaders.RectVertexShader, shaders.RectFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("rect shader: %w", err)
	}
	if err := shader.BindUniformBlock(program, styleBlock, styleBinding); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	p := &RectPainter{
		program: program,
		rectCap: initialRects,
		log:     logger.Named("painter"),
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, rects.ByteSize(p.rectCap), nil, gl.DYNAMIC_DRAW)

	// Position (vec3)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(rects.VertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// UV (vec2)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(rects.VertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBytes(p.rectCap), nil, gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)

	gl.GenBuffers(1, &p.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, p.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, style.UniformSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	p.SetStyle(style.Default())

	p.log.Debug("rect painter created",
		zap.Uint32("program", program),
		zap.Int("rect_capacity", p.rectCap))
	return p, nil
}

// SetGeometry uploads vertices and indices, growing the buffers when the
// data does not fit.
func (p *RectPainter) SetGeometry(vertices []rects.Vertex, indices []uint32) {
	p.indexCount = int32(len(indices))
	if len(vertices) == 0 || len(indices) == 0 {
		p.indexCount = 0
		return
	}

	gl.BindVertexArray(p.vao)

	grown := false
	if n := growCapacity(p.rectCap, rectsFor(max(len(vertices), len(indices)))); n != p.rectCap {
		p.log.Debug("growing geometry buffers", zap.Int("from", p.rectCap), zap.Int("to", n))
		p.rectCap = n
		grown = true
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	if grown {
		gl.BufferData(gl.ARRAY_BUFFER, rects.ByteSize(p.rectCap), nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*rects.VertexSize, gl.Ptr(vertices))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	if grown {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBytes(p.rectCap), nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))

	gl.BindVertexArray(0)
}

// SetStyle uploads the uniform block for s.
func (p *RectPainter) SetStyle(s style.Style) {
	data := s.Marshal()
	gl.BindBuffer(gl.UNIFORM_BUFFER, p.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// IndexCount returns the number of indices drawn by Paint.
func (p *RectPainter) IndexCount() int32 {
	return p.indexCount
}

// Paint draws the current geometry into the bound target.
func (p *RectPainter) Paint() {
	if p.indexCount == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	gl.UseProgram(p.program)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, styleBinding, p.ubo)
	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, p.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
}

// Draw clears fb with the given color and paints into it.
func (p *RectPainter) Draw(fb *framebuffer.Framebuffer, clear [4]float32) {
	restore := fb.BindWithViewport()
	defer restore()

	framebuffer.Clear(clear)
	p.Paint()
}

// Destroy releases all GPU resources.
func (p *RectPainter) Destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	for _, buf := range []*uint32{&p.vbo, &p.ebo, &p.ubo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	p.indexCount = 0
}

// growCapacity returns the capacity needed to hold need elements: cur when
// it already fits, otherwise at least double cur.
func growCapacity(cur, need int) int {
	if need <= cur {
		return cur
	}
	return max(need, 2*cur)
}

// rectsFor returns the number of rects needed to hold n vertices or indices.
func rectsFor(n int) int {
	return (n + rects.VerticesPerRect - 1) / rects.VerticesPerRect
}

// indexBytes returns the index buffer size for count rects.
func indexBytes(count int) int {
	return rects.VertexCapacity(count) * 4
}
