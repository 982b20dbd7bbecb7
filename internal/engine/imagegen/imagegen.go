// Package imagegen renders a one-shot procedural image into a texture that
// can be shown as an ImGui image.
package imagegen

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavyrects/internal/engine/framebuffer"
	"github.com/Faultbox/wavyrects/internal/engine/imagegen/shaders"
	"github.com/Faultbox/wavyrects/internal/engine/shader"
	"github.com/Faultbox/wavyrects/internal/logger"
)

// Default output size, used when New is given a non-positive dimension.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

const (
	settingsBlock   = "Settings"
	settingsBinding = 1

	// settingsSize is the std140 size of the Settings block.
	settingsSize = 16
)

// Settings parameterize the generated image.
type Settings struct {
	Time float32 `yaml:"time"`
}

// Marshal encodes s into the std140 uniform block layout.
func (s Settings) Marshal() []byte {
	buf := make([]byte, settingsSize)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(s.Time))
	return buf
}

// Generator owns the output texture and the program that fills it.
type Generator struct {
	program uint32
	vao     uint32
	ubo     uint32
	fb      *framebuffer.Framebuffer

	settings  Settings
	generated bool

	log *zap.Logger
}

// New creates a generator with a width x height RGBA8 output.
// A GL context must be current.
func New(width, height int32) (*Generator, error) {
	width, height = outputSize(width, height)

	program, err := shader.CompileProgram(shaders.FullscreenVertexShader, shaders.PatternFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("image shader: %w", err)
	}
	if err := shader.BindUniformBlock(program, settingsBlock, settingsBinding); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	fb, err := framebuffer.New(width, height, framebuffer.Options{})
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("image target: %w", err)
	}

	g := &Generator{
		program: program,
		fb:      fb,
		log:     logger.Named("imagegen"),
	}

	// The vertex stage needs no attributes, but core profile requires a VAO.
	gl.GenVertexArrays(1, &g.vao)

	gl.GenBuffers(1, &g.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, g.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, settingsSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	g.Update(Settings{})
	return g, nil
}

// outputSize replaces non-positive dimensions with the defaults.
func outputSize(width, height int32) (int32, int32) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// Update uploads new settings. The texture changes on the next Generate.
func (g *Generator) Update(s Settings) {
	g.settings = s
	data := s.Marshal()
	gl.BindBuffer(gl.UNIFORM_BUFFER, g.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Generate renders the image once into the output texture.
func (g *Generator) Generate() {
	restore := g.fb.BindWithViewport()
	defer restore()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(g.program)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, settingsBinding, g.ubo)
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	g.generated = true
	w, h := g.fb.Size()
	g.log.Debug("image generated",
		zap.Int32("width", w),
		zap.Int32("height", h),
		zap.Float32("time", g.settings.Time))
}

// Generated reports whether Generate has run at least once.
func (g *Generator) Generated() bool {
	return g.generated
}

// Texture returns the output texture ID.
func (g *Generator) Texture() uint32 {
	return g.fb.ColorTexture()
}

// Size returns the output dimensions.
func (g *Generator) Size() (width, height int32) {
	return g.fb.Size()
}

// ReadPixels returns the output as RGBA rows, bottom row first.
func (g *Generator) ReadPixels() []byte {
	return g.fb.ReadPixels()
}

// Destroy releases all GPU resources.
func (g *Generator) Destroy() {
	if g.fb != nil {
		g.fb.Destroy()
		g.fb = nil
	}
	if g.ubo != 0 {
		gl.DeleteBuffers(1, &g.ubo)
		g.ubo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.program != 0 {
		gl.DeleteProgram(g.program)
		g.program = 0
	}
}
