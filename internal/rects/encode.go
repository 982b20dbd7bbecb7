package rects

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vertex is the GPU vertex format for the rounded-rect pipeline.
// Location 0 is the position, location 1 the rect-local uv.
type Vertex struct {
	Position f32.Vec3
	UV       f32.Vec2
}

// VertexSize is the stride of Vertex in bytes.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// VerticesPerRect is the number of vertices emitted for each rectangle.
const VerticesPerRect = 3

// VertexCapacity returns the number of vertices (and indices) needed to
// encode count rectangles.
func VertexCapacity(count int) int {
	return VerticesPerRect * count
}

// ByteSize returns the vertex buffer size in bytes for count rectangles.
func ByteSize(count int) int {
	return VertexCapacity(count) * VertexSize
}

// Encode packs each rectangle into one right triangle. Vertices are not
// shared between rectangles, so the index list is the identity 0..3n-1.
func Encode(rects []OrientedRect) ([]Vertex, []uint32) {
	var m Mesh
	m.Encode(rects)
	return m.Vertices, m.Indices
}

// Mesh holds encoded geometry and reuses its storage between frames.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Reset empties the mesh, keeping the allocated storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Encode replaces the mesh contents with the encoding of rects.
func (m *Mesh) Encode(rects []OrientedRect) {
	m.Reset()
	n := VertexCapacity(len(rects))
	if cap(m.Vertices) < n {
		m.Vertices = make([]Vertex, 0, n)
		m.Indices = make([]uint32, 0, n)
	}
	for _, r := range rects {
		base := uint32(len(m.Vertices))
		m.Vertices = appendTriangle(m.Vertices, r)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
}

// appendTriangle emits the A, B, C vertices of r.
//
// The visible region lands on r.Center with size r.HalfSize only when the
// rect is square (HalfSize[0] == HalfSize[1]), which is all Generate emits.
// For other sizes the uv square is shifted and stretched.
//
// The triangle's legs run along the rectangle's top and left edges, and the
// uv field is affine over it so that uv in [-0.5,0.5]^2 is exactly the
// visible rectangle. The fragment stage discards everything else.
func appendTriangle(dst []Vertex, r OrientedRect) []Vertex {
	hw, hh := r.HalfSize[0], r.HalfSize[1]
	side := hw + hh
	s, c := math32.Sincos(r.Rotation)

	local := [VerticesPerRect]Vertex{
		{ // A: top-left
			Position: f32.Vec3{-hw, -hh, 0},
			UV:       f32.Vec2{-0.5, -0.5},
		},
		{ // B: along the top edge
			Position: f32.Vec3{2*hh - hw, -hh, 0},
			UV:       f32.Vec2{-0.5 + side/hh, -0.5},
		},
		{ // C: along the left edge
			Position: f32.Vec3{-hw, 2*hw - hh, 0},
			UV:       f32.Vec2{-0.5, -0.5 + side/hw},
		},
	}

	for _, v := range local {
		x := v.Position[0] + 0.5*hw
		y := v.Position[1] + 0.5*hh
		v.Position[0] = x*c - y*s + r.Center[0]
		v.Position[1] = x*s + y*c + r.Center[1]
		dst = append(dst, v)
	}
	return dst
}

// UVFrame inverts the affine uv map of one encoded triangle. It returns the
// position where uv is (0,0) and the position change for a unit step in u
// and in v. ok is false when the triangle is degenerate in uv space.
//
// origin equals the rect center only for square rects; see appendTriangle.
func UVFrame(a, b, c Vertex) (origin, ex, ey f32.Vec2, ok bool) {
	du1, dv1 := b.UV[0]-a.UV[0], b.UV[1]-a.UV[1]
	du2, dv2 := c.UV[0]-a.UV[0], c.UV[1]-a.UV[1]
	det := du1*dv2 - du2*dv1
	if d := float64(det); d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return origin, ex, ey, false
	}

	dp1 := f32.Vec2{b.Position[0] - a.Position[0], b.Position[1] - a.Position[1]}
	dp2 := f32.Vec2{c.Position[0] - a.Position[0], c.Position[1] - a.Position[1]}

	// Solve [dp1 dp2] = [ex ey] * [[du1 du2] [dv1 dv2]].
	inv := 1 / det
	for k := 0; k < 2; k++ {
		ex[k] = (dp1[k]*dv2 - dp2[k]*dv1) * inv
		ey[k] = (dp2[k]*du1 - dp1[k]*du2) * inv
	}

	for k := 0; k < 2; k++ {
		origin[k] = a.Position[k] - a.UV[0]*ex[k] - a.UV[1]*ey[k]
	}
	return origin, ex, ey, true
}
