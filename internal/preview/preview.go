// Package preview renders encoded rect geometry on the CPU with gogpu/gg.
//
// It decodes every triangle back into the rectangle the fragment shader
// would show, so headless snapshots match the GPU painter closely.
package preview

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/Faultbox/wavyrects/internal/rects"
	"github.com/Faultbox/wavyrects/internal/style"
)

// Renderer draws frames of a fixed pixel size.
type Renderer struct {
	Width      int
	Height     int
	Background [4]float32
}

// Box is a rotated rectangle in pixel space, y pointing down.
type Box struct {
	CX, CY float64
	W, H   float64
	Angle  float64 // radians, clockwise on screen
}

// Boxes decodes vertices (three per rect) into pixel-space boxes for a
// width x height target. Degenerate triangles are skipped.
func Boxes(vertices []rects.Vertex, width, height int) []Box {
	boxes := make([]Box, 0, len(vertices)/rects.VerticesPerRect)
	sx, sy := 0.5*float64(width), 0.5*float64(height)

	for i := 0; i+rects.VerticesPerRect <= len(vertices); i += rects.VerticesPerRect {
		origin, ex, ey, ok := rects.UVFrame(vertices[i], vertices[i+1], vertices[i+2])
		if !ok {
			continue
		}

		exX, exY := float64(ex[0])*sx, -float64(ex[1])*sy
		eyX, eyY := float64(ey[0])*sx, -float64(ey[1])*sy

		boxes = append(boxes, Box{
			CX:    (float64(origin[0]) + 1) * sx,
			CY:    (1 - float64(origin[1])) * sy,
			W:     math.Hypot(exX, exY),
			H:     math.Hypot(eyX, eyY),
			Angle: math.Atan2(exY, exX),
		})
	}
	return boxes
}

// Render draws vertices with st over the background and returns the
// context. The caller owns the context and must Close it.
func (r Renderer) Render(vertices []rects.Vertex, st style.Style) (*gg.Context, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", r.Width, r.Height)
	}
	st = st.Clamp()

	dc := gg.NewContext(r.Width, r.Height)
	dc.ClearWithColor(toRGBA(r.Background))

	lw := float64(st.LineWidthPx)
	fill, edge := toRGBA(st.Fill), toRGBA(st.Edge)

	for _, b := range Boxes(vertices, r.Width, r.Height) {
		radius := min(float64(st.CornerRadiusPx), 0.5*min(b.W, b.H))

		dc.Push()
		dc.Translate(b.CX, b.CY)
		dc.Rotate(b.Angle)

		dc.SetRGBA(fill.R, fill.G, fill.B, fill.A)
		dc.DrawRoundedRectangle(-0.5*b.W, -0.5*b.H, b.W, b.H, radius)
		if err := dc.Fill(); err != nil {
			dc.Pop()
			dc.Close()
			return nil, fmt.Errorf("fill: %w", err)
		}

		// The edge band lies inside the rectangle, so stroke an inset path.
		if lw > 0 && edge.A > 0 {
			inset := min(0.5*lw, 0.25*min(b.W, b.H))
			dc.SetRGBA(edge.R, edge.G, edge.B, edge.A)
			dc.SetLineWidth(2 * inset)
			dc.DrawRoundedRectangle(-0.5*b.W+inset, -0.5*b.H+inset, b.W-2*inset, b.H-2*inset, max(radius-inset, 0))
			if err := dc.Stroke(); err != nil {
				dc.Pop()
				dc.Close()
				return nil, fmt.Errorf("stroke: %w", err)
			}
		}
		dc.Pop()
	}
	return dc, nil
}

func toRGBA(c [4]float32) gg.RGBA {
	return gg.RGBA{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
}
