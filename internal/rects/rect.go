// Package rects generates animated rectangle layouts and packs them into
// single-triangle geometry for the rounded-rectangle shader.
package rects

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Period is the animation period in time units shared by the vertical wave
// and the rotation.
const Period = 7.0

// minSize is the floor on the base rectangle size so that large counts or
// narrow bounds never produce degenerate rectangles.
const minSize = 0.1

// OrientedRect is a rectangle given by its center, half extents and rotation.
type OrientedRect struct {
	Center   f32.Vec2
	HalfSize f32.Vec2
	Rotation float32 // radians, counter-clockwise
}

// Bounds is the box in target space (usually clip space) that the layout
// is generated within.
type Bounds struct {
	X0 float32 `yaml:"x0"`
	X1 float32 `yaml:"x1"`
	Y0 float32 `yaml:"y0"`
	Y1 float32 `yaml:"y1"`
}

// DefaultBounds covers most of clip space, leaving a small margin.
var DefaultBounds = Bounds{X0: -0.9, X1: 0.9, Y0: -0.9, Y1: 0.9}

// Generate returns count rectangles following the wave animation at the
// given time. The result is a pure function of the arguments.
func Generate(timeSeconds, scale float32, count uint32, b Bounds) []OrientedRect {
	return AppendRects(make([]OrientedRect, 0, count), timeSeconds, scale, count, b)
}

// AppendRects appends the layout for the given time to dst and returns the
// extended slice.
func AppendRects(dst []OrientedRect, timeSeconds, scale float32, count uint32, b Bounds) []OrientedRect {
	if count == 0 {
		return dst
	}

	steps := columnSteps(count)
	dx := (b.X1 - b.X0) / steps
	dy := b.Y1 - b.Y0
	sz := math32.Max(dx, minSize)
	half := scale * sz

	// Shared phase of the wave and the spin.
	wt := 2 * math.Pi * timeSeconds / Period

	for i := uint32(0); i < count; i++ {
		fi := float32(i)
		ph := 2 * math.Pi * fi / steps

		th := -wt
		if i&1 == 1 {
			th = wt
		}

		dst = append(dst, OrientedRect{
			Center: f32.Vec2{
				b.X0 + dx*(fi+0.5),
				b.Y0 + 0.5*dy*(1+math32.Cos(ph+wt)),
			},
			HalfSize: f32.Vec2{half, half},
			Rotation: th,
		})
	}
	return dst
}

// columnSteps returns count+1, the number of column gaps across the bounds.
// The sum is taken in float32 so it cannot wrap to zero.
func columnSteps(count uint32) float32 {
	return float32(count) + 1
}
