// Package style holds the per-frame rounded-rect style record and its GPU
// uniform layout.
package style

import (
	"encoding/binary"
	"math"
)

// UniformSize is the size of the std140 uniform block in bytes:
//
//	vec4  edge;              // offset 0
//	vec4  fill;              // offset 16
//	float line_width_px;     // offset 32
//	float corner_radius_px;  // offset 36
//	                         // padded to 48
const UniformSize = 48

// Limits used by the UI sliders and by Clamp.
const (
	MaxLineWidthPx    = 10
	MaxCornerRadiusPx = 50
)

// Style is passed by value to the painter each frame. Colors are straight
// (not premultiplied) RGBA in [0,1].
type Style struct {
	Edge           [4]float32 `yaml:"edge"`
	Fill           [4]float32 `yaml:"fill"`
	LineWidthPx    float32    `yaml:"line_width_px"`
	CornerRadiusPx float32    `yaml:"corner_radius_px"`
}

// Default returns an opaque white fill with a 2 px black edge and square
// corners.
func Default() Style {
	return Style{
		Edge:           [4]float32{0, 0, 0, 1},
		Fill:           [4]float32{1, 1, 1, 1},
		LineWidthPx:    2,
		CornerRadiusPx: 0,
	}
}

// Clamp returns s with every field limited to its slider range.
func (s Style) Clamp() Style {
	for i := range s.Edge {
		s.Edge[i] = clamp(s.Edge[i], 0, 1)
		s.Fill[i] = clamp(s.Fill[i], 0, 1)
	}
	s.LineWidthPx = clamp(s.LineWidthPx, 0, MaxLineWidthPx)
	s.CornerRadiusPx = clamp(s.CornerRadiusPx, 0, MaxCornerRadiusPx)
	return s
}

// Marshal encodes s into the std140 uniform block layout.
func (s Style) Marshal() []byte {
	buf := make([]byte, UniformSize)
	for i := 0; i < 4; i++ {
		putFloat(buf[4*i:], s.Edge[i])
		putFloat(buf[16+4*i:], s.Fill[i])
	}
	putFloat(buf[32:], s.LineWidthPx)
	putFloat(buf[36:], s.CornerRadiusPx)
	return buf
}

func putFloat(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
