package style

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestMarshalLayout(t *testing.T) {
	s := Style{
		Edge:           [4]float32{0.1, 0.2, 0.3, 0.4},
		Fill:           [4]float32{0.5, 0.6, 0.7, 0.8},
		LineWidthPx:    3.5,
		CornerRadiusPx: 12,
	}
	b := s.Marshal()
	require.Len(t, b, UniformSize)

	for i := 0; i < 4; i++ {
		assert.Equal(t, s.Edge[i], floatAt(b, 4*i), "edge[%d]", i)
		assert.Equal(t, s.Fill[i], floatAt(b, 16+4*i), "fill[%d]", i)
	}
	assert.Equal(t, float32(3.5), floatAt(b, 32))
	assert.Equal(t, float32(12), floatAt(b, 36))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, b[40:48], "std140 padding")
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, [4]float32{0, 0, 0, 1}, s.Edge)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, s.Fill)
	assert.Equal(t, float32(2), s.LineWidthPx)
	assert.Equal(t, float32(0), s.CornerRadiusPx)
}

func TestClamp(t *testing.T) {
	s := Style{
		Edge:           [4]float32{-1, 0.5, 2, 1},
		Fill:           [4]float32{0, float32(math.NaN()), 1, 1.5},
		LineWidthPx:    40,
		CornerRadiusPx: -3,
	}.Clamp()

	assert.Equal(t, [4]float32{0, 0.5, 1, 1}, s.Edge)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, s.Fill)
	assert.Equal(t, float32(MaxLineWidthPx), s.LineWidthPx)
	assert.Equal(t, float32(0), s.CornerRadiusPx)
}
