package preview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/Faultbox/wavyrects/internal/rects"
	"github.com/Faultbox/wavyrects/internal/style"
)

func TestBoxesAxisAligned(t *testing.T) {
	v, _ := rects.Encode([]rects.OrientedRect{{
		Center:   f32.Vec2{0, 0},
		HalfSize: f32.Vec2{1, 1},
	}})

	boxes := Boxes(v, 100, 100)
	require.Len(t, boxes, 1)
	b := boxes[0]
	assert.InDelta(t, 50, b.CX, 1e-4)
	assert.InDelta(t, 50, b.CY, 1e-4)
	assert.InDelta(t, 50, b.W, 1e-4)
	assert.InDelta(t, 50, b.H, 1e-4)
	assert.InDelta(t, 0, b.Angle, 1e-6)
}

func TestBoxesFollowRotationAndFlip(t *testing.T) {
	v, _ := rects.Encode([]rects.OrientedRect{{
		Center:   f32.Vec2{0.5, 0.5},
		HalfSize: f32.Vec2{0.4, 0.4},
		Rotation: math.Pi / 6,
	}})

	boxes := Boxes(v, 200, 100)
	require.Len(t, boxes, 1)
	b := boxes[0]
	assert.InDelta(t, 150, b.CX, 1e-3)
	assert.InDelta(t, 25, b.CY, 1e-3, "clip y up maps to pixel y down")
	// Counter-clockwise in clip space is clockwise on screen.
	assert.Less(t, b.Angle, 0.0)
}

func TestBoxesSkipsDegenerate(t *testing.T) {
	v := make([]rects.Vertex, 3)
	assert.Empty(t, Boxes(v, 10, 10))
	assert.Empty(t, Boxes(nil, 10, 10))
}

func TestRenderFillsCenterKeepsBackground(t *testing.T) {
	v, _ := rects.Encode([]rects.OrientedRect{{
		Center:   f32.Vec2{0, 0},
		HalfSize: f32.Vec2{1, 1},
	}})

	r := Renderer{Width: 64, Height: 64, Background: [4]float32{1, 0, 0, 1}}
	st := style.Default()
	st.Fill = [4]float32{0, 0, 1, 1}

	dc, err := r.Render(v, st)
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	cr, _, cb, _ := img.At(32, 32).RGBA()
	assert.Greater(t, cb, uint32(0xf000), "center should be fill blue")
	assert.Less(t, cr, uint32(0x1000))

	br, _, bb, _ := img.At(2, 2).RGBA()
	assert.Greater(t, br, uint32(0xf000), "corner should stay background red")
	assert.Less(t, bb, uint32(0x1000))
}

func TestRenderRejectsEmptySize(t *testing.T) {
	_, err := Renderer{}.Render(nil, style.Default())
	assert.Error(t, err)
}
