package imagegen

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsMarshal(t *testing.T) {
	b := Settings{Time: 2.5}.Marshal()
	require.Len(t, b, settingsSize)
	assert.Equal(t, float32(2.5), math.Float32frombits(binary.LittleEndian.Uint32(b)))
	assert.Equal(t, make([]byte, 12), b[4:], "std140 padding")
}

func TestOutputSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int32
		wantW int32
		wantH int32
	}{
		{"explicit", 320, 200, 320, 200},
		{"zero falls back", 0, 0, DefaultWidth, DefaultHeight},
		{"negative width only", -5, 90, DefaultWidth, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := outputSize(tt.w, tt.h)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
