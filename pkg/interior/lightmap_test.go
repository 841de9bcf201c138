package interior

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// encodeLightMapWord packs the inverse of DecodeLightMapTexGen.
func encodeLightMapWord(stEnc, logScaleX, logScaleY uint32) uint32 {
	return logScaleY&0x3F | (logScaleX&0x3F)<<6 | (stEnc&0x7)<<13
}

func TestDecodeLightMapTexGen_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stEnc      uint32
		logScaleX  uint32
		logScaleY  uint32
		wantAxisU  int
		wantAxisV  int
		wantScaleU float32
		wantScaleV float32
	}{
		{name: "XY unit", stEnc: 0, wantAxisU: 0, wantAxisV: 1, wantScaleU: 1, wantScaleV: 1},
		{name: "XZ quarter", stEnc: 1, logScaleX: 2, logScaleY: 3, wantAxisU: 0, wantAxisV: 2, wantScaleU: 0.25, wantScaleV: 0.125},
		{name: "YX", stEnc: 2, logScaleX: 1, wantAxisU: 1, wantAxisV: 0, wantScaleU: 0.5, wantScaleV: 1},
		{name: "YZ", stEnc: 3, wantAxisU: 1, wantAxisV: 2, wantScaleU: 1, wantScaleV: 1},
		{name: "ZX", stEnc: 4, wantAxisU: 2, wantAxisV: 0, wantScaleU: 1, wantScaleV: 1},
		{name: "ZY large scale", stEnc: 5, logScaleX: 10, logScaleY: 6, wantAxisU: 2, wantAxisV: 1, wantScaleU: 1.0 / 1024, wantScaleV: 1.0 / 64},
		{name: "out-of-table axis falls back to XY", stEnc: 6, wantAxisU: 0, wantAxisV: 1, wantScaleU: 1, wantScaleV: 1},
		{name: "oversized log scale decodes to identity", stEnc: 0, logScaleX: 33, logScaleY: 40, wantAxisU: 0, wantAxisV: 1, wantScaleU: 1, wantScaleV: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			word := encodeLightMapWord(tt.stEnc, tt.logScaleX, tt.logScaleY)
			lm := DecodeLightMapTexGen(word, 0.5, 0.25)

			assert.Equal(t, tt.wantAxisU, lm.AxisU)
			assert.Equal(t, tt.wantAxisV, lm.AxisV)
			assert.InDelta(t, tt.wantScaleU, lm.ScaleU, 1e-7)
			assert.InDelta(t, tt.wantScaleV, lm.ScaleV, 1e-7)
			assert.Equal(t, float32(0.5), lm.OffsetU)
			assert.Equal(t, float32(0.25), lm.OffsetV)
		})
	}
}

func TestLightMapTexGen_UV(t *testing.T) {
	t.Parallel()

	lm := LightMapTexGen{
		AxisU:   0,
		AxisV:   1,
		ScaleU:  0.25,
		ScaleV:  0.125,
		OffsetU: 0.5,
		OffsetV: 0.25,
	}

	u, v := lm.UV(mgl32.Vec3{2, 4, 99})

	assert.InDelta(t, 2*0.25+0.5, u, 1e-6)
	// V is flipped to the atlas convention.
	assert.InDelta(t, 1-(4*0.125+0.25), v, 1e-6)
}
