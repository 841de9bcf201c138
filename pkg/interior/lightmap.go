package interior

import "github.com/go-gl/mathgl/mgl32"

// LightMapTexGen is the decoded lightmap coordinate generation of a
// surface: two axis selectors, per-axis scales and offsets.
type LightMapTexGen struct {
	AxisU, AxisV     int
	ScaleU, ScaleV   float32
	OffsetU, OffsetV float32
}

// lightMapAxisTable maps the 3-bit axis encoding to an axis pair
// (0=X, 1=Y, 2=Z).
var lightMapAxisTable = [6][2]int{
	{0, 1}, // X, Y
	{0, 2}, // X, Z
	{1, 0}, // Y, X
	{1, 2}, // Y, Z
	{2, 0}, // Z, X
	{2, 1}, // Z, Y
}

// DecodeLightMapTexGen unpacks a surface's lightmap texgen word. Layout:
// bits 0-5 hold logScaleY, bits 6-11 logScaleX and bits 13-15 the axis
// pair encoding. Out-of-table axis encodings fall back to (X, Y) and
// log scales of 32 or more decode to an identity scale; neither is an
// error in authored content.
func DecodeLightMapTexGen(finalWord uint32, xOffset, yOffset float32) LightMapTexGen {
	logScaleY := finalWord & 0x3F
	logScaleX := (finalWord >> 6) & 0x3F
	stEnc := (finalWord >> 13) & 0x7

	axisU, axisV := 0, 1
	if int(stEnc) < len(lightMapAxisTable) {
		axisU, axisV = lightMapAxisTable[stEnc][0], lightMapAxisTable[stEnc][1]
	}

	return LightMapTexGen{
		AxisU:   axisU,
		AxisV:   axisV,
		ScaleU:  invLogScale(logScaleX),
		ScaleV:  invLogScale(logScaleY),
		OffsetU: xOffset,
		OffsetV: yOffset,
	}
}

func invLogScale(logScale uint32) float32 {
	if logScale < 32 {
		return 1 / float32(uint64(1)<<logScale)
	}

	return 1
}

// UV computes the lightmap coordinate of a point, with the V coordinate
// flipped to the target atlas convention.
func (lm LightMapTexGen) UV(p mgl32.Vec3) (u, v float32) {
	u = p[lm.AxisU]*lm.ScaleU + lm.OffsetU
	v = p[lm.AxisV]*lm.ScaleV + lm.OffsetV

	return u, 1 - v
}
