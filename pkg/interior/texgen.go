package interior

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/RandomityGuy/io-dif/pkg/dif"
)

// ProjectPoint evaluates a texture-generation equation at p. V is
// negated relative to the raw plane evaluation; that sign flip is the
// engine's UV convention for interior surfaces, verified against
// round-trips of known-good files.
func ProjectPoint(p mgl32.Vec3, eq dif.TexGenEq) (u, v float32) {
	return eq.PlaneX.Eval(p), -eq.PlaneY.Eval(p)
}

// BrushTexGen is the texture generation of a brush face: two projection
// planes plus an axis rotation and per-axis texel scale.
type BrushTexGen struct {
	PlaneX      dif.Plane
	PlaneY      dif.Plane
	RotationDeg float32
	ScaleU      float32
	ScaleV      float32
}

// ProjectPointRotated computes the UV of p under a brush texgen. The
// projection axes are the texgen plane normals, rotated about their
// cross product when a rotation is set; the result is scaled to the
// texture's 32-unit texel grid and shifted by the plane distances.
// A zero texel scale short-circuits to (0,0).
func ProjectPointRotated(p mgl32.Vec3, tg BrushTexGen, texSizeU, texSizeV float32) (u, v float32) {
	if tg.ScaleU*tg.ScaleV == 0 {
		return 0, 0
	}

	axisU, axisV := tg.axes()

	u = p.Dot(axisU) * (1 / tg.ScaleU) * (32 / texSizeU)
	v = p.Dot(axisV) * (1 / -tg.ScaleV) * (32 / texSizeV)

	u += tg.PlaneX.D / texSizeU
	v += -tg.PlaneY.D / texSizeV

	return u, v
}

func (tg BrushTexGen) axes() (mgl32.Vec3, mgl32.Vec3) {
	axisU := tg.PlaneX.Normal()
	axisV := tg.PlaneY.Normal()

	if math32.Mod(tg.RotationDeg, 360) == 0 {
		return axisU, axisV
	}

	up := axisU.Cross(axisV)
	if up.Len() == 0 {
		return axisU, axisV
	}

	rot := mgl32.QuatRotate(mgl32.DegToRad(tg.RotationDeg), up.Normalize())

	return rot.Rotate(axisU), rot.Rotate(axisV)
}
