// Package dif holds the logical records of the interior scene format as
// consumed by the reconstruction engine. Byte-level container decoding is
// owned by the external native build service; these types mirror the
// fields of an already-parsed record.
package dif

import "github.com/go-gl/mathgl/mgl32"

// Plane is an oriented plane stored as its normal and signed distance.
// Evaluating it at a point yields the point's signed distance from the
// plane, which is also how texture-generation equations produce UVs.
type Plane struct {
	X, Y, Z float32
	D       float32
}

// Normal returns the plane normal.
func (p Plane) Normal() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Eval evaluates the plane's signed-distance function at pt.
func (p Plane) Eval(pt mgl32.Vec3) float32 {
	return pt.X()*p.X + pt.Y()*p.Y + pt.Z()*p.Z + p.D
}

// TexGenEq is a pair of independent projection planes producing a (u,v)
// coordinate for any 3D point.
type TexGenEq struct {
	PlaneX Plane
	PlaneY Plane
}

// IndexedPlane is an interior plane record. Interiors share normals
// through a separate table, so the record stores an index plus distance.
type IndexedPlane struct {
	NormalIndex int
	Distance    float32
}
