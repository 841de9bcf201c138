package dif

import "github.com/go-gl/mathgl/mgl32"

// Interior is the geometry of one interior resource: the shared point,
// normal, plane and texgen tables plus the surface records referencing
// them. Values are read-only once constructed.
type Interior struct {
	Points    []mgl32.Vec3
	Normals   []mgl32.Vec3
	Planes    []IndexedPlane
	Windings  []int32
	TexGenEqs []TexGenEq
	Surfaces  []SurfaceRecord
	Materials []string

	// LightMapIndices maps each surface to its lightmap atlas. Empty
	// when the interior carries no lightmaps.
	LightMapIndices []int
}

// HasLightMaps reports whether the interior carries lightmap data.
func (itr *Interior) HasLightMaps() bool {
	return len(itr.LightMapIndices) > 0
}

// LightMapIndex returns the lightmap atlas index of surface i, or -1
// when the interior has no lightmaps or the surface is not covered.
func (itr *Interior) LightMapIndex(i int) int {
	if i < 0 || i >= len(itr.LightMapIndices) {
		return -1
	}

	return itr.LightMapIndices[i]
}

// SurfaceNormal resolves a surface's plane reference to its outward
// normal, negating the shared normal when the flip indicator is set.
func (itr *Interior) SurfaceNormal(planeIndex int, flipped bool) (mgl32.Vec3, bool) {
	if planeIndex < 0 || planeIndex >= len(itr.Planes) {
		return mgl32.Vec3{}, false
	}

	ni := itr.Planes[planeIndex].NormalIndex
	if ni < 0 || ni >= len(itr.Normals) {
		return mgl32.Vec3{}, false
	}

	n := itr.Normals[ni]
	if flipped {
		n = n.Mul(-1)
	}

	return n, true
}
