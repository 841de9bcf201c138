// Package interior reconstructs renderable geometry from parsed interior
// records: oriented polygon loops with per-vertex UVs, material slot
// assignment and lightmap coordinate generation.
package interior

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/RandomityGuy/io-dif/pkg/dif"
)

// MaterialSlot is one mesh material: a texture combined with a lightmap
// atlas. Two surfaces sharing a texture but lit from different atlases
// land in different slots so their UV sets stay separate.
type MaterialSlot struct {
	Material      string
	LightMapIndex int
	Flags         dif.SurfaceFlags
}

// Face is one reconstructed surface polygon.
type Face struct {
	Indices       []int32
	Normal        mgl32.Vec3
	Slot          int
	UVs           []mgl32.Vec2
	LightMapUVs   []mgl32.Vec2
	LightMapIndex int
}

// Mesh is the reconstructed geometry of an interior.
type Mesh struct {
	Points  []mgl32.Vec3
	Faces   []Face
	Slots   []MaterialSlot
	Skipped int
}

type slotKey struct {
	texture  int
	lightMap int
}

// assignMaterialSlots groups surfaces by (texture, lightmap atlas) in
// two passes: collect the distinct keys in surface order, then OR each
// slot's surface flags together. Deterministic for a given record order.
func assignMaterialSlots(itr *dif.Interior) (map[slotKey]int, []MaterialSlot) {
	keyToSlot := make(map[slotKey]int)

	var slots []MaterialSlot

	for i, surf := range itr.Surfaces {
		key := slotKey{texture: surf.Material(), lightMap: itr.LightMapIndex(i)}
		if _, ok := keyToSlot[key]; ok {
			continue
		}

		material := ""
		if key.texture >= 0 && key.texture < len(itr.Materials) {
			material = itr.Materials[key.texture]
		}

		keyToSlot[key] = len(slots)
		slots = append(slots, MaterialSlot{Material: material, LightMapIndex: key.lightMap})
	}

	for i, surf := range itr.Surfaces {
		key := slotKey{texture: surf.Material(), lightMap: itr.LightMapIndex(i)}
		slots[keyToSlot[key]].Flags |= surf.SurfaceFlags()
	}

	return keyToSlot, slots
}

// Reconstruct rebuilds an interior's surfaces into a mesh of outward
// facing polygon loops with diffuse and lightmap UVs. Malformed surfaces
// (too few winding indices, dangling plane/texgen/point references) are
// skipped and counted; the rest of the surface list is still processed.
func Reconstruct(itr *dif.Interior) *Mesh {
	keyToSlot, slots := assignMaterialSlots(itr)

	m := &Mesh{
		Points: itr.Points,
		Faces:  make([]Face, 0, len(itr.Surfaces)),
		Slots:  slots,
	}

	for i, surf := range itr.Surfaces {
		planeIndex, flipped := surf.PlaneRef()

		normal, ok := itr.SurfaceNormal(planeIndex, flipped)
		if !ok {
			m.Skipped++
			continue
		}

		tgi := surf.TexGenRef()
		if tgi < 0 || tgi >= len(itr.TexGenEqs) {
			m.Skipped++
			continue
		}
		texGen := itr.TexGenEqs[tgi]

		loops := surf.FaceIndices(itr.Windings)
		if len(loops) == 0 {
			m.Skipped++
			continue
		}

		lmIndex := itr.LightMapIndex(i)

		var lmTexGen LightMapTexGen
		if lmIndex >= 0 {
			lm := surf.LightMapRef()
			lmTexGen = DecodeLightMapTexGen(lm.FinalWord, lm.TexGenXD, lm.TexGenYD)
		}

		slot := keyToSlot[slotKey{texture: surf.Material(), lightMap: lmIndex}]

		for _, loop := range loops {
			face, ok := m.buildFace(itr, loop, normal, texGen, lmTexGen, slot, lmIndex)
			if !ok {
				m.Skipped++
				continue
			}

			m.Faces = append(m.Faces, face)
		}
	}

	return m
}

func (m *Mesh) buildFace(itr *dif.Interior, loop []int32, normal mgl32.Vec3,
	texGen dif.TexGenEq, lmTexGen LightMapTexGen, slot, lmIndex int,
) (Face, bool) {
	face := Face{
		Indices:       loop,
		Normal:        normal,
		Slot:          slot,
		UVs:           make([]mgl32.Vec2, len(loop)),
		LightMapIndex: lmIndex,
	}

	if lmIndex >= 0 {
		face.LightMapUVs = make([]mgl32.Vec2, len(loop))
	}

	for j, idx := range loop {
		if idx < 0 || int(idx) >= len(itr.Points) {
			return Face{}, false
		}

		pt := itr.Points[idx]

		u, v := ProjectPoint(pt, texGen)
		face.UVs[j] = mgl32.Vec2{u, v}

		if lmIndex >= 0 {
			lu, lv := lmTexGen.UV(pt)
			face.LightMapUVs[j] = mgl32.Vec2{lu, lv}
		}
	}

	return face, true
}

// Triangle is one triangle of a reconstructed mesh, expanded to explicit
// per-vertex data for hand-off.
type Triangle struct {
	Points        [3]mgl32.Vec3
	UVs           [3]mgl32.Vec2
	LightMapUVs   [3]mgl32.Vec2
	Normal        mgl32.Vec3
	Slot          int
	LightMapIndex int
}

// Triangles fans every face into triangles, dropping degenerate ones
// silently.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.Faces))

	for _, face := range m.Faces {
		for i := 1; i < len(face.Indices)-1; i++ {
			corners := [3]int{0, i, i + 1}

			var tri Triangle
			tri.Normal = face.Normal
			tri.Slot = face.Slot
			tri.LightMapIndex = face.LightMapIndex

			for c, ci := range corners {
				tri.Points[c] = m.Points[face.Indices[ci]]
				tri.UVs[c] = face.UVs[ci]
				if face.LightMapUVs != nil {
					tri.LightMapUVs[c] = face.LightMapUVs[ci]
				}
			}

			if IsDegenerate(tri.Points[0], tri.Points[1], tri.Points[2]) {
				continue
			}

			tris = append(tris, tri)
		}
	}

	return tris
}
