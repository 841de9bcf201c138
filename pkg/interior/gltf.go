package interior

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLTF builds a glTF document from a reconstructed mesh, one
// primitive per material slot, for previewing an interior outside the
// engine. Lightmap UVs go into TEXCOORD_1 when present.
func ExportGLTF(m *Mesh, name string) *gltf.Document {
	doc := gltf.NewDocument()

	tris := m.Triangles()

	for slot := range m.Slots {
		var slotTris []Triangle

		for _, tri := range tris {
			if tri.Slot == slot {
				slotTris = append(slotTris, tri)
			}
		}

		if len(slotTris) == 0 {
			continue
		}

		hasLightMap := m.Slots[slot].LightMapIndex >= 0

		positions := make([][3]float32, 0, len(slotTris)*3)
		normals := make([][3]float32, 0, len(slotTris)*3)
		uvs := make([][2]float32, 0, len(slotTris)*3)
		indices := make([]uint32, 0, len(slotTris)*3)

		var lmUVs [][2]float32
		if hasLightMap {
			lmUVs = make([][2]float32, 0, len(slotTris)*3)
		}

		for _, tri := range slotTris {
			for c := 0; c < 3; c++ {
				indices = append(indices, uint32(len(positions)))
				positions = append(positions, tri.Points[c])
				normals = append(normals, tri.Normal)
				uvs = append(uvs, tri.UVs[c])

				if hasLightMap {
					lmUVs = append(lmUVs, tri.LightMapUVs[c])
				}
			}
		}

		attributes := map[string]uint32{
			"POSITION":   modeler.WritePosition(doc, positions),
			"NORMAL":     modeler.WriteNormal(doc, normals),
			"TEXCOORD_0": modeler.WriteTextureCoord(doc, uvs),
		}
		if hasLightMap {
			attributes["TEXCOORD_1"] = modeler.WriteTextureCoord(doc, lmUVs)
		}

		indicesAccessor := modeler.WriteIndices(doc, indices)

		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:        m.Slots[slot].Material,
			DoubleSided: true,
		})

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.Slots[slot].Material,
			Primitives: []*gltf.Primitive{
				{
					Indices:    &indicesAccessor,
					Attributes: attributes,
					Material:   gltf.Index(uint32(len(doc.Materials) - 1)),
				},
			},
		})

		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
	}

	return doc
}
