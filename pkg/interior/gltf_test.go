package interior

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/RandomityGuy/io-dif/pkg/dif"
)

func TestExportGLTF(t *testing.T) {
	t.Parallel()

	doc := ExportGLTF(Reconstruct(quadInterior()), "room")

	assert.Len(t, doc.Meshes, 1)
	assert.Len(t, doc.Materials, 1)
	assert.Equal(t, "floor", doc.Materials[0].Name)
	assert.True(t, doc.Materials[0].DoubleSided)
	assert.Len(t, doc.Scenes[0].Nodes, 1)
	assert.Equal(t, "room", doc.Nodes[0].Name)

	prim := doc.Meshes[0].Primitives[0]
	assert.Contains(t, prim.Attributes, "POSITION")
	assert.Contains(t, prim.Attributes, "NORMAL")
	assert.Contains(t, prim.Attributes, "TEXCOORD_0")
	assert.NotContains(t, prim.Attributes, "TEXCOORD_1")
	assert.NotNil(t, prim.Indices)
}

func TestExportGLTF_LightMapLayer(t *testing.T) {
	t.Parallel()

	itr := quadInterior()
	itr.LightMapIndices = []int{0}
	itr.Surfaces = []dif.SurfaceRecord{
		dif.CurrentSurface{
			WindingStart: 0,
			WindingCount: 4,
			LightMap:     dif.SurfaceLightMap{FinalWord: 131},
		},
	}

	doc := ExportGLTF(Reconstruct(itr), "room")

	assert.Len(t, doc.Meshes, 1)
	assert.Contains(t, doc.Meshes[0].Primitives[0].Attributes, "TEXCOORD_1")
}

func TestExportGLTF_SkipsEmptySlots(t *testing.T) {
	t.Parallel()

	itr := quadInterior()
	// A degenerate quad reconstructs to a face but fans to no triangles,
	// leaving its slot without a primitive.
	itr.Points = []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0},
		{3, 0, 0},
	}

	doc := ExportGLTF(Reconstruct(itr), "room")

	assert.Empty(t, doc.Meshes)
	assert.Empty(t, doc.Scenes[0].Nodes)
}
