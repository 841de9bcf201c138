package builder

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_AddTriangle(t *testing.T) {
	t.Parallel()

	var b Builder
	b.AddTriangle(
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0},
		mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1},
		mgl32.Vec3{0, 0, 1}, "wall",
	)

	assert.Len(t, b.Triangles, 1)

	tri := b.Triangles[0]

	// Vertex order is reversed and V is negated on hand-off.
	assert.Equal(t, [3]mgl32.Vec3{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}, tri.Points)
	assert.Equal(t, [3]mgl32.Vec2{{0, -1}, {1, 0}, {0, 0}}, tri.UVs)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, tri.Normal)
	assert.Equal(t, "wall", tri.Material)
}

func TestBuilder_AddTriangle_DropsDegenerate(t *testing.T) {
	t.Parallel()

	var b Builder
	b.AddTriangle(
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0},
		mgl32.Vec2{}, mgl32.Vec2{}, mgl32.Vec2{},
		mgl32.Vec3{0, 0, 1}, "wall",
	)

	assert.Empty(t, b.Triangles)
}

func TestPartitionTriangles(t *testing.T) {
	t.Parallel()

	tris := make([]Triangle, 7)
	for i := range tris {
		tris[i].Points[0] = mgl32.Vec3{float32(i), 0, 0}
	}

	batches := PartitionTriangles(tris, 3)

	assert.Len(t, batches, 3)
	assert.Len(t, batches[0], 3)
	assert.Len(t, batches[1], 3)
	assert.Len(t, batches[2], 1)

	// Order is preserved across batch boundaries.
	assert.Equal(t, tris[3], batches[1][0])
	assert.Equal(t, tris[6], batches[2][0])
}

func TestPartitionTriangles_Edge(t *testing.T) {
	t.Parallel()

	assert.Nil(t, PartitionTriangles(nil, 3))

	tris := make([]Triangle, 4)
	assert.Equal(t, [][]Triangle{tris}, PartitionTriangles(tris, 0))
	assert.Len(t, PartitionTriangles(tris, 4), 1)
}
