// Package builder assembles the hand-off artifacts consumed by the
// external native geometry-build service: batched triangle lists,
// pathed-interior marker lists and flattened entity dictionaries.
package builder

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/RandomityGuy/io-dif/pkg/interior"
)

// Triangle is one world-space triangle in the hand-off layout: vertex
// order and UV sign already match what the native builder expects.
type Triangle struct {
	Points   [3]mgl32.Vec3
	UVs      [3]mgl32.Vec2
	Normal   mgl32.Vec3
	Material string
}

// Builder accumulates triangles for one output interior.
type Builder struct {
	Triangles []Triangle
}

// AddTriangle queues a triangle. The hand-off convention reverses the
// vertex order and negates V; degenerate triangles are dropped silently.
func (b *Builder) AddTriangle(p1, p2, p3 mgl32.Vec3, uv1, uv2, uv3 mgl32.Vec2, normal mgl32.Vec3, material string) {
	if interior.IsDegenerate(p1, p2, p3) {
		return
	}

	b.Triangles = append(b.Triangles, Triangle{
		Points:   [3]mgl32.Vec3{p3, p2, p1},
		UVs:      [3]mgl32.Vec2{flipV(uv3), flipV(uv2), flipV(uv1)},
		Normal:   normal,
		Material: material,
	})
}

func flipV(uv mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{uv.X(), -uv.Y()}
}

// PartitionTriangles splits a triangle list into batches of at most
// maxPerBatch triangles each. A pure transformation: the input order is
// preserved across batch boundaries.
func PartitionTriangles(tris []Triangle, maxPerBatch int) [][]Triangle {
	if len(tris) == 0 {
		return nil
	}

	if maxPerBatch <= 0 {
		return [][]Triangle{tris}
	}

	batches := make([][]Triangle, 0, (len(tris)+maxPerBatch-1)/maxPerBatch)

	for start := 0; start < len(tris); start += maxPerBatch {
		end := start + maxPerBatch
		if end > len(tris) {
			end = len(tris)
		}

		batches = append(batches, tris[start:end])
	}

	return batches
}
