package interior

import "github.com/go-gl/mathgl/mgl32"

// degenerateEpsilon bounds the cross-product magnitude (twice the
// triangle area) below which a triangle is considered degenerate.
const degenerateEpsilon = 1e-6

// IsDegenerate reports whether the triangle p1 p2 p3 has collinear or
// coincident vertices. Degenerate triangles are expected in authored
// content and are dropped rather than reported.
func IsDegenerate(p1, p2, p3 mgl32.Vec3) bool {
	return p1.Sub(p2).Cross(p1.Sub(p3)).Len() < degenerateEpsilon
}
