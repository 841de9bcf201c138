package dif

import "github.com/go-gl/mathgl/mgl32"

// PolyhedronEdge connects two faces and two vertices of a polyhedron.
type PolyhedronEdge struct {
	Face0   uint32
	Face1   uint32
	Vertex0 uint32
	Vertex1 uint32
}

// Polyhedron is the convex volume of a trigger.
type Polyhedron struct {
	Points []mgl32.Vec3
	Planes []Plane
	Edges  []PolyhedronEdge
}

// Extents returns the axis-aligned bounds of the polyhedron's points.
// An empty polyhedron yields a zero box.
func (p Polyhedron) Extents() (min, max mgl32.Vec3) {
	if len(p.Points) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	min, max = p.Points[0], p.Points[0]

	for _, pt := range p.Points[1:] {
		for i := 0; i < 3; i++ {
			if pt[i] < min[i] {
				min[i] = pt[i]
			}
			if pt[i] > max[i] {
				max[i] = pt[i]
			}
		}
	}

	return min, max
}

// UnitBoxPolyhedron is the canonical polyhedron string synthesized for
// trigger entities on export; the external builder scales it by the
// trigger's "scale" property.
const UnitBoxPolyhedron = "0 0 0 1 0 0 0 -1 0 0 0 1"

// Trigger is a volume entity that can direct a platform toward a marker
// when activated.
type Trigger struct {
	Name       string
	Datablock  string
	Properties Dictionary
	Polyhedron Polyhedron
	Offset     mgl32.Vec3
}

// GameEntity is a generic scene entity handed through to the engine as a
// datablock, class, position and flattened property dictionary.
type GameEntity struct {
	Datablock  string
	GameClass  string
	Position   mgl32.Vec3
	Properties Dictionary
}
