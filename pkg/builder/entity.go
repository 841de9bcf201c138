package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/RandomityGuy/io-dif/pkg/dif"
)

// FlattenGameEntity turns a scene entity into the flattened record the
// native builder consumes: the authored properties plus a synthesized
// "scale" key, and for trigger classes the canonical unit-box
// polyhedron the engine scales into place.
func FlattenGameEntity(gameClass, datablock string, position, scale mgl32.Vec3, props dif.Dictionary) dif.GameEntity {
	flat := props.Clone()
	flat.Set("scale", fmt.Sprintf("%.5f %.5f %.5f", scale.X(), scale.Y(), scale.Z()))

	if gameClass == "Trigger" {
		flat.Set("polyhedron", dif.UnitBoxPolyhedron)
	}

	return dif.GameEntity{
		Datablock:  datablock,
		GameClass:  gameClass,
		Position:   position,
		Properties: flat,
	}
}
