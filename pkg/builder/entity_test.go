package builder

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/RandomityGuy/io-dif/pkg/dif"
)

func TestFlattenGameEntity(t *testing.T) {
	t.Parallel()

	var props dif.Dictionary
	props.Set("speed", "3")

	ent := FlattenGameEntity("Item", "GemItem", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1.5, 2}, props)

	assert.Equal(t, "Item", ent.GameClass)
	assert.Equal(t, "GemItem", ent.Datablock)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, ent.Position)
	assert.Equal(t, "3", ent.Properties.GetDefault("speed", ""))
	assert.Equal(t, "1.00000 1.50000 2.00000", ent.Properties.GetDefault("scale", ""))

	_, ok := ent.Properties.Get("polyhedron")
	assert.False(t, ok)

	// The source dictionary is left untouched.
	_, ok = props.Get("scale")
	assert.False(t, ok)
}

func TestFlattenGameEntity_Trigger(t *testing.T) {
	t.Parallel()

	ent := FlattenGameEntity("Trigger", "DefaultTrigger", mgl32.Vec3{}, mgl32.Vec3{2, 2, 2}, dif.Dictionary{})

	assert.Equal(t, dif.UnitBoxPolyhedron, ent.Properties.GetDefault("polyhedron", ""))
}
