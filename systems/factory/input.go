package factory

import (
	"github.com/automoto/samurai/archetypes"
	"github.com/automoto/samurai/components"
	"github.com/automoto/samurai/input"
	"github.com/yohamta/donburi"
)

// CreateInputBuffer stores the shared input history in the world.
func CreateInputBuffer(w donburi.World, buf *input.Buffer) *donburi.Entry {
	e := archetypes.InputBuffer.Spawn(w)
	components.InputBuffer.SetValue(e, components.InputBufferData{Buffer: buf})
	return e
}
