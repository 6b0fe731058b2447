package archetypes

import (
	"github.com/automoto/samurai/components"
	"github.com/automoto/samurai/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Player,
		tags.Body,
		components.Physics,
		components.MovementStats,
		components.PlayerState,
		components.Collision,
		components.Sprite,
	)
	Dummy = newArchetype(
		tags.Body,
		components.Physics,
		components.Collision,
	)
	Space = newArchetype(
		components.Space,
	)
	InputBuffer = newArchetype(
		components.InputBuffer,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
