package systems

import (
	"github.com/automoto/samurai/archetypes"
	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// testStats is the tuning used throughout the movement tests.
func testStats() components.MovementStatsData {
	return components.MovementStatsData{
		MaxSpeed:           fixed.FromInt(17),
		GroundAcceleration: fixed.FromInt(3),
		Friction:           fixed.FromInt(1),
		Gravity:            fixed.FromInt(2),
		JumpPower:          fixed.FromInt(20),
		SuperjumpPower:     fixed.FromInt(28),
		AirAcceleration:    fixed.FromInt(1),
		AirMaxSpeed:        fixed.FromInt(10),
	}
}

// history pads the given sets (most recent first) to a full buffer.
func history(sets ...input.Set) []input.Set {
	h := make([]input.Set, cfg.Input.BufferSize)
	copy(h, sets)
	return h
}

func newTestWorld(buf *input.Buffer) donburi.World {
	w := donburi.NewWorld()
	e := archetypes.InputBuffer.Spawn(w)
	components.InputBuffer.SetValue(e, components.InputBufferData{Buffer: buf})
	return w
}

func spawnFighter(w donburi.World, pos fixed.Vec) *donburi.Entry {
	e := archetypes.Fighter.Spawn(w)
	components.Physics.SetValue(e, components.PhysicsData{Position: pos})
	components.MovementStats.SetValue(e, testStats())
	components.Collision.SetValue(e, components.CollisionData{
		Mask: components.CircleMask{Offset: fixed.V(0, -32), Radius: fixed.FromInt(32)},
	})
	return e
}

func spawnBody(w donburi.World, pos, vel fixed.Vec, radius int) *donburi.Entry {
	e := archetypes.Dummy.Spawn(w)
	components.Physics.SetValue(e, components.PhysicsData{Position: pos, Velocity: vel})
	components.Collision.SetValue(e, components.CollisionData{
		Mask: components.CircleMask{Radius: fixed.FromInt(radius)},
	})
	return e
}

// withSpace adds a broad phase space to w; bodies spawned afterwards with
// spawnProxiedBody get a proxy in it.
func withSpace(w donburi.World) *resolv.Space {
	e := archetypes.Space.Spawn(w)
	space := resolv.NewSpace(cfg.BroadPhase.Width, cfg.BroadPhase.Height, cfg.BroadPhase.CellWidth, cfg.BroadPhase.CellHeight)
	components.Space.Set(e, space)
	return space
}

func spawnProxiedBody(w donburi.World, space *resolv.Space, pos, vel fixed.Vec, radius int) *donburi.Entry {
	e := spawnBody(w, pos, vel, radius)
	obj := NewObject(pos, components.Collision.Get(e).Mask, tags.ResolvBody)
	space.Add(obj)
	donburi.Add(e, components.Object, &components.ObjectData{Object: obj})
	return w.Entry(e.Entity())
}
