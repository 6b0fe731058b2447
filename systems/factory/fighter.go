package factory

import (
	"github.com/automoto/samurai/archetypes"
	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/systems"
	"github.com/automoto/samurai/tags"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns an input-controlled fighter standing at position,
// tuned from cfg.Player.
func CreateFighter(w donburi.World, position fixed.Vec) *donburi.Entry {
	fighter := spawnBody(w, archetypes.Fighter, position, components.CircleMask{
		Offset: cfg.Player.BodyOffset,
		Radius: cfg.Player.BodyRadius,
	})

	components.MovementStats.SetValue(fighter, components.MovementStatsData{
		MaxSpeed:           cfg.Player.MaxSpeed,
		GroundAcceleration: cfg.Player.GroundAcceleration,
		Friction:           cfg.Player.Friction,
		Gravity:            cfg.Player.Gravity,
		JumpPower:          cfg.Player.JumpPower,
		SuperjumpPower:     cfg.Player.SuperjumpPower,
		AirAcceleration:    cfg.Player.AirAcceleration,
		AirMaxSpeed:        cfg.Player.AirMaxSpeed,
	})
	components.PlayerState.SetValue(fighter, components.PlayerStateData{
		Status: cfg.Idle,
		Facing: cfg.DirectionRight,
	})
	components.Sprite.SetValue(fighter, components.SpriteData{})

	return fighter
}

// CreateDummy spawns an uncontrolled body whose circle rests on position. It
// collides like a fighter but only moves when something gives it velocity.
func CreateDummy(w donburi.World, position fixed.Vec, radius fixed.Fixed) *donburi.Entry {
	return spawnBody(w, archetypes.Dummy, position, components.CircleMask{
		Offset: fixed.Vec{Y: radius.Neg()},
		Radius: radius,
	})
}

type spawner interface {
	Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry
}

func spawnBody(w donburi.World, a spawner, position fixed.Vec, mask components.CircleMask) *donburi.Entry {
	spaceEntry, hasSpace := components.Space.First(w)
	var e *donburi.Entry
	if hasSpace {
		e = a.Spawn(w, components.Object)
	} else {
		e = a.Spawn(w)
	}

	components.Physics.SetValue(e, components.PhysicsData{Position: position})
	components.Collision.SetValue(e, components.CollisionData{
		Mask:       mask,
		RepelSpeed: cfg.Player.RepelSpeed,
	})

	if hasSpace {
		obj := systems.NewObject(position, mask, tags.ResolvBody)
		obj.Data = e.Entity()
		components.Space.Get(spaceEntry).Add(obj)
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	}
	return e
}
