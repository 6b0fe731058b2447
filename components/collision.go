package components

import (
	"github.com/automoto/samurai/fixed"
	"github.com/yohamta/donburi"
)

// CircleMask is a circle placed relative to the body position.
type CircleMask struct {
	Offset fixed.Vec
	Radius fixed.Fixed
}

// Center returns the mask center in world space.
func (m CircleMask) Center(position fixed.Vec) fixed.Vec {
	return position.Add(m.Offset)
}

type CollisionData struct {
	Mask CircleMask

	// Recomputed every tick by the collision pass
	Colliding   bool
	RepelVector fixed.Vec

	// Tuning value carried for callers; resolution does not read it
	RepelSpeed fixed.Fixed
}

var Collision = donburi.NewComponentType[CollisionData]()
