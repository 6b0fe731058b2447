package components

import (
	"github.com/automoto/samurai/fixed"
	"github.com/yohamta/donburi"
)

// PhysicsData is a body's kinematic state. Y grows downward and the ground
// plane is y = 0, so airborne bodies have negative Position.Y.
type PhysicsData struct {
	Position     fixed.Vec
	Velocity     fixed.Vec
	Acceleration fixed.Vec
}

var Physics = donburi.NewComponentType[PhysicsData]()
