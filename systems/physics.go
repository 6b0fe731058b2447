package systems

import (
	"github.com/automoto/samurai/components"
	"github.com/yohamta/donburi"
)

// UpdatePhysics advances every body by one semi-implicit Euler step.
func UpdatePhysics(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		Integrate(components.Physics.Get(e))
	})
}

func Integrate(p *components.PhysicsData) {
	p.Velocity = p.Velocity.Add(p.Acceleration)
	p.Position = p.Position.Offset(p.Velocity.X, p.Velocity.Y)
}
