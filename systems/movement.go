package systems

import (
	"fmt"

	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/tags"
	"github.com/yohamta/donburi"
)

// MinHistory is the shallowest input history the movement rules can read.
const MinHistory = 4

// UpdateMovement runs the movement rules for every player-controlled fighter
// against one snapshot of the shared input history.
func UpdateMovement(w donburi.World) {
	bufEntry, ok := components.InputBuffer.First(w)
	if !ok {
		panic("movement: world has no input buffer")
	}
	history := components.InputBuffer.Get(bufEntry).Buffer.GetAll()

	tags.Player.Each(w, func(e *donburi.Entry) {
		mustHave(e, components.Physics, components.MovementStats, components.PlayerState)
		StepMovement(
			history,
			components.Physics.Get(e),
			components.MovementStats.Get(e),
			components.PlayerState.Get(e),
		)
	})
}

// StepMovement chooses this tick's acceleration and status for one fighter.
// history[0] is the current tick's input set.
func StepMovement(history []input.Set, p *components.PhysicsData, s *components.MovementStatsData, st *components.PlayerStateData) {
	if len(history) < MinHistory {
		panic(fmt.Sprintf("movement: input history of %d is shallower than %d", len(history), MinHistory))
	}
	current := history[0]

	p.Acceleration.X = fixed.Zero
	st.AnimationCounter++

	// First matching rule wins; the order is part of the feel of the game.
	switch {
	case current.Empty() || st.Status == cfg.Attacking || current.Has(input.Attack):
		p.Acceleration.X = decelerate(p.Velocity.X, s, st.Status)
		if current.Has(input.Attack) {
			if st.Status != cfg.Attacking {
				st.AnimationCounter = 0
			}
			st.Status = cfg.Attacking
		}
	case current.Has(input.Jump) && (st.Status == cfg.Idle || st.Status == cfg.Running):
		st.Status = cfg.Jumping
		if crouchedBefore(history) {
			p.Velocity.Y = s.SuperjumpPower.Neg()
		} else {
			p.Velocity.Y = s.JumpPower.Neg()
		}
	case current.Has(input.MoveLeft):
		p.Acceleration.X = accelerate(p.Velocity.X.Neg(), s, st.Status).Neg()
	case current.Has(input.MoveRight):
		p.Acceleration.X = accelerate(p.Velocity.X, s, st.Status)
	case current.Has(input.Crouch):
		// reserved
	}

	p.Velocity.X = p.Velocity.X.Clamp(s.MaxSpeed.Neg(), s.MaxSpeed)

	if st.Status == cfg.Jumping || p.Position.Y.IsNegative() {
		p.Acceleration.Y = s.Gravity
	} else {
		p.Acceleration.Y = fixed.Zero
	}

	if st.Status != cfg.Jumping && st.Status != cfg.Attacking {
		if p.Velocity.IsZero() {
			st.Status = cfg.Idle
		} else if !p.Velocity.X.IsZero() {
			st.Status = cfg.Running
		}
	}

	if st.Status == cfg.Attacking && st.AnimationCounter > cfg.Physics.AttackTotalFrames {
		st.Status = cfg.Idle
	}

	if current.Has(input.MoveLeft) && p.Velocity.X.IsNegative() {
		st.Facing = cfg.DirectionLeft
	} else if current.Has(input.MoveRight) && p.Velocity.X.IsPositive() {
		st.Facing = cfg.DirectionRight
	}

	// Land when the integrator would put the body on or below the ground.
	if p.Position.Y+p.Velocity.Y+p.Acceleration.Y >= 0 {
		p.Velocity.Y = fixed.Zero
		p.Acceleration.Y = fixed.Zero
		p.Position.Y = fixed.Zero
		if st.Status == cfg.Jumping {
			if p.Velocity.X.IsZero() {
				st.Status = cfg.Idle
			} else {
				st.Status = cfg.Running
			}
		}
	}
}

// decelerate brings horizontal speed toward zero on the ground, and back
// inside the air speed envelope while jumping.
func decelerate(speed fixed.Fixed, s *components.MovementStatsData, status cfg.Status) fixed.Fixed {
	if status == cfg.Jumping {
		switch {
		case speed > s.AirMaxSpeed:
			return s.AirAcceleration.Min(speed).Neg()
		case speed < s.AirMaxSpeed.Neg():
			return s.AirAcceleration.Min(speed.Neg())
		}
		return fixed.Zero
	}
	switch {
	case speed.IsPositive():
		return s.Friction.Min(speed).Neg()
	case speed.IsNegative():
		return s.Friction.Min(speed.Neg())
	}
	return fixed.Zero
}

// accelerate returns the push toward positive speed; callers mirror it for
// the left direction. Nothing is added once the cap is reached.
func accelerate(speed fixed.Fixed, s *components.MovementStatsData, status cfg.Status) fixed.Fixed {
	if status == cfg.Jumping {
		if speed < s.AirMaxSpeed {
			return s.AirAcceleration
		}
		return fixed.Zero
	}
	if speed < s.MaxSpeed {
		return s.GroundAcceleration
	}
	return fixed.Zero
}

// crouchedBefore reports a Crouch in the ticks just before the current one.
func crouchedBefore(history []input.Set) bool {
	window := cfg.Input.SuperjumpWindow
	if window > len(history)-1 {
		window = len(history) - 1
	}
	for i := 1; i <= window; i++ {
		if history[i].Has(input.Crouch) {
			return true
		}
	}
	return false
}

func mustHave(e *donburi.Entry, cs ...donburi.IComponentType) {
	for _, c := range cs {
		if !e.HasComponent(c) {
			panic(fmt.Sprintf("systems: entity %v is missing %s", e.Entity(), c.Name()))
		}
	}
}
