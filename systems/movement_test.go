package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/samurai/archetypes"
	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	none   = input.NewSet()
	left   = input.NewSet(input.MoveLeft)
	right  = input.NewSet(input.MoveRight)
	jump   = input.NewSet(input.Jump)
	crouch = input.NewSet(input.Crouch)
	attack = input.NewSet(input.Attack)
)

func TestSuperjumpBuffering(t *testing.T) {
	tests := []struct {
		name string
		hist []input.Set
		want fixed.Fixed
	}{
		{"no crouch", history(jump), fixed.FromInt(-20)},
		{"crouch one tick before", history(jump, crouch), fixed.FromInt(-28)},
		{"crouch two ticks before", history(jump, none, crouch), fixed.FromInt(-28)},
		{"crouch three ticks before", history(jump, none, none, crouch), fixed.FromInt(-28)},
		{"crouch four ticks before", history(jump, none, none, none, crouch), fixed.FromInt(-20)},
		{"crouch held with a direction", history(jump, input.NewSet(input.Crouch, input.MoveLeft)), fixed.FromInt(-28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := testStats()
			p := components.PhysicsData{}
			st := components.PlayerStateData{Status: cfg.Idle}

			StepMovement(tt.hist, &p, &stats, &st)

			assert.Equal(t, tt.want, p.Velocity.Y)
			assert.Equal(t, cfg.Jumping, st.Status)
			assert.Equal(t, stats.Gravity, p.Acceleration.Y)
			assert.Equal(t, fixed.Zero, p.Position.Y)
		})
	}
}

func TestJumpRequiresGroundedStatus(t *testing.T) {
	stats := testStats()

	t.Run("already jumping", func(t *testing.T) {
		p := components.PhysicsData{Position: fixed.V(0, -50), Velocity: fixed.V(0, -5)}
		st := components.PlayerStateData{Status: cfg.Jumping}
		StepMovement(history(input.NewSet(input.Jump, input.MoveRight), crouch), &p, &stats, &st)
		assert.Equal(t, fixed.FromInt(-5), p.Velocity.Y)
		assert.Equal(t, stats.AirAcceleration, p.Acceleration.X, "falls through to air control")
		assert.Equal(t, cfg.Jumping, st.Status)
	})

	t.Run("blocking", func(t *testing.T) {
		p := components.PhysicsData{}
		st := components.PlayerStateData{Status: cfg.Blocking}
		StepMovement(history(jump), &p, &stats, &st)
		assert.Equal(t, fixed.Zero, p.Velocity.Y)
		assert.Equal(t, cfg.Idle, st.Status)
	})
}

func TestAttackOutranksMovement(t *testing.T) {
	stats := testStats()
	p := components.PhysicsData{Velocity: fixed.V(5, 0)}
	st := components.PlayerStateData{Status: cfg.Running, AnimationCounter: 40}

	StepMovement(history(input.NewSet(input.Attack, input.MoveRight, input.Jump)), &p, &stats, &st)

	assert.Equal(t, cfg.Attacking, st.Status)
	assert.Equal(t, uint32(0), st.AnimationCounter)
	assert.Equal(t, fixed.FromInt(-1), p.Acceleration.X, "friction, not acceleration")
	assert.Equal(t, fixed.Zero, p.Velocity.Y, "no jump")
}

func TestAttackingIgnoresInput(t *testing.T) {
	stats := testStats()
	p := components.PhysicsData{}
	st := components.PlayerStateData{Status: cfg.Attacking, AnimationCounter: 3}

	StepMovement(history(right), &p, &stats, &st)

	assert.Equal(t, fixed.Zero, p.Acceleration.X)
	assert.Equal(t, cfg.Attacking, st.Status)
	assert.Equal(t, uint32(4), st.AnimationCounter)
}

func TestAttackExpires(t *testing.T) {
	stats := testStats()
	p := components.PhysicsData{}
	st := components.PlayerStateData{Status: cfg.Idle}

	StepMovement(history(attack), &p, &stats, &st)
	require.Equal(t, cfg.Attacking, st.Status)

	for i := uint32(1); i <= cfg.Physics.AttackTotalFrames; i++ {
		StepMovement(history(attack), &p, &stats, &st)
		require.Equal(t, cfg.Attacking, st.Status, "tick %d", i)
		require.Equal(t, i, st.AnimationCounter)
	}

	StepMovement(history(none), &p, &stats, &st)
	assert.Equal(t, cfg.Idle, st.Status)
}

func TestDirectionalAcceleration(t *testing.T) {
	stats := testStats()
	tests := []struct {
		name   string
		status cfg.Status
		pos    fixed.Vec
		speed  fixed.Fixed
		in     input.Set
		want   fixed.Fixed
	}{
		{"ground right from rest", cfg.Idle, fixed.Vec{}, 0, right, fixed.FromInt(3)},
		{"ground left from rest", cfg.Idle, fixed.Vec{}, 0, left, fixed.FromInt(-3)},
		{"ground right at cap", cfg.Running, fixed.Vec{}, fixed.FromInt(17), right, 0},
		{"ground left at cap", cfg.Running, fixed.Vec{}, fixed.FromInt(-17), left, 0},
		{"ground right just under cap", cfg.Running, fixed.Vec{}, fixed.FromInt(16), right, fixed.FromInt(3)},
		{"air right", cfg.Jumping, fixed.V(0, -80), fixed.FromInt(4), right, fixed.FromInt(1)},
		{"air right at air cap", cfg.Jumping, fixed.V(0, -80), fixed.FromInt(10), right, 0},
		{"air left at air cap", cfg.Jumping, fixed.V(0, -80), fixed.FromInt(-10), left, 0},
		{"crouch is inert", cfg.Running, fixed.Vec{}, fixed.FromInt(5), crouch, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.PhysicsData{Position: tt.pos, Velocity: fixed.Vec{X: tt.speed, Y: fixed.FromInt(-1)}}
			if tt.status != cfg.Jumping {
				p.Velocity.Y = 0
			}
			st := components.PlayerStateData{Status: tt.status}
			StepMovement(history(tt.in), &p, &stats, &st)
			assert.Equal(t, tt.want, p.Acceleration.X)
		})
	}
}

func TestDeceleration(t *testing.T) {
	stats := testStats()
	tests := []struct {
		name   string
		status cfg.Status
		y      int
		speed  fixed.Fixed
		want   fixed.Fixed
	}{
		{"ground friction right", cfg.Running, 0, fixed.FromInt(5), fixed.FromInt(-1)},
		{"ground friction left", cfg.Running, 0, fixed.FromInt(-5), fixed.FromInt(1)},
		{"ground friction stops exactly", cfg.Running, 0, fixed.FromFloat(0.5), fixed.FromFloat(-0.5)},
		{"at rest", cfg.Idle, 0, 0, 0},
		{"air inside envelope", cfg.Jumping, -100, fixed.FromInt(8), 0},
		{"air above envelope", cfg.Jumping, -100, fixed.FromInt(15), fixed.FromInt(-1)},
		{"air below envelope", cfg.Jumping, -100, fixed.FromInt(-12), fixed.FromInt(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.PhysicsData{Position: fixed.V(0, tt.y), Velocity: fixed.Vec{X: tt.speed}}
			st := components.PlayerStateData{Status: tt.status}
			StepMovement(history(none), &p, &stats, &st)
			assert.Equal(t, tt.want, p.Acceleration.X)
		})
	}
}

func TestFacingFollowsMotion(t *testing.T) {
	stats := testStats()

	p := components.PhysicsData{}
	st := components.PlayerStateData{Facing: cfg.DirectionRight}
	StepMovement(history(left), &p, &stats, &st)
	assert.Equal(t, cfg.DirectionRight, st.Facing, "no motion yet")

	p.Velocity.X = fixed.FromInt(-3)
	StepMovement(history(left), &p, &stats, &st)
	assert.Equal(t, cfg.DirectionLeft, st.Facing)

	p.Velocity.X = fixed.FromInt(4)
	StepMovement(history(left), &p, &stats, &st)
	assert.Equal(t, cfg.DirectionLeft, st.Facing)

	StepMovement(history(right), &p, &stats, &st)
	assert.Equal(t, cfg.DirectionRight, st.Facing)

	p.Velocity.X = fixed.FromInt(-4)
	StepMovement(history(none), &p, &stats, &st)
	assert.Equal(t, cfg.DirectionRight, st.Facing, "released keys keep facing")
}

func TestGroundedStatusInference(t *testing.T) {
	stats := testStats()

	p := components.PhysicsData{}
	st := components.PlayerStateData{Status: cfg.Running}
	StepMovement(history(right), &p, &stats, &st)
	assert.Equal(t, cfg.Idle, st.Status, "speed still zero before integration")

	p.Velocity.X = fixed.FromInt(3)
	StepMovement(history(right), &p, &stats, &st)
	assert.Equal(t, cfg.Running, st.Status)

	p.Velocity.X = 0
	st.Status = cfg.Hitstun
	StepMovement(history(none), &p, &stats, &st)
	assert.Equal(t, cfg.Idle, st.Status)
}

func TestLanding(t *testing.T) {
	stats := testStats()
	tests := []struct {
		name   string
		speedX fixed.Fixed
		want   cfg.Status
	}{
		{"still", 0, cfg.Idle},
		{"moving", fixed.FromInt(4), cfg.Running},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.PhysicsData{Position: fixed.V(0, -3), Velocity: fixed.Vec{X: tt.speedX, Y: fixed.FromInt(5)}}
			st := components.PlayerStateData{Status: cfg.Jumping}
			StepMovement(history(none), &p, &stats, &st)

			assert.Equal(t, fixed.Zero, p.Position.Y)
			assert.Equal(t, fixed.Zero, p.Velocity.Y)
			assert.Equal(t, fixed.Zero, p.Acceleration.Y)
			assert.Equal(t, tt.want, st.Status)
		})
	}

	t.Run("gravity alone reaches the ground", func(t *testing.T) {
		p := components.PhysicsData{Position: fixed.V(0, -1)}
		st := components.PlayerStateData{Status: cfg.Jumping}
		StepMovement(history(none), &p, &stats, &st)
		assert.Equal(t, fixed.Zero, p.Position.Y)
		assert.Equal(t, cfg.Idle, st.Status)
	})

	t.Run("airborne stays airborne", func(t *testing.T) {
		p := components.PhysicsData{Position: fixed.V(0, -40), Velocity: fixed.V(0, 3)}
		st := components.PlayerStateData{Status: cfg.Jumping}
		StepMovement(history(none), &p, &stats, &st)
		assert.Equal(t, fixed.FromInt(-40), p.Position.Y)
		assert.Equal(t, stats.Gravity, p.Acceleration.Y)
		assert.Equal(t, cfg.Jumping, st.Status)
	})
}

// Runs random inputs and tunings through the movement rules and the
// integrator, checking the speed cap and the ground after every tick.
func TestMovementInvariantsFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sets := []input.Set{none, left, right, jump, crouch, attack, input.NewSet(input.Attack, input.MoveLeft)}

	for run := 0; run < 200; run++ {
		accel := fixed.FromRaw(int32(rng.Intn(6*128) + 1))
		stats := components.MovementStatsData{
			MaxSpeed:           accel.Mul(fixed.FromInt(rng.Intn(8) + 1)).Add(fixed.FromRaw(int32(rng.Intn(3)))),
			GroundAcceleration: accel,
			Friction:           fixed.FromRaw(int32(rng.Intn(4*128) + 1)),
			Gravity:            fixed.FromRaw(int32(rng.Intn(4*128) + 1)),
			JumpPower:          fixed.FromInt(rng.Intn(30) + 1),
			SuperjumpPower:     fixed.FromInt(rng.Intn(40) + 1),
			AirAcceleration:    fixed.FromRaw(int32(rng.Intn(3*128) + 1)),
			AirMaxSpeed:        fixed.FromInt(rng.Intn(20) + 1),
		}
		p := components.PhysicsData{}
		st := components.PlayerStateData{}
		buf := input.NewBuffer(cfg.Input.BufferSize)

		for tick := 0; tick < 300; tick++ {
			buf.Push(sets[rng.Intn(len(sets))])
			StepMovement(buf.GetAll(), &p, &stats, &st)
			require.LessOrEqual(t, p.Velocity.X.Abs(), stats.MaxSpeed, "run %d tick %d", run, tick)

			Integrate(&p)
			require.LessOrEqual(t, p.Position.Y, fixed.Zero, "run %d tick %d", run, tick)
		}
	}
}

func TestStepMovementRejectsShallowHistory(t *testing.T) {
	stats := testStats()
	assert.Panics(t, func() {
		StepMovement(make([]input.Set, MinHistory-1), &components.PhysicsData{}, &stats, &components.PlayerStateData{})
	})
}

func TestUpdateMovement(t *testing.T) {
	buf := input.NewBuffer(cfg.Input.BufferSize)
	w := newTestWorld(buf)
	fighter := spawnFighter(w, fixed.Vec{})
	dummy := spawnBody(w, fixed.V(300, 0), fixed.Vec{}, 32)

	buf.Push(right)
	UpdateMovement(w)

	assert.Equal(t, fixed.FromInt(3), components.Physics.Get(fighter).Acceleration.X)
	assert.Equal(t, fixed.Vec{}, components.Physics.Get(dummy).Acceleration, "dummies are not controlled")
}

func TestUpdateMovementMissingComponentPanics(t *testing.T) {
	w := newTestWorld(input.NewBuffer(cfg.Input.BufferSize))
	archetypes.Fighter.Spawn(w)
	w.Create(tags.Player, components.Physics, components.PlayerState)

	assert.Panics(t, func() { UpdateMovement(w) })
}
