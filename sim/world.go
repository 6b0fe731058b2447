// Package sim owns the simulation world and runs its fixed tick pipeline.
package sim

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/shared/leveldata"
	"github.com/automoto/samurai/systems"
	"github.com/automoto/samurai/systems/factory"
	"github.com/automoto/samurai/tags"
	"github.com/yohamta/donburi"
)

// World is one simulation: the entity store, the input history it reads and
// the number of ticks run so far.
type World struct {
	world donburi.World
	buf   *input.Buffer
	ticks uint64
}

type Option func(*World)

// WithBroadPhase puts every body into a resolv spatial hash sized by
// cfg.BroadPhase. Results are identical to the brute force pass.
func WithBroadPhase() Option {
	return func(w *World) {
		bp := cfg.BroadPhase
		factory.CreateSpace(w.world, bp.Width, bp.Height, bp.CellWidth, bp.CellHeight)
	}
}

// NewWorld creates an empty world reading from buf. buf must hold at least
// systems.MinHistory sets.
func NewWorld(buf *input.Buffer, opts ...Option) *World {
	if buf.Cap() < systems.MinHistory {
		panic(fmt.Sprintf("sim: input buffer of %d is shallower than %d", buf.Cap(), systems.MinHistory))
	}
	w := &World{
		world: donburi.NewWorld(),
		buf:   buf,
	}
	factory.CreateInputBuffer(w.world, buf)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Donburi exposes the entity store for read-only presentation queries.
func (w *World) Donburi() donburi.World { return w.world }

func (w *World) Buffer() *input.Buffer { return w.buf }

func (w *World) Ticks() uint64 { return w.ticks }

// Spawn adds a body described by an arena spawn.
func (w *World) Spawn(s leveldata.Spawn) *donburi.Entry {
	if s.Player {
		return factory.CreateFighter(w.world, s.Position)
	}
	radius := s.Radius
	if radius.IsZero() {
		radius = cfg.Player.BodyRadius
	}
	return factory.CreateDummy(w.world, s.Position, radius)
}

// SpawnArena adds every spawn of an arena in order.
func (w *World) SpawnArena(a *leveldata.ArenaData) {
	for _, s := range a.Spawns {
		w.Spawn(s)
	}
}

// Tick runs one step: movement, collision, integration, presentation.
func (w *World) Tick() {
	systems.UpdateMovement(w.world)
	systems.UpdateObjects(w.world)
	systems.UpdateCollisions(w.world)
	systems.UpdatePhysics(w.world)
	systems.UpdateAnimation(w.world)
	w.ticks++
}

// Step pushes set as the newest input and runs one tick.
func (w *World) Step(set input.Set) {
	w.buf.Push(set)
	w.Tick()
}

// Checksum hashes all simulation state. Two worlds fed the same spawns and
// inputs have equal checksums after every tick.
func (w *World) Checksum() uint64 {
	h := fnv.New64a()
	var scratch [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		h.Write(scratch[:])
	}

	put(int64(w.ticks))
	tags.Body.Each(w.world, func(e *donburi.Entry) {
		p := components.Physics.Get(e)
		for _, v := range [...]int32{
			p.Position.X.Raw(), p.Position.Y.Raw(),
			p.Velocity.X.Raw(), p.Velocity.Y.Raw(),
			p.Acceleration.X.Raw(), p.Acceleration.Y.Raw(),
		} {
			put(int64(v))
		}

		c := components.Collision.Get(e)
		colliding := int64(0)
		if c.Colliding {
			colliding = 1
		}
		put(colliding)
		put(int64(c.RepelVector.X.Raw()))
		put(int64(c.RepelVector.Y.Raw()))

		if e.HasComponent(components.PlayerState) {
			st := components.PlayerState.Get(e)
			put(int64(st.Status))
			put(int64(st.Facing))
			put(int64(st.AnimationCounter))
		}
	})
	return h.Sum64()
}
