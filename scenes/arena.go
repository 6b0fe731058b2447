package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/replay"
	"github.com/automoto/samurai/settings"
	"github.com/automoto/samurai/shared/leveldata"
	"github.com/automoto/samurai/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// ArenaOptions configures an ArenaScene.
type ArenaOptions struct {
	Arena      *leveldata.ArenaData
	BroadPhase bool
	RecordPath string         // replay written on quit when set
	Settings   settings.Store // nil disables persistence
}

// ArenaScene runs one simulation fed from the keyboard and gamepads.
type ArenaScene struct {
	opts     ArenaOptions
	ecs      *ecs.ECS
	world    *sim.World
	recorder *replay.Recorder
	glows    map[donburi.Entity]*glow
	last     input.Set
	quit     bool
	once     sync.Once
}

// glow fades a body's contact highlight out after the contact ends.
type glow struct {
	tween *gween.Tween
	alpha float32
}

func NewArenaScene(opts ArenaOptions) *ArenaScene {
	return &ArenaScene{opts: opts}
}

func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)
	as.ecs.Update()
	if as.quit {
		as.finish()
		return ebiten.Termination
	}
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	var simOpts []sim.Option
	if as.opts.BroadPhase {
		simOpts = append(simOpts, sim.WithBroadPhase())
	}
	as.world = sim.NewWorld(input.NewBuffer(cfg.Input.BufferSize), simOpts...)
	as.world.SpawnArena(as.opts.Arena)
	as.recorder = replay.NewRecorder(cfg.Input.BufferSize, as.opts.BroadPhase, as.opts.Arena.Spawns)
	as.glows = map[donburi.Entity]*glow{}

	as.ecs = ecs.NewECS(as.world.Donburi())

	as.ecs.AddSystem(as.updateHotkeys)
	as.ecs.AddSystem(as.updateSimulation)
	as.ecs.AddSystem(as.updateGlows)

	as.ecs.AddRenderer(layerWorld, as.drawGround)
	as.ecs.AddRenderer(layerWorld, as.drawBodies)
	as.ecs.AddRenderer(layerWorld, as.drawCollisionDebug)
	as.ecs.AddRenderer(layerHUD, as.drawHUD)

	log.Printf("[arena] %s: %d spawns, broad phase %v", as.opts.Arena.Name, len(as.opts.Arena.Spawns), as.opts.BroadPhase)
}

// updateSimulation samples input once and advances the world one tick.
func (as *ArenaScene) updateSimulation(_ *ecs.ECS) {
	set := input.Normalize(PollInput())
	if set.Has(input.Quit) {
		as.quit = true
		return
	}
	as.last = set
	as.recorder.Record(set)
	as.world.Step(set)
}

func (as *ArenaScene) updateHotkeys(_ *ecs.ECS) {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.ShowCollision = !cfg.Debug.ShowCollision
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		cfg.C.Scale = settings.NextScale(cfg.C.Scale)
		ebiten.SetWindowSize(cfg.C.Width*cfg.C.Scale, cfg.C.Height*cfg.C.Scale)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowFPS = !cfg.Debug.ShowFPS
		changed = true
	}
	if changed {
		as.saveSettings()
	}
}

func (as *ArenaScene) saveSettings() {
	if as.opts.Settings == nil {
		return
	}
	if err := settings.Save(as.opts.Settings, settings.Current()); err != nil {
		log.Printf("[arena] warning: %v", err)
	}
}

// finish writes the recorded session out when asked to.
func (as *ArenaScene) finish() {
	if as.opts.RecordPath == "" {
		return
	}
	r := as.recorder.Replay(as.world)
	if err := replay.Save(as.opts.RecordPath, r); err != nil {
		log.Printf("[arena] replay not saved: %v", err)
		return
	}
	log.Printf("[arena] wrote %d ticks to %s (checksum %x)", len(r.Ticks), as.opts.RecordPath, r.Checksum)
}
