package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/samurai/assets"
	"github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fonts"
	"github.com/automoto/samurai/scenes"
	"github.com/automoto/samurai/settings"
	"github.com/automoto/samurai/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "ini file overriding the built-in tuning")
	recordPath := flag.String("record", "", "Write a replay of the session here on quit")
	arenaName := flag.String("arena", assets.DefaultArena, "Arena to load")
	broadPhase := flag.Bool("broadphase", false, "Use the spatial hash broad phase (default from config)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var store settings.Store
	if m, err := settings.Open("samurai"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = m
		saved, err := settings.Load(store)
		if err != nil {
			log.Printf("Warning: %v", err)
		}
		saved.Apply()
	}

	arena, err := loadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle("samurai - " + arena.Name)
	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetTPS(config.Physics.TickRate)

	scene := scenes.NewArenaScene(scenes.ArenaOptions{
		Arena:      arena,
		BroadPhase: *broadPhase || config.BroadPhase.Enabled,
		RecordPath: *recordPath,
		Settings:   store,
	})
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

func loadArena(name string) (*leveldata.ArenaData, error) {
	loader := assets.NewArenaLoader()
	names := loader.MustLoadArenas()
	log.Printf("[assets] arenas: %v", names)
	return loader.Arena(name)
}
