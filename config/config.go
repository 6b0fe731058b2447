package config

import (
	"image/color"

	"github.com/automoto/samurai/fixed"
)

// PlayerConfig contains the movement tuning given to every new fighter.
// Values are whole pixels per tick (speeds) or pixels per tick² (rates).
type PlayerConfig struct {
	MaxSpeed           fixed.Fixed
	GroundAcceleration fixed.Fixed
	Friction           fixed.Fixed
	Gravity            fixed.Fixed
	JumpPower          fixed.Fixed
	SuperjumpPower     fixed.Fixed
	AirAcceleration    fixed.Fixed
	AirMaxSpeed        fixed.Fixed

	// Collision circle, relative to the body position
	BodyRadius fixed.Fixed
	BodyOffset fixed.Vec
	RepelSpeed fixed.Fixed
}

// PhysicsConfig contains simulation-wide constants
type PhysicsConfig struct {
	TickRate          int    // ticks per second
	AttackTotalFrames uint32 // ticks an attack lasts before reverting to Idle
}

// InputConfig contains input history configuration
type InputConfig struct {
	BufferSize int // sets kept in the ring buffer
	// Ticks before a jump press searched for Crouch to upgrade it to a superjump
	SuperjumpWindow int
}

// AnimationConfig contains presentation constants
type AnimationConfig struct {
	FrameWidth   int
	FrameHeight  int
	FastRunSpeed fixed.Fixed // |speed.x| above which the run cycle plays at rate 1
}

// BroadPhaseConfig sizes the resolv spatial hash. World coordinates are shifted
// by Origin before being placed in the space, so the ground line sits at
// Origin.Y and x = 0 sits at Origin.X.
type BroadPhaseConfig struct {
	Enabled    bool
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
	OriginX    float64
	OriginY    float64
	Margin     float64 // pixels added around every circle's bounding box
}

// UIConfig contains demo client drawing configuration
type UIConfig struct {
	Background     color.RGBA
	BodyColor      color.RGBA
	PlayerColor    color.RGBA
	GlowColor      color.RGBA
	GroundColor    color.RGBA
	HUDTextColor   color.RGBA
	GlowFadeSecs   float32
	HUDFontSize    float64
	DebugFontSize  float64
	GroundLineSize float32
}

// DebugConfig contains debug overlays toggled at runtime
type DebugConfig struct {
	ShowCollision bool
	ShowFPS       bool
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Scale  int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Input InputConfig
var Animation AnimationConfig
var BroadPhase BroadPhaseConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate     = color.RGBA{R: 24, G: 26, B: 36, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
	}

	Player = PlayerConfig{
		MaxSpeed:           fixed.FromInt(17),
		GroundAcceleration: fixed.FromInt(3),
		Friction:           fixed.FromInt(1),
		Gravity:            fixed.FromInt(2),
		JumpPower:          fixed.FromInt(20),
		SuperjumpPower:     fixed.FromInt(28),
		AirAcceleration:    fixed.FromInt(1),
		AirMaxSpeed:        fixed.FromInt(10),

		BodyRadius: fixed.FromInt(32),
		BodyOffset: fixed.V(0, -32), // circle sits on the feet
		RepelSpeed: fixed.FromInt(4),
	}

	Physics = PhysicsConfig{
		TickRate:          60,
		AttackTotalFrames: 18,
	}

	Input = InputConfig{
		BufferSize:      10,
		SuperjumpWindow: 3,
	}

	Animation = AnimationConfig{
		FrameWidth:   128,
		FrameHeight:  128,
		FastRunSpeed: fixed.FromInt(6),
	}

	BroadPhase = BroadPhaseConfig{
		Enabled:    false,
		Width:      8192,
		Height:     4096,
		CellWidth:  64,
		CellHeight: 64,
		OriginX:    4096,
		OriginY:    3072,
		Margin:     2,
	}

	UI = UIConfig{
		Background:     Slate,
		BodyColor:      Grey,
		PlayerColor:    LightBlue,
		GlowColor:      Red,
		GroundColor:    DarkBlue,
		HUDTextColor:   White,
		GlowFadeSecs:   0.4,
		HUDFontSize:    16,
		DebugFontSize:  12,
		GroundLineSize: 2,
	}

	Debug = DebugConfig{
		ShowCollision: false,
		ShowFPS:       true,
	}
}
