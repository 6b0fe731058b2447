package config

import (
	"fmt"

	"github.com/automoto/samurai/fixed"
	"gopkg.in/ini.v1"
)

// LoadFile overrides the current globals with values from an ini file. Keys
// that are missing or unparsable keep their current value. Section and key
// names are case-insensitive.
//
//	[movement]
//	max_speed = 17
//	jump_power = 20
func LoadFile(path string) error {
	options := ini.LoadOptions{
		Insensitive:             true,
		SkipUnrecognizableLines: true,
	}
	f, err := ini.LoadSources(options, path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	apply(f)
	return nil
}

// LoadBytes is LoadFile for an in-memory source.
func LoadBytes(data []byte) error {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true, SkipUnrecognizableLines: true}, data)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	apply(f)
	return nil
}

func apply(f *ini.File) {
	w := f.Section("window")
	C.Width = w.Key("width").MustInt(C.Width)
	C.Height = w.Key("height").MustInt(C.Height)
	C.Scale = w.Key("scale").MustInt(C.Scale)

	m := f.Section("movement")
	Player.MaxSpeed = fixedKey(m, "max_speed", Player.MaxSpeed)
	Player.GroundAcceleration = fixedKey(m, "ground_acceleration", Player.GroundAcceleration)
	Player.Friction = fixedKey(m, "friction", Player.Friction)
	Player.Gravity = fixedKey(m, "gravity", Player.Gravity)
	Player.JumpPower = fixedKey(m, "jump_power", Player.JumpPower)
	Player.SuperjumpPower = fixedKey(m, "superjump_power", Player.SuperjumpPower)
	Player.AirAcceleration = fixedKey(m, "air_acceleration", Player.AirAcceleration)
	Player.AirMaxSpeed = fixedKey(m, "air_max_speed", Player.AirMaxSpeed)
	Player.BodyRadius = fixedKey(m, "body_radius", Player.BodyRadius)
	Player.RepelSpeed = fixedKey(m, "repel_speed", Player.RepelSpeed)

	p := f.Section("physics")
	if n := p.Key("tick_rate").MustInt(Physics.TickRate); n > 0 {
		Physics.TickRate = n
	}
	Physics.AttackTotalFrames = uint32(p.Key("attack_total_frames").MustUint(uint(Physics.AttackTotalFrames)))

	in := f.Section("input")
	if n := in.Key("buffer_size").MustInt(Input.BufferSize); n >= 4 {
		Input.BufferSize = n
	}

	bp := f.Section("broadphase")
	BroadPhase.Enabled = bp.Key("enabled").MustBool(BroadPhase.Enabled)
	BroadPhase.CellWidth = bp.Key("cell_width").MustInt(BroadPhase.CellWidth)
	BroadPhase.CellHeight = bp.Key("cell_height").MustInt(BroadPhase.CellHeight)
	BroadPhase.Margin = bp.Key("margin").MustFloat64(BroadPhase.Margin)

	d := f.Section("debug")
	Debug.ShowCollision = d.Key("show_collision").MustBool(Debug.ShowCollision)
	Debug.ShowFPS = d.Key("show_fps").MustBool(Debug.ShowFPS)
}

func fixedKey(s *ini.Section, name string, current fixed.Fixed) fixed.Fixed {
	if !s.HasKey(name) {
		return current
	}
	return fixed.FromFloat(s.Key(name).MustFloat64(current.Float()))
}
