// Package replay records the input sets fed to a world and re-simulates
// them. A replay is the spawns plus one input set per tick; the checksum of
// the final world state pins down the expected outcome.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/shared/leveldata"
	"github.com/automoto/samurai/sim"
	"github.com/automoto/samurai/systems"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Version is the file format written by Marshal.
const Version = 1

// MaxBufferSize bounds the input history a replay may ask for.
const MaxBufferSize = 1 << 12

var ErrChecksumMismatch = errors.New("replay: checksum mismatch")

type Replay struct {
	Version    int
	BufferSize int
	BroadPhase bool
	Spawns     []leveldata.Spawn
	Ticks      []input.Set
	Checksum   uint64
}

type spawnJSON struct {
	X      int32 `json:"x"`
	Y      int32 `json:"y"`
	Radius int32 `json:"radius"`
	Player bool  `json:"player"`
}

// Marshal encodes r. Fixed values are written as raw integers so the file
// reproduces the simulation bit for bit.
func Marshal(r *Replay) ([]byte, error) {
	data := []byte(`{}`)
	var err error
	set := func(path string, v interface{}) {
		if err == nil {
			data, err = sjson.SetBytes(data, path, v)
		}
	}
	setRaw := func(path string, v interface{}) {
		if err != nil {
			return
		}
		var buf []byte
		if buf, err = json.Marshal(v); err == nil {
			data, err = sjson.SetRawBytes(data, path, buf)
		}
	}

	set("version", Version)
	set("bufferSize", r.BufferSize)
	set("broadPhase", r.BroadPhase)

	spawns := make([]spawnJSON, len(r.Spawns))
	for i, s := range r.Spawns {
		spawns[i] = spawnJSON{
			X:      s.Position.X.Raw(),
			Y:      s.Position.Y.Raw(),
			Radius: s.Radius.Raw(),
			Player: s.Player,
		}
	}
	setRaw("spawns", spawns)

	ticks := make([][]string, len(r.Ticks))
	for i, s := range r.Ticks {
		names := make([]string, 0, input.ActionCount)
		for _, a := range s.Actions() {
			names = append(names, a.String())
		}
		ticks[i] = names
	}
	setRaw("ticks", ticks)

	set("checksum", strconv.FormatUint(r.Checksum, 16))

	if err != nil {
		return nil, fmt.Errorf("encode replay: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a replay. Unknown action names are dropped like any other
// unrecognized input.
func Unmarshal(data []byte) (*Replay, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("decode replay: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	r := &Replay{
		Version:    int(doc.Get("version").Int()),
		BufferSize: int(doc.Get("bufferSize").Int()),
		BroadPhase: doc.Get("broadPhase").Bool(),
	}
	if r.Version != Version {
		return nil, fmt.Errorf("decode replay: unsupported version %d", r.Version)
	}
	if r.BufferSize == 0 {
		r.BufferSize = cfg.Input.BufferSize
	}
	if r.BufferSize < systems.MinHistory || r.BufferSize > MaxBufferSize {
		return nil, fmt.Errorf("decode replay: buffer size %d outside [%d, %d]", r.BufferSize, systems.MinHistory, MaxBufferSize)
	}

	doc.Get("spawns").ForEach(func(_, v gjson.Result) bool {
		r.Spawns = append(r.Spawns, leveldata.Spawn{
			Position: fixed.Vec{
				X: fixed.FromRaw(int32(v.Get("x").Int())),
				Y: fixed.FromRaw(int32(v.Get("y").Int())),
			},
			Radius: fixed.FromRaw(int32(v.Get("radius").Int())),
			Player: v.Get("player").Bool(),
		})
		return true
	})

	doc.Get("ticks").ForEach(func(_, tick gjson.Result) bool {
		var s input.Set
		tick.ForEach(func(_, name gjson.Result) bool {
			if a, ok := input.ParseAction(name.Str); ok {
				s = s.With(a)
			}
			return true
		})
		r.Ticks = append(r.Ticks, s)
		return true
	})

	if sum := doc.Get("checksum"); sum.Exists() {
		v, err := strconv.ParseUint(sum.Str, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("decode replay checksum: %w", err)
		}
		r.Checksum = v
	}
	return r, nil
}

func Save(path string, r *Replay) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write replay %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay %s: %w", path, err)
	}
	r, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// NewWorld builds the world a replay starts from.
func NewWorld(r *Replay) *sim.World {
	var opts []sim.Option
	if r.BroadPhase {
		opts = append(opts, sim.WithBroadPhase())
	}
	w := sim.NewWorld(input.NewBuffer(r.BufferSize), opts...)
	for _, s := range r.Spawns {
		w.Spawn(s)
	}
	return w
}

// Run re-simulates every tick and returns the final world.
func Run(r *Replay) *sim.World {
	w := NewWorld(r)
	for _, s := range r.Ticks {
		w.Step(s)
	}
	return w
}

// Verify re-simulates r and compares the result with its checksum.
func Verify(r *Replay) error {
	got := Run(r).Checksum()
	if got != r.Checksum {
		return fmt.Errorf("%w: recorded %x, simulated %x", ErrChecksumMismatch, r.Checksum, got)
	}
	return nil
}
