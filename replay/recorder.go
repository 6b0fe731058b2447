package replay

import (
	"sync"

	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/shared/leveldata"
	"github.com/automoto/samurai/sim"
)

// Recorder captures every set pushed into a world during a session.
type Recorder struct {
	mu         sync.Mutex
	bufferSize int
	broadPhase bool
	spawns     []leveldata.Spawn
	ticks      []input.Set
}

func NewRecorder(bufferSize int, broadPhase bool, spawns []leveldata.Spawn) *Recorder {
	return &Recorder{
		bufferSize: bufferSize,
		broadPhase: broadPhase,
		spawns:     append([]leveldata.Spawn(nil), spawns...),
	}
}

// Record notes the set for the next tick. Call it for every set pushed.
func (r *Recorder) Record(s input.Set) {
	r.mu.Lock()
	r.ticks = append(r.ticks, s.Known())
	r.mu.Unlock()
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

// Replay freezes what was recorded, stamped with the world's checksum.
func (r *Recorder) Replay(w *sim.World) *Replay {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Replay{
		Version:    Version,
		BufferSize: r.bufferSize,
		BroadPhase: r.broadPhase,
		Spawns:     append([]leveldata.Spawn(nil), r.spawns...),
		Ticks:      append([]input.Set(nil), r.ticks...),
		Checksum:   w.Checksum(),
	}
}
