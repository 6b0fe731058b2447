package input

import (
	"fmt"
	"sync"
)

// Buffer is a fixed-capacity ring of input sets. Index 0 is always the most
// recently pushed set; pushing overwrites the oldest slot. Every method is
// atomic with respect to the others, so a producer goroutine and the tick may
// share one Buffer.
type Buffer struct {
	mu     sync.Mutex
	sets   []Set
	oldest int // next slot to overwrite
}

// NewBuffer allocates a buffer holding capacity sets, all empty.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		panic(fmt.Sprintf("input: buffer capacity must be positive, got %d", capacity))
	}
	return &Buffer{sets: make([]Set, capacity)}
}

func (b *Buffer) Cap() int { return len(b.sets) }

// Push records the set for the current tick.
func (b *Buffer) Push(s Set) {
	b.mu.Lock()
	b.sets[b.oldest] = s.Known()
	b.oldest = (b.oldest + 1) % len(b.sets)
	b.mu.Unlock()
}

// Get returns the set pushed i ticks ago. i must be in [0, Cap()).
func (b *Buffer) Get(i int) Set {
	if i < 0 || i >= len(b.sets) {
		panic(fmt.Sprintf("input: history index %d outside buffer of %d", i, len(b.sets)))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sets[b.slot(i)]
}

func (b *Buffer) MostRecent() Set { return b.Get(0) }

// GetAll snapshots the whole history, most recent first.
func (b *Buffer) GetAll() []Set {
	out := make([]Set, len(b.sets))
	b.mu.Lock()
	for i := range out {
		out[i] = b.sets[b.slot(i)]
	}
	b.mu.Unlock()
	return out
}

// slot maps a history index to a ring position. Caller holds mu.
func (b *Buffer) slot(i int) int {
	n := len(b.sets)
	return (b.oldest + n - i - 1) % n
}
