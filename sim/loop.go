package sim

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/samurai/input"
)

// Producer supplies the input set for the next tick. Returning false ends
// the loop.
type Producer func(tick uint64) (input.Set, bool)

// Loop drives a World in real time for headless playback.
type Loop struct {
	world    *World
	tickRate int
	produce  Producer
	stopOnce sync.Once
	stopChan chan struct{}
}

func NewLoop(world *World, tickRate int, produce Producer) *Loop {
	return &Loop{
		world:    world,
		tickRate: tickRate,
		produce:  produce,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called or the producer runs dry.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("[sim] loop stopped")
			return
		case <-ticker.C:
			if !l.tick() {
				log.Printf("[sim] input exhausted after %d ticks", l.world.Ticks())
				return
			}
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() bool {
	set, ok := l.produce(l.world.Ticks())
	if !ok {
		return false
	}
	l.world.Step(set)
	return true
}
