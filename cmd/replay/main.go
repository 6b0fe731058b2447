package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/samurai/config"
	"github.com/automoto/samurai/input"
	"github.com/automoto/samurai/replay"
	"github.com/automoto/samurai/sim"
)

func main() {
	configPath := flag.String("config", "", "ini file overriding the built-in tuning")
	realtime := flag.Bool("realtime", false, "Pace playback at the tick rate instead of running flat out")
	tickRate := flag.Int("tickrate", 0, "Playback tick rate (0 = configured rate)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [flags] replay.json", os.Args[0])
	}
	path := flag.Arg(0)

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("[replay] %v", err)
		}
	}
	if *tickRate <= 0 {
		*tickRate = config.Physics.TickRate
	}

	r, err := replay.Load(path)
	if err != nil {
		log.Fatalf("[replay] %v", err)
	}
	log.Printf("[replay] %s: %d spawns, %d ticks", path, len(r.Spawns), len(r.Ticks))

	var w *sim.World
	if *realtime {
		w = playRealtime(r, *tickRate)
	} else {
		w = replay.Run(r)
	}

	got := w.Checksum()
	if got != r.Checksum {
		log.Printf("[replay] %v: recorded %x, simulated %x after %d ticks", replay.ErrChecksumMismatch, r.Checksum, got, w.Ticks())
		os.Exit(1)
	}
	log.Printf("[replay] ok: checksum %x after %d ticks", got, w.Ticks())
}

func playRealtime(r *replay.Replay, tickRate int) *sim.World {
	w := replay.NewWorld(r)
	loop := sim.NewLoop(w, tickRate, func(tick uint64) (input.Set, bool) {
		if tick >= uint64(len(r.Ticks)) {
			return 0, false
		}
		return r.Ticks[tick], true
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[replay] interrupted")
		loop.Stop()
	}()

	loop.Run()
	if w.Ticks() < uint64(len(r.Ticks)) {
		log.Fatalf("[replay] playback interrupted at tick %d of %d", w.Ticks(), len(r.Ticks))
	}
	return w
}
