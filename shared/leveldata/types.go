// Package leveldata parses arena layouts from Tiled TMX files. It has no
// dependencies on ebitengine, donburi or resolv; pure data only.
package leveldata

import "github.com/automoto/samurai/fixed"

// ArenaData is everything the simulation needs from an arena file.
type ArenaData struct {
	Name   string
	Width  int // map size in pixels
	Height int
	// Map y of the ground line; world y is measured from it
	GroundY float64
	Spawns  []Spawn
}

// Spawn places one body in world coordinates (ground at y = 0, up negative).
// A zero Radius means the configured body radius.
type Spawn struct {
	Position fixed.Vec
	Radius   fixed.Fixed
	Player   bool
}
