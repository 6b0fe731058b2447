package components

import (
	"github.com/automoto/samurai/config"
	"github.com/yohamta/donburi"
)

type PlayerStateData struct {
	Status config.Status
	Facing config.Direction
	// Ticks spent in the current timed state
	AnimationCounter uint32
}

var PlayerState = donburi.NewComponentType[PlayerStateData]()
