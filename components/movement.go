package components

import (
	"github.com/automoto/samurai/fixed"
	"github.com/yohamta/donburi"
)

// MovementStatsData holds the tuning a fighter was created with. Nothing
// writes to it after spawn.
type MovementStatsData struct {
	MaxSpeed           fixed.Fixed
	GroundAcceleration fixed.Fixed
	Friction           fixed.Fixed
	Gravity            fixed.Fixed
	JumpPower          fixed.Fixed
	SuperjumpPower     fixed.Fixed
	AirAcceleration    fixed.Fixed
	AirMaxSpeed        fixed.Fixed
}

var MovementStats = donburi.NewComponentType[MovementStatsData]()
