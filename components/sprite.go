package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// SpriteData is the presentation state derived from a fighter each tick.
// Frame is the source rectangle inside sheet Sheet.
type SpriteData struct {
	Sheet   int
	Frame   image.Rectangle
	Wrap    int
	Rate    int
	Counter int
	Flip    bool
	Glow    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
