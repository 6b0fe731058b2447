package components

import (
	"github.com/automoto/samurai/input"
	"github.com/yohamta/donburi"
)

// InputBufferData points at the history shared with the input producer.
type InputBufferData struct {
	Buffer *input.Buffer
}

var InputBuffer = donburi.NewComponentType[InputBufferData]()
