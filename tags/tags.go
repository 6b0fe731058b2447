package tags

import "github.com/yohamta/donburi"

var (
	// Player marks fighters driven by the input buffer.
	Player = donburi.NewTag().SetName("Player")
	Body   = donburi.NewTag().SetName("Body")
)

// Resolv tags for the broad phase
const (
	ResolvBody = "body"
)
