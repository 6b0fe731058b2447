// Package input holds the symbolic player inputs and the bounded input
// history shared between the input producer and the simulation tick.
package input

import "strings"

// Action is one discrete symbolic input.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Jump
	Crouch
	Attack
	Quit
	ActionCount // Must be last
)

var actionNames = [ActionCount]string{
	MoveLeft:  "MoveLeft",
	MoveRight: "MoveRight",
	Jump:      "Jump",
	Crouch:    "Crouch",
	Attack:    "Attack",
	Quit:      "Quit",
}

func (a Action) Valid() bool { return a < ActionCount }

func (a Action) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return actionNames[a]
}

// ParseAction maps a name (case-insensitive) back to its Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(a), true
		}
	}
	return 0, false
}
