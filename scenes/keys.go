package scenes

import (
	"github.com/automoto/samurai/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons that produce one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its physical inputs.
var Bindings = [input.ActionCount]Binding{
	input.MoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	input.MoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	input.Jump: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	input.Crouch: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	input.Attack: {
		Keys: []ebiten.Key{ebiten.KeyU},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	input.Quit: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyX},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads the keyboard and every standard-layout gamepad into a set.
func PollInput() input.Set {
	var set input.Set
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for a, binding := range Bindings {
		action := input.Action(a)
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				set = set.With(action)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					set = set.With(action)
				}
			}
		}
	}
	return set
}
