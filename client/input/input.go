package input

import (
	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps command names to the keys that hold them.
var Bindings = map[string][]ebiten.Key{
	"move_left":  {ebiten.KeyArrowLeft, ebiten.KeyA},
	"move_right": {ebiten.KeyArrowRight, ebiten.KeyD},
	"move_up":    {ebiten.KeyArrowUp, ebiten.KeyW},
	"move_down":  {ebiten.KeyArrowDown, ebiten.KeyS},
	"attack":     {ebiten.KeySpace, ebiten.KeyJ},
	"pause":      {ebiten.KeyP, ebiten.KeyEscape},
	"restart":    {ebiten.KeyR, ebiten.KeyEnter},
}

// ReadInputState returns the commands held this frame. Edge detection happens in the simulation.
func ReadInputState() gametypes.InputState {
	state := gametypes.NewInputState()
	for name, keys := range Bindings {
		if !anyKeyPressed(keys) {
			continue
		}
		state = WithNamedCommand(state, name)
	}
	state = readGamepads(state)
	if IsPositiveJustPressed() {
		state = state.With(gametypes.CommandRestart)
	}
	return state
}

// WithNamedCommand adds the named command to the state. Unknown names are ignored.
func WithNamedCommand(state gametypes.InputState, name string) gametypes.InputState {
	command, ok := gametypes.ParseCommand(name)
	if !ok {
		log.Trace("Ignoring unknown command %q", name)
		return state
	}
	return state.With(command)
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func readGamepads(state gametypes.InputState) gametypes.InputState {
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(g) {
			continue
		}
		buttons := map[ebiten.StandardGamepadButton]gametypes.Command{
			ebiten.StandardGamepadButtonLeftLeft:    gametypes.CommandMoveLeft,
			ebiten.StandardGamepadButtonLeftRight:   gametypes.CommandMoveRight,
			ebiten.StandardGamepadButtonLeftTop:     gametypes.CommandMoveUp,
			ebiten.StandardGamepadButtonLeftBottom:  gametypes.CommandMoveDown,
			ebiten.StandardGamepadButtonRightLeft:   gametypes.CommandAttack,
			ebiten.StandardGamepadButtonCenterRight: gametypes.CommandPause,
		}
		for button, command := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(g, button) {
				state = state.With(command)
			}
		}
	}
	return state
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle mouse, touch and gamepad inputs on the end screens.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else {
			// The button 0 might not be the A button.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
		}
	}
	return false
}

// IsDebugToggleJustPressed returns true when the debug overlay key was just pressed.
func IsDebugToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
