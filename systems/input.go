package systems

import (
	"math"

	"github.com/automoto/degauss/components"
	cfg "github.com/automoto/degauss/config"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the InputData singleton.
// Must run BEFORE UpdateControl in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.StickX, input.StickY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if x, y, ok := readLeftStick(gamepadIDs); ok {
		input.StickX, input.StickY = x, y
		gamepadUsed = true
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// readLeftStick returns the first left stick outside the deadzone.
func readLeftStick(gamepads []ebiten.GamepadID) (x, y float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(h, v) > deadzone {
			return h, v, true
		}
	}
	return 0, 0, false
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

// UpdateControl writes the sandbox input into every character's Control once per tick. Screen
// up maps to -Z.
func UpdateControl(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	move := MoveVector(input)
	jump := GetAction(input, cfg.ActionJump).JustPressed

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Control) {
			return
		}
		control := components.Control.Get(e)
		control.MoveInput = move
		control.JumpPressed = jump
	})
}

// MoveVector maps digital and analog input to a ground-plane vector no longer than 1.
func MoveVector(input *components.InputData) mgl64.Vec2 {
	var move mgl64.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		move[0]--
	}
	if input.Current[cfg.ActionMoveRight] {
		move[0]++
	}
	if input.Current[cfg.ActionMoveForward] {
		move[1]--
	}
	if input.Current[cfg.ActionMoveBack] {
		move[1]++
	}
	if input.StickX != 0 || input.StickY != 0 {
		move = mgl64.Vec2{input.StickX, input.StickY}
	}
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	return move
}
