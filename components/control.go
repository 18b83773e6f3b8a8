package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ControlData is the per-tick intent written by the input collaborator. MoveInput is consumed
// by the acceleration planner; Facing2D keeps the last non-zero MoveInput.
type ControlData struct {
	MoveInput   mgl64.Vec2
	Facing2D    mgl64.Vec2
	JumpPressed bool
}

var Control = donburi.NewComponentType[ControlData]()
