package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyData is the kinematic transform the host integrates. LinearVelocity is in units per
// second.
type BodyData struct {
	Position       mgl64.Vec3
	Rotation       mgl64.Quat
	LinearVelocity mgl64.Vec3
}

var Body = donburi.NewComponentType[BodyData]()
