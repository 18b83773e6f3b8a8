package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AccelerationData is recomputed every tick by the planner.
type AccelerationData struct {
	GroundAcceleration mgl64.Vec2
	GroundFriction     float64
	AirAcceleration    float64
}

var Acceleration = donburi.NewComponentType[AccelerationData]()
