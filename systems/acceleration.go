package systems

import (
	"math"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/shared/gamemath"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAcceleration turns each character's control intent into this tick's acceleration.
// Must run after the input collaborator and before UpdateVelocity.
func UpdateAcceleration(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !requireComponents("acceleration", e, components.Control, components.Physics,
			components.Values, components.Acceleration, components.AnimationFlags) {
			return
		}
		updateSingleAcceleration(e)
	})
}

func updateSingleAcceleration(e *donburi.Entry) {
	control := components.Control.Get(e)
	physics := components.Physics.Get(e)
	values := components.Values.Get(e)
	accel := components.Acceleration.Get(e)
	flags := components.AnimationFlags.Get(e)

	next, skidding := PlanAcceleration(control, physics, *accel, values.CharacterValues)
	*accel = next
	flags.Skidding = skidding
}

// PlanAcceleration computes the acceleration for one tick. It consumes control.MoveInput and
// updates control.Facing2D. prev is last tick's acceleration; an airborne character holding
// jump keeps its air acceleration.
func PlanAcceleration(control *components.ControlData, physics *components.PhysicsData, prev components.AccelerationData, values *config.CharacterValues) (components.AccelerationData, bool) {
	var out components.AccelerationData
	skidding := false
	grounded := physics.IsGrounded()

	if control.MoveInput != (mgl64.Vec2{}) {
		control.Facing2D = control.MoveInput

		amount := values.AirAccelerationSpeed
		if grounded {
			amount = values.AccelerationSpeed
		}
		if physics.GroundSpeed != (mgl64.Vec2{}) &&
			gamemath.AngleBetween2(physics.GroundSpeed, control.MoveInput) > math.Pi/2 {
			amount += values.DecelerationSpeed
			skidding = true
		}
		out.GroundAcceleration = control.MoveInput.Mul(amount)
		out.GroundFriction = 0
		control.MoveInput = mgl64.Vec2{}
	} else {
		out.GroundAcceleration = mgl64.Vec2{}
		out.GroundFriction = values.FrictionSpeed
	}

	switch {
	case grounded && control.JumpPressed:
		out.AirAcceleration = values.JumpSpeed
	case grounded:
		out.AirAcceleration = 0
	case !control.JumpPressed:
		// Also cancels any other airborne acceleration while jump is up.
		out.AirAcceleration = 0
	default:
		out.AirAcceleration = prev.AirAcceleration
	}

	return out, skidding
}
