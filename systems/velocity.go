package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/shared/gamemath"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// airControl scales ground acceleration while airborne.
const airControl = 0.5

// UpdateVelocity advances ground and air speed from the planned acceleration.
func UpdateVelocity(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !requireComponents("velocity", e, components.Physics, components.Acceleration, components.Values) {
			return
		}
		physics := components.Physics.Get(e)
		accel := components.Acceleration.Get(e)
		values := components.Values.Get(e)
		IntegrateVelocity(physics, *accel, values.CharacterValues)
	})
}

// IntegrateVelocity applies one tick of acceleration, friction and gravity. A grounded
// character with positive air acceleration launches into the air; loss of ground contact is
// left to the ground follower.
func IntegrateVelocity(physics *components.PhysicsData, accel components.AccelerationData, values *config.CharacterValues) {
	if physics.AirSpeed == nil {
		physics.AirSpeed = components.InAir{Speed: 0}
	}
	pre := physics.AirSpeed

	if _, ok := pre.(components.Grounded); ok && accel.AirAcceleration > 0 {
		physics.AirSpeed = components.InAir{Speed: accel.AirAcceleration}
	}

	groundAccel := accel.GroundAcceleration
	if _, ok := pre.(components.InAir); ok {
		groundAccel = groundAccel.Mul(airControl)
	}
	physics.GroundSpeed = gamemath.ClampLength(physics.GroundSpeed.Add(groundAccel), values.TopSpeed)

	switch s := pre.(type) {
	case components.Grounded:
		if accel.GroundFriction > 0 {
			physics.GroundSpeed = gamemath.ApplyFriction2D(physics.GroundSpeed, accel.GroundFriction)
		}
	case components.InAir:
		speed := s.Speed + accel.AirAcceleration + values.Gravity
		physics.AirSpeed = components.InAir{Speed: gamemath.ClampSpeed(speed, values.TopSpeed)}
	}
}
