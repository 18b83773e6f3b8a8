package systems

import (
	"math"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/shared/gamemath"
	"github.com/automoto/degauss/spatial"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// directionSpeedThreshold is the ground speed above which the facing follows motion.
	directionSpeedThreshold = 1.0
	// wallRunAngle is the slope angle beyond which the character probes for walls.
	wallRunAngle = math.Pi / 4
	// groundProbeOvershoot extends the ground probe past the cushion.
	groundProbeOvershoot = 0.1
)

// UpdateGroundFollower maps ground motion onto the terrain and sets each character's linear
// velocity. It owns the airborne and grounded transitions driven by terrain contact.
func UpdateGroundFollower(ecs *ecs.ECS) {
	env, ok := getEnvironment(ecs)
	if !ok {
		logger.For("ground").Warn("no environment, skipping ground follower")
		return
	}
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !requireComponents("ground", e, components.Physics, components.Body,
			components.Values, components.Collider, components.FloorInfo) {
			return
		}
		physics := components.Physics.Get(e)
		body := components.Body.Get(e)
		values := components.Values.Get(e)
		collider := components.Collider.Get(e)
		floor := components.FloorInfo.Get(e)
		FollowGround(env, collider.ID, body, physics, values.CharacterValues, floor)
	})
}

// FollowGround runs one ground-following pass for a character whose collider is self.
func FollowGround(q spatial.Query, self spatial.ColliderID, body *components.BodyData, physics *components.PhysicsData, values *config.CharacterValues, floor *components.FloorInfoData) {
	filter := terrainFilter(self)
	*floor = components.FloorInfoData{}

	if physics.AirSpeed == nil {
		physics.AirSpeed = components.InAir{Speed: 0}
	}
	if _, ok := gamemath.SafeNormalize3(physics.GroundCastDirection); !ok {
		physics.GroundCastDirection = gamemath.Down
	}

	// Facing follows motion only above a small speed.
	if physics.GroundSpeed.Len() > directionSpeedThreshold {
		if dir, ok := gamemath.SafeNormalize2(physics.GroundSpeed); ok {
			physics.GroundDirection = dir
		}
	}

	castRotation := castRotationOf(physics)
	direction := castRotation.Rotate(gamemath.Lift(physics.GroundDirection))

	updateWallRunning(q, filter, body, physics, values)

	// Wall-collision absorption, posted by the collision stage last tick.
	if normal, ok := physics.WallCollision.Take(); ok {
		local := castRotation.Inverse().Rotate(normal)
		physics.GroundSpeed = gamemath.AbsorbWallImpact(physics.GroundSpeed, gamemath.Flatten(local))
	}

	// Obstacle probe.
	obstacleDistance := math.Max(0, values.CushionRadius-values.ObstacleDetectionRadius)
	_, nearObstacle := q.CastShape(spatial.Sphere{Radius: values.ObstacleDetectionRadius},
		body.Position, mgl64.QuatIdent(), direction, obstacleDistance, filter)
	floor.NearObstacle = nearObstacle

	direction = followSlope(q, filter, body, physics, values, direction, nearObstacle, floor)
	probeGround(q, filter, body, physics, values, floor)

	// Final velocity.
	velocity := direction.Mul(physics.GroundSpeed.Len())
	if air, ok := physics.AirSpeed.(components.InAir); ok {
		velocity[1] = air.Speed
		physics.GroundCastDirection = gamemath.Down
	}
	if gamemath.IsFiniteVec3(velocity) {
		body.LinearVelocity = velocity
	}
	floor.Direction = direction

	castRot, ok1 := castRotationChecked(physics)
	facing, ok2 := gamemath.RotationArc(gamemath.Forward, gamemath.Lift(physics.GroundDirection))
	if ok1 && ok2 {
		if r := castRot.Mul(facing); gamemath.IsFiniteQuat(r) {
			physics.OverallRotation = r
		}
	}
}

// castRotationOf returns the rotation from the down reference to the current cast direction,
// preferring the stored ceiling-run rotation over the ambiguous half turn.
func castRotationOf(physics *components.PhysicsData) mgl64.Quat {
	q, _ := castRotationChecked(physics)
	return q
}

func castRotationChecked(physics *components.PhysicsData) (mgl64.Quat, bool) {
	if physics.CeilingRunQuat != nil && physics.GroundCastDirection.ApproxEqualThreshold(gamemath.Up, 1e-6) {
		return *physics.CeilingRunQuat, true
	}
	return gamemath.RotationArc(gamemath.Down, physics.GroundCastDirection)
}

// updateWallRunning probes along the current velocity on steep ground and moves the cast
// direction onto a wall, or from a wall onto the floor or ceiling.
func updateWallRunning(q spatial.Query, filter spatial.Filter, body *components.BodyData, physics *components.PhysicsData, values *config.CharacterValues) {
	grounded, ok := physics.AirSpeed.(components.Grounded)
	if !ok || grounded.Angle <= wallRunAngle {
		return
	}
	dir, ok := gamemath.SafeNormalize3(body.LinearVelocity)
	if !ok {
		return
	}
	hit, ok := q.CastRay(body.Position, dir, values.CushionRadius, true, filter)
	if !ok {
		return
	}
	candidate := hit.Normal.Mul(-1)

	if physics.WallRunning {
		wall := physics.GroundCastDirection
		physics.WallRunning = false
		if candidate[1] > 0 {
			physics.GroundCastDirection = gamemath.Up
			onto, ok1 := gamemath.RotationArc(gamemath.Down, wall)
			up, ok2 := gamemath.RotationArc(wall, gamemath.Up)
			if ok1 && ok2 {
				ceiling := up.Mul(onto)
				physics.CeilingRunQuat = &ceiling
			}
			return
		}
		physics.GroundCastDirection = gamemath.Down
		physics.CeilingRunQuat = nil
		return
	}

	horizontal, ok := gamemath.SafeNormalize3(mgl64.Vec3{candidate[0], 0, candidate[2]})
	if !ok {
		physics.GroundCastDirection = gamemath.Down
		physics.WallRunning = false
		return
	}
	physics.GroundCastDirection = horizontal
	physics.WallRunning = true
}

// followSlope samples the surface ahead of and behind the character and rotates the movement
// and cast directions onto it. It returns the possibly rotated direction.
func followSlope(q spatial.Query, filter spatial.Filter, body *components.BodyData, physics *components.PhysicsData, values *config.CharacterValues, direction mgl64.Vec3, nearObstacle bool, floor *components.FloorInfoData) mgl64.Vec3 {
	spacing := gamemath.ProbeSpacing(nearObstacle, values.CushionRadius, values.ObstacleDetectionRadius)
	cast := physics.GroundCastDirection

	front, frontOK := q.CastRay(body.Position.Add(direction.Mul(spacing)), cast, values.SlopeCastDistance, true, filter)
	back, backOK := q.CastRay(body.Position.Sub(direction.Mul(spacing)), cast, values.SlopeCastDistance, true, filter)
	if frontOK {
		p := front.Point
		floor.FrontContact = &p
	}
	if backOK {
		p := back.Point
		floor.BackContact = &p
	}
	if !frontOK || !backOK {
		return direction
	}

	floor.CastLength = math.Max(front.Distance, back.Distance)
	rot, angle, ok := gamemath.SlopeRotation(direction, front.Point, back.Point)
	if !ok {
		return direction
	}
	floor.Slope = front.Point.Sub(back.Point).Normalize()

	rotatedCast, ok := gamemath.SafeNormalize3(rot.Rotate(cast))
	if !ok {
		return direction
	}
	physics.GroundCastDirection = rotatedCast
	if _, grounded := physics.AirSpeed.(components.Grounded); grounded {
		physics.AirSpeed = components.Grounded{Angle: angle, SlopeQuat: rot}
	}
	return rot.Rotate(direction)
}

// probeGround sweeps the ground sphere along the cast direction and applies the landing and
// leaving-ground transitions.
func probeGround(q spatial.Query, filter spatial.Filter, body *components.BodyData, physics *components.PhysicsData, values *config.CharacterValues, floor *components.FloorInfoData) {
	desired := values.DesiredDistanceFromGround()
	hit, ok := q.CastShape(spatial.Sphere{Radius: values.GroundDetectionRadius},
		body.Position, mgl64.QuatIdent(), physics.GroundCastDirection, desired+groundProbeOvershoot, filter)
	floor.GroundHit = ok
	if ok {
		floor.GroundDistance = hit.Distance
		if air, inAir := physics.AirSpeed.(components.InAir); inAir && air.Speed <= 0 && hit.Distance <= desired {
			physics.AirSpeed = components.NewGrounded()
		}
		return
	}

	if _, grounded := physics.AirSpeed.(components.Grounded); !grounded {
		return
	}
	out := body.LinearVelocity
	physics.AirSpeed = components.InAir{Speed: out[1]}
	physics.GroundSpeed = gamemath.ClampLength(gamemath.Flatten(out), values.TopSpeed)
	physics.WallRunning = false
	physics.GroundCastDirection = gamemath.Down
	physics.CeilingRunQuat = nil
}
