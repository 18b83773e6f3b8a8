package systems

import (
	"math"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/spatial"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cushionEpsilon is the cushion error tolerated without correction.
const cushionEpsilon = 1e-3

// UpdateGroundContact holds grounded characters at the cushion distance from the surface
// below them. Runs after the bodies are integrated.
func UpdateGroundContact(ecs *ecs.ECS) {
	env, ok := getEnvironment(ecs)
	if !ok {
		logger.For("cushion").Warn("no environment, skipping ground contact")
		return
	}
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !requireComponents("cushion", e, components.Physics, components.Body,
			components.Values, components.Collider) {
			return
		}
		CorrectGroundContact(env, components.Collider.Get(e).ID, components.Body.Get(e),
			components.Physics.Get(e), components.Values.Get(e).CharacterValues)
	})
}

// CorrectGroundContact moves a grounded body along the ground normal by the difference
// between the measured and the desired distance. It reports whether the body moved.
func CorrectGroundContact(q spatial.Query, self spatial.ColliderID, body *components.BodyData, physics *components.PhysicsData, values *config.CharacterValues) bool {
	grounded, ok := physics.AirSpeed.(components.Grounded)
	if !ok {
		return false
	}
	slope := grounded.SlopeQuat
	if slope == (mgl64.Quat{}) {
		slope = mgl64.QuatIdent()
	}
	dir := slope.Rotate(physics.GroundCastDirection)

	hit, ok := q.CastShape(spatial.Sphere{Radius: values.GroundDetectionRadius},
		body.Position, mgl64.QuatIdent(), dir, values.CushionRadius, terrainFilter(self))
	if !ok {
		return false
	}
	excess := hit.Distance - values.DesiredDistanceFromGround()
	if math.Abs(excess) <= cushionEpsilon {
		return false
	}
	body.Position = body.Position.Sub(hit.Normal.Mul(excess))
	return true
}
