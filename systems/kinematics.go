package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovers advances every platform track by one fixed step.
func UpdateMovers(ecs *ecs.ECS) {
	dt := config.Engine.DeltaTime()
	components.Mover.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		SteerMover(components.Mover.Get(e), components.Body.Get(e), dt)
	})
}

// SteerMover advances the track by dt and sets the velocity that carries the platform onto the
// tweened point within that step. A finished track starts over from the anchor.
func SteerMover(m *components.MoverData, body *components.BodyData, dt float64) {
	if m.Track == nil || dt <= 0 {
		body.LinearVelocity = mgl64.Vec3{}
		return
	}
	t, _, done := m.Track.Update(float32(dt))
	if done {
		m.Track.Reset()
	}
	target := m.Anchor.Add(m.Travel.Mul(float64(t)))
	body.LinearVelocity = target.Sub(body.Position).Mul(1 / dt)
}

// IntegrateBodies moves every kinematic body by its linear velocity for one fixed step.
func IntegrateBodies(ecs *ecs.ECS) {
	dt := config.Engine.DeltaTime()
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Position = body.Position.Add(body.LinearVelocity.Mul(dt))
	})
}
