package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn resets characters that fell below the kill plane to their checkpoint.
func UpdateRespawn(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Checkpoint) || !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if body.Position[1] >= config.Environment.KillY {
			return
		}
		checkpoint := components.Checkpoint.Get(e)
		Respawn(e, checkpoint)
		logger.For("respawn").Info("character fell out of the world",
			"entity", e.Entity(), "respawns", checkpoint.Respawns)
	})
}

// Respawn puts a character back at its checkpoint at rest.
func Respawn(e *donburi.Entry, checkpoint *components.CheckpointData) {
	checkpoint.Respawns++
	body := components.Body.Get(e)
	body.Position = checkpoint.Spawn
	body.LinearVelocity = mgl64.Vec3{}
	if e.HasComponent(components.Physics) {
		components.Physics.SetValue(e, components.NewPhysicsData(checkpoint.Grounded))
	}
	if e.HasComponent(components.Acceleration) {
		components.Acceleration.SetValue(e, components.AccelerationData{})
	}
	if e.HasComponent(components.Control) {
		control := components.Control.Get(e)
		control.MoveInput = mgl64.Vec2{}
		control.JumpPressed = false
	}
}
