package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnvironment publishes the collider poses staged last tick so every query this tick
// reads one snapshot. Must run first.
func UpdateEnvironment(ecs *ecs.ECS) {
	env, ok := getEnvironment(ecs)
	if !ok {
		logger.For("environment").Warn("no environment to commit")
		return
	}
	if err := env.Commit(); err != nil {
		logger.For("environment").Debug("colliders left the indexed bounds", "err", err)
	}
}

// SyncColliders stages every body's pose for the next commit. Must run last.
func SyncColliders(ecs *ecs.ECS) {
	env, ok := getEnvironment(ecs)
	if !ok {
		return
	}
	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		id := components.Collider.Get(e).ID
		if err := env.SetTransform(id, body.Position, body.Rotation); err != nil {
			logger.For("environment").Warn("collider out of sync", "entity", e.Entity(), "err", err)
		}
	})
}
