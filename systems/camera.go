package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the sandbox view toward the first character.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	characterEntry, ok := tags.Character.First(ecs.World)
	if !ok || !characterEntry.HasComponent(components.Body) {
		return
	}
	target := components.Body.Get(characterEntry).Position
	camera.Position = camera.Position.Add(target.Sub(camera.Position).Mul(config.Camera.FollowSmoothing))
}
