package factory

import (
	"github.com/automoto/degauss/archetypes"
	"github.com/automoto/degauss/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: pos})
	return camera
}
