package factory

import (
	"github.com/automoto/degauss/archetypes"
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnvironment spawns the collision world singleton sized from config.Environment.
func CreateEnvironment(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Environment.Spawn(ecs)
	env := spatial.NewEnvironment(spatial.Bounds{
		MinX:     config.Environment.MinX,
		MinZ:     config.Environment.MinZ,
		Width:    config.Environment.Width,
		Depth:    config.Environment.Depth,
		CellSize: config.Environment.CellSize,
	})
	components.Environment.SetValue(entry, components.EnvironmentData{Environment: env})
	components.Contacts.SetValue(entry, components.ContactsData{})
	return entry
}

// addCollider registers a collider for entry in the environment, if there is one.
func addCollider(ecs *ecs.ECS, entry *donburi.Entry, layer spatial.Layer, shape spatial.Shape, body components.BodyData) error {
	data := components.ColliderData{Layer: layer, Shape: shape}
	if envEntry, ok := components.Environment.First(ecs.World); ok {
		env := components.Environment.Get(envEntry)
		id, err := env.Add(spatial.Collider{
			Owner:    entry.Entity(),
			Layer:    layer,
			Shape:    shape,
			Position: body.Position,
			Rotation: body.Rotation,
		})
		if err != nil {
			return err
		}
		data.ID = id
	}
	components.Collider.SetValue(entry, data)
	return nil
}
