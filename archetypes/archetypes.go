package archetypes

import (
	"github.com/automoto/degauss/components"
	cfg "github.com/automoto/degauss/config"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Control,
		components.Values,
		components.Acceleration,
		components.Physics,
		components.Body,
		components.Collider,
		components.AnimationFlags,
		components.Animation,
		components.FloorInfo,
		components.Checkpoint,
	)
	Block = newArchetype(
		tags.Block,
		components.Body,
		components.Collider,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Body,
		components.Collider,
	)
	MovingBlock = newArchetype(
		tags.MovingBlock,
		components.Body,
		components.Collider,
		components.Mover,
	)
	Environment = newArchetype(
		tags.Environment,
		components.Environment,
		components.Contacts,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
