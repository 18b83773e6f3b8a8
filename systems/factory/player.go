package factory

import (
	"fmt"

	"github.com/automoto/degauss/archetypes"
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a movable character at pos with its own tuning. values is shared, not
// copied, and must not be mutated afterwards; a nil values uses the defaults.
func CreateCharacter(ecs *ecs.ECS, pos mgl64.Vec3, values *config.CharacterValues, grounded bool) (*donburi.Entry, error) {
	if values == nil {
		v := config.DefaultCharacterValues()
		values = &v
	}
	if err := values.Validate(); err != nil {
		return nil, fmt.Errorf("factory: character: %w", err)
	}
	log := logger.For("factory")
	if warning := values.CushionWarning(); warning != "" {
		log.Warn(warning)
	}

	character := archetypes.Character.Spawn(ecs)

	components.Values.SetValue(character, components.ValuesData{CharacterValues: values})
	components.Control.SetValue(character, components.ControlData{Facing2D: mgl64.Vec2{1, 0}})
	components.Physics.SetValue(character, components.NewPhysicsData(grounded))
	components.FloorInfo.SetValue(character, components.FloorInfoData{})
	components.Animation.SetValue(character, components.AnimationData{
		State:    components.AnimIdle,
		Rotation: mgl64.QuatIdent(),
	})
	components.Checkpoint.SetValue(character, components.CheckpointData{
		Spawn:    pos,
		Grounded: grounded,
	})

	body := components.BodyData{Position: pos, Rotation: mgl64.QuatIdent()}
	components.Body.SetValue(character, body)
	if err := addCollider(ecs, character, spatial.LayerCharacter, spatial.Sphere{Radius: values.ColliderRadius}, body); err != nil {
		ecs.World.Remove(character.Entity())
		return nil, fmt.Errorf("factory: character at %v: %w", pos, err)
	}

	log.Debug("spawned character", "entity", character.Entity(), "pos", pos, "grounded", grounded)
	return character, nil
}
