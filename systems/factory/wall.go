package factory

import (
	"fmt"

	"github.com/automoto/degauss/archetypes"
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock spawns a static axis-aligned box centred on pos.
func CreateBlock(ecs *ecs.ECS, pos, halfExtents mgl64.Vec3) (*donburi.Entry, error) {
	return createBox(ecs, archetypes.Block.Spawn(ecs), pos, mgl64.QuatIdent(), halfExtents)
}

// CreateRamp spawns a static box centred on pos and tilted by angle radians about the X axis,
// so its top face climbs toward -Z for positive angles.
func CreateRamp(ecs *ecs.ECS, pos, halfExtents mgl64.Vec3, angle float64) (*donburi.Entry, error) {
	rot := mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0})
	return createBox(ecs, archetypes.Ramp.Spawn(ecs), pos, rot, halfExtents)
}

func createBox(ecs *ecs.ECS, entry *donburi.Entry, pos mgl64.Vec3, rot mgl64.Quat, halfExtents mgl64.Vec3) (*donburi.Entry, error) {
	body := components.BodyData{Position: pos, Rotation: rot}
	components.Body.SetValue(entry, body)
	if err := addCollider(ecs, entry, spatial.LayerEnvironment, spatial.Box{HalfExtents: halfExtents}, body); err != nil {
		ecs.World.Remove(entry.Entity())
		return nil, fmt.Errorf("factory: box at %v: %w", pos, err)
	}
	logger.For("factory").Debug("spawned box", "entity", entry.Entity(), "pos", pos, "half", halfExtents)
	return entry, nil
}
