package factory

import (
	"fmt"

	"github.com/automoto/degauss/archetypes"
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingBlock spawns a kinematic box that shuttles from pos to pos+travel and back at
// speed units per second.
func CreateMovingBlock(ecs *ecs.ECS, pos, halfExtents, travel mgl64.Vec3, speed float64) (*donburi.Entry, error) {
	platform := archetypes.MovingBlock.Spawn(ecs)

	body := components.BodyData{Position: pos, Rotation: mgl64.QuatIdent()}
	components.Body.SetValue(platform, body)
	components.Mover.SetValue(platform, components.MoverData{
		Anchor: pos,
		Travel: travel,
		Track:  newShuttleTrack(travel.Len(), speed),
	})
	if err := addCollider(ecs, platform, spatial.LayerDynamic, spatial.Box{HalfExtents: halfExtents}, body); err != nil {
		ecs.World.Remove(platform.Entity())
		return nil, fmt.Errorf("factory: moving block at %v: %w", pos, err)
	}
	logger.For("factory").Debug("spawned moving block", "entity", platform.Entity(), "pos", pos, "travel", travel)
	return platform, nil
}

// newShuttleTrack tweens 0 to 1 and back, one leg taking length/speed seconds. A platform that
// cannot move gets no track.
func newShuttleTrack(length, speed float64) *gween.Sequence {
	if length <= 0 || speed <= 0 {
		return nil
	}
	leg := float32(length / speed)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, leg, ease.Linear),
		gween.New(1, 0, leg, ease.Linear),
	)
	return tw
}
