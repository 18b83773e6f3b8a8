package systems

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi/ecs"
)

// Stage is one ordered step of the per-tick movement pipeline.
type Stage struct {
	Name   string
	Writes []string
	System ecs.System
}

// Stage names. The core stages must appear in this relative order.
const (
	StageEnvironment    = "environment"
	StageAcceleration   = "acceleration"
	StageVelocity       = "velocity"
	StageGroundFollower = "ground_follower"
	StageMovers         = "movers"
	StageIntegrate      = "integrate"
	StageGroundContact  = "ground_contact"
	StageContacts       = "contacts"
	StageCollision      = "collision_normals"
	StageAnimation      = "animation"
	StageRespawn        = "respawn"
	StageSyncColliders  = "sync_colliders"
)

var coreOrder = []string{
	StageEnvironment,
	StageAcceleration,
	StageVelocity,
	StageGroundFollower,
	StageIntegrate,
	StageGroundContact,
	StageContacts,
	StageCollision,
	StageSyncColliders,
}

var (
	ErrStageMissing   = errors.New("core stage missing")
	ErrStageOrder     = errors.New("core stage out of order")
	ErrStageDuplicate = errors.New("stage registered twice")
)

// Pipeline returns the movement stages in execution order.
func Pipeline() []Stage {
	return []Stage{
		{StageEnvironment, []string{"environment.snapshot"}, UpdateEnvironment},
		{StageAcceleration, []string{"acceleration", "control.move_input", "control.facing", "animation_flags.skidding"}, UpdateAcceleration},
		{StageVelocity, []string{"physics.ground_speed", "physics.air_speed"}, UpdateVelocity},
		{StageGroundFollower, []string{"physics", "body.linear_velocity", "floor_info"}, UpdateGroundFollower},
		{StageMovers, []string{"mover", "body.linear_velocity"}, UpdateMovers},
		{StageIntegrate, []string{"body.position"}, IntegrateBodies},
		{StageGroundContact, []string{"body.position"}, UpdateGroundContact},
		{StageContacts, []string{"contacts"}, UpdateContacts},
		{StageCollision, []string{"body.position", "physics.wall_collision", "contacts"}, UpdateCollisionNormals},
		{StageAnimation, []string{"animation"}, UpdateAnimation},
		{StageRespawn, []string{"body", "physics", "control"}, UpdateRespawn},
		{StageSyncColliders, []string{"environment.staged"}, SyncColliders},
	}
}

// ValidatePipeline checks that every core stage is present once and in happens-before order.
func ValidatePipeline(stages []Stage) error {
	index := make(map[string]int, len(stages))
	for i, s := range stages {
		if _, dup := index[s.Name]; dup {
			return fmt.Errorf("systems: %s: %w", s.Name, ErrStageDuplicate)
		}
		if s.System == nil {
			return fmt.Errorf("systems: %s has no system: %w", s.Name, ErrStageMissing)
		}
		index[s.Name] = i
	}

	last := -1
	for _, name := range coreOrder {
		i, ok := index[name]
		if !ok {
			return fmt.Errorf("systems: %s: %w", name, ErrStageMissing)
		}
		if i < last {
			return fmt.Errorf("systems: %s: %w", name, ErrStageOrder)
		}
		last = i
	}
	return nil
}
