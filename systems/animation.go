package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runSpeedThreshold is the ground speed above which a grounded character runs.
const runSpeedThreshold = 1.0

// UpdateAnimation classifies each character's locomotion for the animation collaborator.
func UpdateAnimation(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) || !e.HasComponent(components.Physics) {
			return
		}
		anim := components.Animation.Get(e)
		physics := components.Physics.Get(e)

		anim.SetState(ClassifyAnimation(physics))
		anim.Rotation = physics.OverallRotation
		if e.HasComponent(components.AnimationFlags) {
			anim.Skidding = components.AnimationFlags.Get(e).Skidding
		}
	})
}

// ClassifyAnimation picks the locomotion clip family for a physics state.
func ClassifyAnimation(physics *components.PhysicsData) components.AnimationState {
	switch s := physics.AirSpeed.(type) {
	case components.Grounded:
		if physics.GroundSpeed.Len() > runSpeedThreshold {
			return components.AnimRun
		}
		return components.AnimIdle
	case components.InAir:
		if s.Speed > 0 {
			return components.AnimRise
		}
		return components.AnimFall
	}
	return components.AnimFall
}
