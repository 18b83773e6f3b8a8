package systems

import (
	"github.com/automoto/degauss/components"
	cfg "github.com/automoto/degauss/config"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the sandbox toggles: pause, single step, probe drawing and reset.
// This system should run AFTER UpdateInput but BEFORE the movement pipeline.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	pause.StepOnce = false
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		logger.For("sandbox").Info("pause toggled", "paused", pause.IsPaused)
	}
	if pause.IsPaused && GetAction(input, cfg.ActionStep).JustPressed {
		pause.StepOnce = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.DrawProbes = !cfg.Debug.DrawProbes
	}
	if GetAction(input, cfg.ActionReset).JustPressed {
		tags.Character.Each(ecs.World, func(e *donburi.Entry) {
			if e.HasComponent(components.Checkpoint) {
				Respawn(e, components.Checkpoint.Get(e))
			}
		})
	}
}

// WithPauseCheck wraps a system to skip execution while paused, except on a single step.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.StepOnce {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
