package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getEnvironment returns the collision world singleton.
func getEnvironment(e *ecs.ECS) (*spatial.Environment, bool) {
	entry, ok := components.Environment.First(e.World)
	if !ok {
		return nil, false
	}
	env := components.Environment.Get(entry)
	if env.Environment == nil {
		return nil, false
	}
	return env.Environment, true
}

// requireComponents reports whether entry carries every component a system needs, logging a
// warning naming the system when it does not.
func requireComponents(system string, entry *donburi.Entry, cs ...donburi.IComponentType) bool {
	for _, c := range cs {
		if !entry.HasComponent(c) {
			logger.For(system).Warn("character missing component, skipping tick",
				"entity", entry.Entity(), "component", c.Name())
			return false
		}
	}
	return true
}

// terrainFilter selects everything a character can touch except its own collider.
func terrainFilter(self spatial.ColliderID) spatial.Filter {
	return spatial.Filter{Mask: spatial.LayerTerrain, Exclude: []spatial.ColliderID{self}}
}
