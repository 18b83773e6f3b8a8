package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// penetrationEpsilon ignores contacts shallower than numerical noise.
const penetrationEpsilon = 1e-4

// UpdateCollisionNormals resolves character penetrations from the contact buffer and posts the
// contact normal for the next ground-following pass. It never changes grounded state.
func UpdateCollisionNormals(ecs *ecs.ECS) {
	entry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	for _, event := range contacts.Events {
		RecordCollision(ecs.World, event)
	}
	contacts.Events = contacts.Events[:0]
}

// RecordCollision applies one contact. Only pairs with exactly one kinematic character are
// resolved; the character is pushed out along the other side's outward normal. It reports
// whether a character was moved.
func RecordCollision(world donburi.World, event components.ContactEvent) bool {
	if event.Penetration <= penetrationEpsilon {
		return false
	}
	entryA, charA := characterEntry(world, event.EntityA)
	entryB, charB := characterEntry(world, event.EntityB)
	if charA == charB {
		return false
	}

	target, normal := entryA, event.NormalB
	if charB {
		target, normal = entryB, event.NormalA
	}
	if !requireComponents("collision", target, components.Body) {
		return false
	}

	body := components.Body.Get(target)
	body.Position = body.Position.Add(normal.Mul(event.Penetration))
	components.Physics.Get(target).WallCollision.Post(normal)
	return true
}

// characterEntry resolves an entity to a live kinematic character.
func characterEntry(world donburi.World, entity donburi.Entity) (*donburi.Entry, bool) {
	if !world.Valid(entity) {
		logger.For("collision").Warn("contact references a removed entity", "entity", entity)
		return nil, false
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(tags.Character) || !entry.HasComponent(components.Physics) {
		return entry, false
	}
	return entry, true
}
