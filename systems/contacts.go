package systems

import (
	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/logger"
	"github.com/automoto/degauss/spatial"
	"github.com/automoto/degauss/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts fills the contact buffer with every penetration involving a character at its
// integrated position.
func UpdateContacts(ecs *ecs.ECS) {
	env, ok := getEnvironment(ecs)
	if !ok {
		logger.For("contacts").Warn("no environment, skipping contacts")
		return
	}
	contacts := GetOrCreateContacts(ecs)
	contacts.Events = contacts.Events[:0]

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		if !requireComponents("contacts", e, components.Body, components.Collider) {
			return
		}
		id := components.Collider.Get(e).ID
		body := components.Body.Get(e)

		var err error
		contacts.Manifolds, err = env.ContactsAt(id, body.Position, contacts.Manifolds[:0])
		if err != nil {
			logger.For("contacts").Warn("character collider missing", "entity", e.Entity(), "err", err)
			return
		}
		for _, m := range contacts.Manifolds {
			event, ok := contactEvent(env, m)
			if !ok {
				continue
			}
			contacts.Events = append(contacts.Events, event)
		}
	})
}

func contactEvent(env *spatial.Environment, m spatial.Manifold) (components.ContactEvent, bool) {
	a, okA := env.Collider(m.A)
	b, okB := env.Collider(m.B)
	if !okA || !okB {
		return components.ContactEvent{}, false
	}
	return components.ContactEvent{
		EntityA:     a.Owner,
		EntityB:     b.Owner,
		NormalA:     m.NormalA,
		NormalB:     m.NormalB,
		Penetration: m.Penetration,
	}, true
}

// GetOrCreateContacts returns the contact buffer singleton.
func GetOrCreateContacts(ecs *ecs.ECS) *components.ContactsData {
	if entry, ok := components.Contacts.First(ecs.World); ok {
		return components.Contacts.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Contacts))
	return components.Contacts.Get(entry)
}
