package systems

import (
	"testing"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newCollisionWorld(t *testing.T) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateEnvironment(e)
	wall, err := factory.CreateBlock(e, mgl64.Vec3{1, 1, 0}, mgl64.Vec3{0.5, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	character, err := factory.CreateCharacter(e, mgl64.Vec3{0.3, 1, 0}, defaultValues(), true)
	if err != nil {
		t.Fatal(err)
	}
	return e, wall, character
}

func TestRecordCollision_PushesCharacterAndPostsNormal(t *testing.T) {
	e, wall, character := newCollisionWorld(t)
	event := components.ContactEvent{
		EntityA:     character.Entity(),
		EntityB:     wall.Entity(),
		NormalA:     mgl64.Vec3{1, 0, 0},
		NormalB:     mgl64.Vec3{-1, 0, 0},
		Penetration: 0.15,
	}

	if !RecordCollision(e.World, event) {
		t.Fatal("contact not applied")
	}
	approxVec3(t, components.Body.Get(character).Position, mgl64.Vec3{0.15, 1, 0}, 1e-12, "position")

	physics := components.Physics.Get(character)
	normal, ok := physics.WallCollision.Take()
	if !ok {
		t.Fatal("no normal posted")
	}
	approxVec3(t, normal, mgl64.Vec3{-1, 0, 0}, 1e-12, "posted normal")
	if _, ok := physics.WallCollision.Take(); ok {
		t.Error("normal consumed twice")
	}
	if !physics.IsGrounded() {
		t.Error("collision changed the grounded state")
	}
}

func TestRecordCollision_CharacterAsSecondEntity(t *testing.T) {
	e, wall, character := newCollisionWorld(t)
	event := components.ContactEvent{
		EntityA:     wall.Entity(),
		EntityB:     character.Entity(),
		NormalA:     mgl64.Vec3{-1, 0, 0},
		NormalB:     mgl64.Vec3{1, 0, 0},
		Penetration: 0.15,
	}

	if !RecordCollision(e.World, event) {
		t.Fatal("contact not applied")
	}
	approxVec3(t, components.Body.Get(character).Position, mgl64.Vec3{0.15, 1, 0}, 1e-12, "position")
}

func TestRecordCollision_Ignored(t *testing.T) {
	e, wall, character := newCollisionWorld(t)
	other, err := factory.CreateBlock(e, mgl64.Vec3{5, 1, 0}, mgl64.Vec3{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	second, err := factory.CreateCharacter(e, mgl64.Vec3{-3, 1, 0}, defaultValues(), true)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		event components.ContactEvent
	}{
		{"shallow", components.ContactEvent{EntityA: character.Entity(), EntityB: wall.Entity(), NormalB: mgl64.Vec3{-1, 0, 0}, Penetration: 1e-5}},
		{"no character", components.ContactEvent{EntityA: wall.Entity(), EntityB: other.Entity(), NormalB: mgl64.Vec3{1, 0, 0}, Penetration: 0.5}},
		{"two characters", components.ContactEvent{EntityA: character.Entity(), EntityB: second.Entity(), NormalB: mgl64.Vec3{1, 0, 0}, Penetration: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := components.Body.Get(character).Position
			if RecordCollision(e.World, tt.event) {
				t.Fatal("contact applied")
			}
			if got := components.Body.Get(character).Position; got != before {
				t.Errorf("position = %v, want %v", got, before)
			}
			if components.Physics.Get(character).WallCollision.Pending() {
				t.Error("normal posted")
			}
		})
	}
}

func TestRecordCollision_LatestNormalWins(t *testing.T) {
	e, wall, character := newCollisionWorld(t)
	for _, n := range []mgl64.Vec3{{-1, 0, 0}, {0, 0, 1}} {
		RecordCollision(e.World, components.ContactEvent{
			EntityA:     character.Entity(),
			EntityB:     wall.Entity(),
			NormalB:     n,
			Penetration: 0.01,
		})
	}
	normal, ok := components.Physics.Get(character).WallCollision.Take()
	if !ok {
		t.Fatal("no normal posted")
	}
	approxVec3(t, normal, mgl64.Vec3{0, 0, 1}, 1e-12, "posted normal")
}

func TestUpdateContacts_ReportsPenetration(t *testing.T) {
	e, wall, character := newCollisionWorld(t)

	UpdateContacts(e)
	contacts := GetOrCreateContacts(e)
	if len(contacts.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(contacts.Events))
	}
	ev := contacts.Events[0]
	// The wall was registered first, so it is A.
	if ev.EntityA != wall.Entity() || ev.EntityB != character.Entity() {
		t.Errorf("pair = (%v, %v), want (%v, %v)", ev.EntityA, ev.EntityB, wall.Entity(), character.Entity())
	}
	// Sphere of radius 0.35 at x = 0.3 against a face at x = 0.5.
	approxEqual(t, ev.Penetration, 0.15, 1e-9, "penetration")
	approxVec3(t, ev.NormalA, mgl64.Vec3{-1, 0, 0}, 1e-9, "wall normal")

	UpdateCollisionNormals(e)
	approxVec3(t, components.Body.Get(character).Position, mgl64.Vec3{0.15, 1, 0}, 1e-9, "resolved position")
	if len(contacts.Events) != 0 {
		t.Error("contact buffer not drained")
	}
	if !components.Physics.Get(character).WallCollision.Pending() {
		t.Error("no normal waiting for the ground follower")
	}
}

func TestUpdateContacts_BufferBelongsToWorld(t *testing.T) {
	a, wallA, _ := newCollisionWorld(t)
	b, _, characterB := newCollisionWorld(t)
	components.Body.Get(characterB).Position = mgl64.Vec3{-3, 1, 0}

	UpdateContacts(a)
	UpdateContacts(b)

	contactsA := GetOrCreateContacts(a)
	if len(contactsA.Manifolds) != 1 || len(contactsA.Events) != 1 {
		t.Fatalf("world a: manifolds = %d, events = %d, want 1 each", len(contactsA.Manifolds), len(contactsA.Events))
	}
	if contactsA.Events[0].EntityA != wallA.Entity() {
		t.Errorf("world a: contact A = %v, want its wall %v", contactsA.Events[0].EntityA, wallA.Entity())
	}
	approxEqual(t, contactsA.Manifolds[0].Penetration, 0.15, 1e-9, "world a penetration")

	contactsB := GetOrCreateContacts(b)
	if len(contactsB.Manifolds) != 0 || len(contactsB.Events) != 0 {
		t.Errorf("world b: manifolds = %d, events = %d, want none", len(contactsB.Manifolds), len(contactsB.Events))
	}
}
