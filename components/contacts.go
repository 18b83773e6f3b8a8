package components

import (
	"github.com/automoto/degauss/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ContactEvent is one penetrating pair. NormalA is A's outward normal pointing toward B and
// NormalB is B's outward normal pointing toward A.
type ContactEvent struct {
	EntityA, EntityB donburi.Entity
	NormalA          mgl64.Vec3
	NormalB          mgl64.Vec3
	Penetration      float64
}

// ContactsData is the manifold stream for the current tick. Manifolds is the per-world
// buffer the contact query fills for each character.
type ContactsData struct {
	Events    []ContactEvent
	Manifolds []spatial.Manifold
}

var Contacts = donburi.NewComponentType[ContactsData]()
