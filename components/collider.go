package components

import (
	"github.com/automoto/degauss/spatial"
	"github.com/yohamta/donburi"
)

// ColliderData links an entity to its collider in the environment.
type ColliderData struct {
	ID    spatial.ColliderID
	Layer spatial.Layer
	Shape spatial.Shape
}

var Collider = donburi.NewComponentType[ColliderData]()
