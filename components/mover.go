package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MoverData drives a moving platform along Anchor+Travel*t, where t is the current value of
// Track. A nil Track leaves the platform parked.
type MoverData struct {
	Anchor mgl64.Vec3
	Travel mgl64.Vec3
	Track  *gween.Sequence
}

var Mover = donburi.NewComponentType[MoverData]()
