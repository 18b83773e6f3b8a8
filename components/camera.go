package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the sandbox debug view centre. It only reads character transforms.
type CameraData struct {
	Position mgl64.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
