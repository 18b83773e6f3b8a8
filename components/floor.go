package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FloorInfoData records what the ground follower probed last tick. Only debug drawing and
// tests read it.
type FloorInfoData struct {
	FrontContact   *mgl64.Vec3
	BackContact    *mgl64.Vec3
	Slope          mgl64.Vec3
	CastLength     float64
	NearObstacle   bool
	GroundHit      bool
	GroundDistance float64
	Direction      mgl64.Vec3
}

var FloorInfo = donburi.NewComponentType[FloorInfoData]()
