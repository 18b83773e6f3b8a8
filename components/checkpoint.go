package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CheckpointData is where a character respawns after falling below the kill plane.
type CheckpointData struct {
	Spawn    mgl64.Vec3
	Grounded bool
	// Respawns counts how often the character has been reset
	Respawns int
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
