package components

import "github.com/yohamta/donburi"

// PauseData freezes the sandbox simulation. StepOnce runs a single tick while paused.
type PauseData struct {
	IsPaused bool
	StepOnce bool
}

var Pause = donburi.NewComponentType[PauseData]()
