package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AnimationState is the locomotion clip family exposed to the animation collaborator.
type AnimationState int

const (
	AnimIdle AnimationState = iota
	AnimRun
	AnimRise
	AnimFall
)

func (s AnimationState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimRise:
		return "rise"
	case AnimFall:
		return "fall"
	}
	return "unknown"
}

// AnimationFlagsData carries one-tick flags raised by the movement systems.
type AnimationFlagsData struct {
	Skidding bool
}

var AnimationFlags = donburi.NewComponentType[AnimationFlagsData]()

type AnimationData struct {
	State    AnimationState
	Rotation mgl64.Quat
	Skidding bool
	// Ticks spent in State
	StateTicks int
}

// SetState switches state and restarts the tick counter when it changes.
func (a *AnimationData) SetState(state AnimationState) {
	if a.State == state {
		a.StateTicks++
		return
	}
	a.State = state
	a.StateTicks = 0
}

var Animation = donburi.NewComponentType[AnimationData]()
