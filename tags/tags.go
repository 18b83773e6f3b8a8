package tags

import "github.com/yohamta/donburi"

var (
	Character   = donburi.NewTag().SetName("Character")
	Block       = donburi.NewTag().SetName("Block")
	Ramp        = donburi.NewTag().SetName("Ramp")
	MovingBlock = donburi.NewTag().SetName("MovingBlock")
	Environment = donburi.NewTag().SetName("Environment")
)
