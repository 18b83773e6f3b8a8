package components

import (
	"github.com/automoto/degauss/spatial"
	"github.com/yohamta/donburi"
)

type EnvironmentData struct {
	*spatial.Environment
}

var Environment = donburi.NewComponentType[EnvironmentData]()
