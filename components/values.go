package components

import (
	"github.com/automoto/degauss/config"
	"github.com/yohamta/donburi"
)

// ValuesData links a character to its tuning. The values are shared and never mutated;
// reloading swaps the pointer.
type ValuesData struct {
	*config.CharacterValues
}

var Values = donburi.NewComponentType[ValuesData]()
