package components

import (
	"github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

// BlockData holds the material of a structural block.
type BlockData struct {
	Material   config.MaterialID
	Resistance float64
}

var Block = donburi.NewComponentType[BlockData]()
