package factory

import (
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SpawnLevel creates every target and block of a level descriptor. Bodies are
// not added to any physics world.
func SpawnLevel(w donburi.World, level *leveldata.Level) (targets, blocks []*donburi.Entry) {
	targets = make([]*donburi.Entry, 0, len(level.Targets))
	for _, t := range level.Targets {
		targets = append(targets, CreateTarget(w, t.X, t.Y))
	}

	blocks = make([]*donburi.Entry, 0, len(level.Blocks))
	for _, b := range level.Blocks {
		blocks = append(blocks, CreateBlock(w, b.X, b.Y, b.W, b.H, b.Material))
	}

	return targets, blocks
}
