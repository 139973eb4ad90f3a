// Package leveldata provides level descriptors and their TMX parsing.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"
)

var ErrNoProjectiles = errors.New("level has no projectile count")

// Level is a static level descriptor. Coordinates are body centers.
type Level struct {
	Name        string
	Projectiles int
	Targets     []TargetSpawn
	Blocks      []BlockSpec
}

// TargetSpawn is the center of a target creature.
type TargetSpawn struct {
	X, Y float64
}

// BlockSpec describes a structural block. Material is a name such as
// "wood", "stone" or "metal".
type BlockSpec struct {
	X, Y, W, H float64
	Material   string
}

// Validate checks the descriptor for values no level can use.
func (l *Level) Validate() error {
	if l.Projectiles < 0 {
		return fmt.Errorf("level %s: negative projectile count %d", l.Name, l.Projectiles)
	}
	for i, b := range l.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("level %s: block %d has size %vx%v", l.Name, i, b.W, b.H)
		}
	}
	return nil
}

// Level01 is the built-in first level. It is always available, even when no
// level files can be read.
func Level01() Level {
	const groundY = 450.0
	return Level{
		Name:        "level01",
		Projectiles: 3,
		Targets: []TargetSpawn{
			{X: 650, Y: groundY - 22},
			{X: 780, Y: groundY - 22},
		},
		Blocks: []BlockSpec{
			{X: 600, Y: groundY - 30, W: 20, H: 60, Material: "wood"},
			{X: 700, Y: groundY - 30, W: 20, H: 60, Material: "wood"},
			{X: 650, Y: groundY - 70, W: 120, H: 20, Material: "wood"},

			{X: 730, Y: groundY - 30, W: 20, H: 60, Material: "stone"},
			{X: 830, Y: groundY - 30, W: 20, H: 60, Material: "stone"},
			{X: 780, Y: groundY - 70, W: 120, H: 20, Material: "wood"},

			{X: 715, Y: groundY - 100, W: 80, H: 20, Material: "wood"},
			{X: 715, Y: groundY - 130, W: 20, H: 40, Material: "wood"},
		},
	}
}
