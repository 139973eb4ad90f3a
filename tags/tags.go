package tags

import (
	"github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

var (
	Projectile = donburi.NewTag().SetName("Projectile")
	Target     = donburi.NewTag().SetName("Target")
	Block      = donburi.NewTag().SetName("Block")
	Ground     = donburi.NewTag().SetName("Ground")
	Wall       = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvProjectile = "projectile"
	ResolvTarget     = "target"
	ResolvBlock      = "block"
	ResolvGround     = "ground"
	ResolvWall       = "wall"
)

// KindOf reports which kind of entity an entry is.
func KindOf(e *donburi.Entry) config.EntityKind {
	switch {
	case e == nil || !e.Valid():
		return config.KindNone
	case e.HasComponent(Projectile):
		return config.KindProjectile
	case e.HasComponent(Target):
		return config.KindTarget
	case e.HasComponent(Block):
		return config.KindBlock
	case e.HasComponent(Ground):
		return config.KindGround
	case e.HasComponent(Wall):
		return config.KindWall
	}
	return config.KindNone
}
