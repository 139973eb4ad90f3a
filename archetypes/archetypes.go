package archetypes

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

var (
	Projectile = newArchetype(
		tags.Projectile,
		components.Body,
	)
	Target = newArchetype(
		tags.Target,
		components.Body,
		components.Health,
	)
	Block = newArchetype(
		tags.Block,
		components.Body,
		components.Health,
		components.Block,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Particles = newArchetype(
		components.Particles,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Input = newArchetype(
		components.Input,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Debug = newArchetype(
		components.Debug,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
