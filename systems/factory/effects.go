package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

func CreateParticles(w donburi.World) *donburi.Entry {
	e := archetypes.Particles.Spawn(w)
	components.Particles.Set(e, &components.ParticlesData{
		Particles: make([]components.Particle, 0, cfg.Particles.MaxParticles),
	})
	return e
}

func CreateBanner(w donburi.World) *donburi.Entry {
	e := archetypes.Banner.Spawn(w)
	components.Banner.Set(e, &components.BannerData{Scale: 1})
	return e
}
