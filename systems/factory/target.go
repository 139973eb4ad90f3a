package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

// CreateTarget creates a target creature centered at (x, y) with full health.
func CreateTarget(w donburi.World, x, y float64) *donburi.Entry {
	target := archetypes.Target.Spawn(w)

	body := physics.NewCircle(x, y, cfg.Target.Radius, physics.BodyOptions{
		Restitution: cfg.Target.Restitution,
		Friction:    cfg.Target.Friction,
		Density:     cfg.Target.Density,
		Label:       cfg.KindTarget.String(),
		Tags:        []string{tags.ResolvSolid, tags.ResolvTarget},
	})
	body.Data = target

	components.Body.SetValue(target, components.BodyData{Body: body})
	components.Health.SetValue(target, components.HealthData{
		Current: cfg.Target.Health,
		Max:     cfg.Target.Health,
	})

	return target
}
