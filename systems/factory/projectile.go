package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

// CreateProjectile creates a projectile centered at (x, y). The body is not
// added to any physics world.
func CreateProjectile(w donburi.World, x, y float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(w)

	body := physics.NewCircle(x, y, cfg.Projectile.Radius, physics.BodyOptions{
		Restitution: cfg.Projectile.Restitution,
		Friction:    cfg.Projectile.Friction,
		Density:     cfg.Projectile.Density,
		Label:       cfg.KindProjectile.String(),
		Tags:        []string{tags.ResolvSolid, tags.ResolvProjectile},
	})
	body.Data = projectile // Linked for O(1) lookup

	components.Body.SetValue(projectile, components.BodyData{Body: body})

	return projectile
}
