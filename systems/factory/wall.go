package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

// CreateBoundaries builds the static ground and the invisible side walls and
// adds them to the physics world.
func CreateBoundaries(w donburi.World, space *physics.World) []*donburi.Entry {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	ground := cfg.Physics.GroundHeight
	thick := cfg.Physics.WallThickness

	entries := []*donburi.Entry{
		CreateGround(w, width/2, height-ground/2, width, ground),
		CreateWall(w, -thick/2, height/2, thick, height),
		CreateWall(w, width+thick/2, height/2, thick, height),
	}
	for _, e := range entries {
		space.Add(components.Body.Get(e).Body)
	}
	return entries
}

func CreateGround(w donburi.World, x, y, width, height float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)

	body := physics.NewRect(x, y, width, height, physics.BodyOptions{
		Friction: cfg.Physics.GroundFriction,
		Static:   true,
		Label:    cfg.KindGround.String(),
		Tags:     []string{tags.ResolvSolid, tags.ResolvGround},
	})
	body.Data = ground

	components.Body.SetValue(ground, components.BodyData{Body: body})

	return ground
}

func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	body := physics.NewRect(x, y, width, height, physics.BodyOptions{
		Static: true,
		Label:  cfg.KindWall.String(),
		Tags:   []string{tags.ResolvSolid, tags.ResolvWall},
	})
	body.Data = wall

	components.Body.SetValue(wall, components.BodyData{Body: body})

	return wall
}
