package factory

import (
	"log"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

// CreateBlock creates a block centered at (x, y). Unknown materials fall
// back to wood.
func CreateBlock(w donburi.World, x, y, width, height float64, material string) *donburi.Entry {
	materialID, ok := cfg.ParseMaterial(material)
	if !ok && material != "" {
		log.Printf("Warning: unknown block material %q, using %s", material, materialID)
	}
	return CreateBlockOf(w, x, y, width, height, materialID)
}

// CreateBlockOf creates a block of a known material.
func CreateBlockOf(w donburi.World, x, y, width, height float64, material cfg.MaterialID) *donburi.Entry {
	mat := cfg.MaterialFor(material)

	block := archetypes.Block.Spawn(w)

	body := physics.NewRect(x, y, width, height, physics.BodyOptions{
		Restitution: cfg.Block.Restitution,
		Friction:    cfg.Block.Friction,
		Density:     mat.Density,
		Label:       cfg.KindBlock.String(),
		Tags:        []string{tags.ResolvSolid, tags.ResolvBlock},
	})
	body.Data = block

	components.Body.SetValue(block, components.BodyData{Body: body})
	components.Health.SetValue(block, components.HealthData{
		Current: mat.Resistance,
		Max:     mat.Resistance,
	})
	components.Block.SetValue(block, components.BlockData{
		Material:   material,
		Resistance: mat.Resistance,
	})

	return block
}
