package core

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/messages"
	"github.com/yohamta/donburi"
)

// Resolver turns collision pairs into damage, destruction and effect events.
type Resolver struct {
	store *LevelStore
}

func NewResolver(store *LevelStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve processes one batch of collision-start pairs in order. A body
// destroyed earlier in the batch is skipped by later pairs.
func (r *Resolver) Resolve(collisions []physics.Collision) []messages.Event {
	var events []messages.Event
	for _, c := range collisions {
		events = r.resolvePair(c, events)
	}
	return events
}

func (r *Resolver) resolvePair(c physics.Collision, events []messages.Event) []messages.Event {
	impact := gamemath.ImpactMagnitude(c.A.VelX, c.A.VelY, c.B.VelX, c.B.VelY, c.A.Mass, c.B.Mass)

	if impact > cfg.Damage.EffectThreshold {
		events = append(events, messages.ImpactEvent{
			X:         (c.A.X + c.B.X) / 2,
			Y:         (c.A.Y + c.B.Y) / 2,
			Impact:    impact,
			Particles: gamemath.ParticleCount(impact, cfg.Damage.ImpactParticleScale, cfg.Damage.ImpactParticleMax),
		})
	}
	if impact > cfg.Damage.ShakeThreshold {
		events = append(events, messages.ScreenShakeEvent{
			Intensity:  gamemath.ShakeIntensity(impact, cfg.Damage.ShakeScale, cfg.Damage.ShakeMaxIntensity),
			DurationMs: cfg.Damage.ShakeDurationMs,
		})
	}

	events = r.damage(c.A.Body, impact, events)
	events = r.damage(c.B.Body, impact, events)
	return events
}

func (r *Resolver) damage(body *physics.Body, impact float64, events []messages.Event) []messages.Event {
	if impact < cfg.Damage.Threshold {
		return events
	}
	e, ok := body.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return events
	}

	switch {
	case r.store.HasTarget(e):
		health := components.Health.Get(e)
		health.Current -= impact / cfg.Damage.TargetDivisor
		if health.Current > 0 {
			return events
		}
		x, y := body.Position()
		if r.store.RemoveTarget(e) {
			events = append(events,
				messages.TargetDestroyedEvent{X: x, Y: y, Particles: cfg.Damage.TargetDestroyedParticles},
				messages.ScreenShakeEvent{
					Intensity:  cfg.Damage.TargetDestroyedShake,
					DurationMs: cfg.Damage.TargetDestroyedShakeMs,
				},
			)
		}

	case r.store.HasBlock(e):
		health := components.Health.Get(e)
		health.Current -= impact / cfg.Damage.BlockDivisor
		if health.Current > 0 {
			return events
		}
		x, y := body.Position()
		material := components.Block.Get(e).Material
		if r.store.RemoveBlock(e) {
			events = append(events, messages.BlockDestroyedEvent{
				X:         x,
				Y:         y,
				Material:  material,
				Particles: cfg.Damage.BlockDestroyedParticles,
			})
		}
	}
	return events
}
