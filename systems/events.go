package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/messages"
	"github.com/automoto/slingshot/systems/fx"
	"github.com/yohamta/donburi/ecs"
)

// dispatchEvents turns game events into sounds, particles, shakes and
// banners. Every event type of the session is handled here.
func dispatchEvents(e *ecs.ECS, events []messages.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case messages.LaunchEvent:
			PlaySFX(e, cfg.SoundLaunch)
			EmitParticles(e, cfg.ParticleSnow, ev.X, ev.Y, ev.Particles, fx.Burst())

		case messages.ImpactEvent:
			PlayImpact(e, ev.Impact)
			EmitParticles(e, cfg.ParticleSnow, ev.X, ev.Y, ev.Particles, fx.Impact())

		case messages.ScreenShakeEvent:
			TriggerScreenShake(e, ev.Intensity, ev.DurationMs)

		case messages.TargetDestroyedEvent:
			PlaySFX(e, cfg.SoundTargetDestroyed)
			EmitParticles(e, cfg.ParticleStar, ev.X, ev.Y, ev.Particles, fx.Explosion())

		case messages.BlockDestroyedEvent:
			PlaySFX(e, cfg.SoundBlockDestroyed)
			EmitParticles(e, cfg.ParticleIce, ev.X, ev.Y, ev.Particles, fx.Explosion())

		case messages.GameWonEvent:
			PlaySFX(e, cfg.SoundWin)
			ShowBanner(e, "Level cleared!", cfg.LightGreen)
			recordCleared(e)

		case messages.GameLostEvent:
			PlaySFX(e, cfg.SoundLose)
			ShowBanner(e, "Out of projectiles...", cfg.Red)

		case messages.RestartEvent:
			ClearParticles(e)
			ResetScreenShake(e)
			HideBanner(e)
		}
	}
}

func recordCleared(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	MarkLevelCleared(s.Game.Level().Name)
}
